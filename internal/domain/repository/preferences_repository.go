package repository

import (
	"github.com/elneves81/estagios-dashboard-go/internal/domain/pivot"
)

// PreferencesRepository persiste a última configuração de pivot usada,
// chaveada por nome de relatório.
type PreferencesRepository interface {
	LoadPivotConfig(reportName string) (*pivot.Config, error)
	SavePivotConfig(reportName string, cfg *pivot.Config) error
}
