package repository

import (
	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/pivot"
)

type ExportRepository interface {
	// Relatório pivot
	ExportPivotToCSV(result *pivot.Result, filename string, outputDir string) (string, error)
	ExportPivotToJSON(result *pivot.Result, filename string, outputDir string) (string, error)
	ExportPivotToPDF(result *pivot.Result, titulo string, filename string, outputDir string) (string, error)

	// Registros brutos de vagas
	ExportVagasToCSV(vagas []*entity.Vaga, filename string, outputDir string) (string, error)
	ExportVagasToJSON(vagas []*entity.Vaga, filename string, outputDir string) (string, error)

	// Resumo por unidade
	ExportResumoToCSV(resumo *entity.ResumoVagas, filename string, outputDir string) (string, error)
	ExportResumoToJSON(resumo *entity.ResumoVagas, filename string, outputDir string) (string, error)
}
