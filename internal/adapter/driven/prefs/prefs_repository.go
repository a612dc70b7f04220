package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/pivot"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/repository"
)

// PreferencesRepositoryImpl persiste as configurações de pivot em um arquivo
// JSON por relatório, sob o diretório de configuração do usuário. Substitui o
// armazenamento em localStorage da interface web; erros de leitura/escrita
// sobem para o chamador em vez de serem engolidos.
type PreferencesRepositoryImpl struct {
	dir string
}

// NewPreferencesRepository cria uma nova implementação do
// PreferencesRepository. dir vazio usa <config do usuário>/estagios-dashboard.
func NewPreferencesRepository(dir string) (repository.PreferencesRepository, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("could not resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "estagios-dashboard")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating preferences directory '%s': %w", dir, err)
	}
	return &PreferencesRepositoryImpl{dir: dir}, nil
}

// configSalva é a forma serializada de uma configuração: só as keys dos
// campos, resolvidas de volta pelo catálogo na leitura. Campos que saíram do
// catálogo entre versões são descartados silenciosamente.
type configSalva struct {
	Rows    []string      `json:"rows"`
	Cols    []string      `json:"cols"`
	Values  []valorSalvo  `json:"values"`
	Filters []filtroSalvo `json:"filters"`
}

type valorSalvo struct {
	Key string `json:"key"`
	Agg string `json:"agg"`
}

type filtroSalvo struct {
	Key      string   `json:"key"`
	Selected []string `json:"selected"`
}

// LoadPivotConfig carrega a última configuração salva para o relatório.
// Retorna (nil, nil) quando nunca houve configuração salva.
func (r *PreferencesRepositoryImpl) LoadPivotConfig(reportName string) (*pivot.Config, error) {
	data, err := os.ReadFile(r.caminho(reportName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading preferences file: %w", err)
	}

	var salva configSalva
	if err := json.Unmarshal(data, &salva); err != nil {
		return nil, fmt.Errorf("error parsing preferences file: %w", err)
	}

	cfg := &pivot.Config{}
	for _, key := range salva.Rows {
		if f, ok := entity.BuscarCampo(key); ok {
			cfg.Rows = append(cfg.Rows, f)
		}
	}
	for _, key := range salva.Cols {
		if f, ok := entity.BuscarCampo(key); ok {
			cfg.Cols = append(cfg.Cols, f)
		}
	}
	for _, v := range salva.Values {
		if f, ok := entity.BuscarCampo(v.Key); ok {
			cfg.Values = append(cfg.Values, pivot.ValueField{Field: f, Agg: pivot.Aggregation(v.Agg)})
		}
	}
	for _, fl := range salva.Filters {
		if f, ok := entity.BuscarCampo(fl.Key); ok {
			cfg.Filters = append(cfg.Filters, pivot.FilterField{Field: f, SelectedValues: fl.Selected})
		}
	}
	return cfg, nil
}

// SavePivotConfig grava a configuração corrente para o relatório.
func (r *PreferencesRepositoryImpl) SavePivotConfig(reportName string, cfg *pivot.Config) error {
	salva := configSalva{}
	for _, f := range cfg.Rows {
		salva.Rows = append(salva.Rows, f.Key)
	}
	for _, f := range cfg.Cols {
		salva.Cols = append(salva.Cols, f.Key)
	}
	for _, v := range cfg.Values {
		salva.Values = append(salva.Values, valorSalvo{Key: v.Field.Key, Agg: string(v.Agg)})
	}
	for _, fl := range cfg.Filters {
		salva.Filters = append(salva.Filters, filtroSalvo{Key: fl.Field.Key, Selected: fl.SelectedValues})
	}

	data, err := json.MarshalIndent(salva, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding preferences: %w", err)
	}
	if err := os.WriteFile(r.caminho(reportName), data, 0644); err != nil {
		return fmt.Errorf("error writing preferences file: %w", err)
	}
	return nil
}

func (r *PreferencesRepositoryImpl) caminho(reportName string) string {
	if reportName == "" {
		reportName = "default"
	}
	return filepath.Join(r.dir, "pivot_"+reportName+".json")
}
