package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/pivot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveELoadPivotConfig(t *testing.T) {
	repo, err := NewPreferencesRepository(t.TempDir())
	require.NoError(t, err)

	cfg := &pivot.Config{}
	unidade, _ := entity.BuscarCampo("unidade_setor")
	vagas, _ := entity.BuscarCampo("vagas")
	nivel, _ := entity.BuscarCampo("nivel")

	cfg.AddField(unidade, pivot.ZoneRows)
	cfg.AddField(vagas, pivot.ZoneValues)
	cfg.SetAggregation("vagas", pivot.AggAvg)
	cfg.AddField(nivel, pivot.ZoneFilters)
	cfg.ToggleFilterValue("nivel", "Superior")

	require.NoError(t, repo.SavePivotConfig("meu_relatorio", cfg))

	carregada, err := repo.LoadPivotConfig("meu_relatorio")
	require.NoError(t, err)
	require.NotNil(t, carregada)

	require.Len(t, carregada.Rows, 1)
	assert.Equal(t, "unidade_setor", carregada.Rows[0].Key)
	require.Len(t, carregada.Values, 1)
	assert.Equal(t, pivot.AggAvg, carregada.Values[0].Agg)
	require.Len(t, carregada.Filters, 1)
	assert.Equal(t, []string{"Superior"}, carregada.Filters[0].SelectedValues)
}

func TestLoadPivotConfigInexistente(t *testing.T) {
	repo, err := NewPreferencesRepository(t.TempDir())
	require.NoError(t, err)

	cfg, err := repo.LoadPivotConfig("nunca_salvo")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadPivotConfigCorrompido(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewPreferencesRepository(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pivot_x.json"), []byte("{quebrado"), 0644))

	_, err = repo.LoadPivotConfig("x")
	assert.Error(t, err)
}

func TestLoadPivotConfigDescartaCampoDesconhecido(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewPreferencesRepository(dir)
	require.NoError(t, err)

	salvo := `{"rows":["unidade_setor","campo_removido"],"values":[{"key":"vagas","agg":"sum"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pivot_default.json"), []byte(salvo), 0644))

	cfg, err := repo.LoadPivotConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Rows, 1)
	assert.Equal(t, "unidade_setor", cfg.Rows[0].Key)
}

func TestSavePorRelatorioIndependente(t *testing.T) {
	repo, err := NewPreferencesRepository(t.TempDir())
	require.NoError(t, err)

	curso, _ := entity.BuscarCampo("curso")
	a := &pivot.Config{Rows: []entity.FieldDescriptor{curso}}
	require.NoError(t, repo.SavePivotConfig("a", a))

	b, err := repo.LoadPivotConfig("b")
	require.NoError(t, err)
	assert.Nil(t, b)
}
