package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAplicarTemplate(t *testing.T) {
	cfg := &Config{}
	require.True(t, AplicarTemplate(cfg, TemplateVagasPorUnidade))

	require.Len(t, cfg.Rows, 1)
	assert.Equal(t, "unidade_setor", cfg.Rows[0].Key)
	assert.Empty(t, cfg.Cols)
	require.Len(t, cfg.Values, 1)
	assert.Equal(t, "vagas", cfg.Values[0].Field.Key)
	assert.Equal(t, AggSum, cfg.Values[0].Agg)
}

func TestAplicarTemplateMedia(t *testing.T) {
	cfg := &Config{}
	require.True(t, AplicarTemplate(cfg, TemplateCHMediaPorCurso))
	assert.Equal(t, "curso", cfg.Rows[0].Key)
	assert.Equal(t, "carga_horaria_individual", cfg.Values[0].Field.Key)
	assert.Equal(t, AggAvg, cfg.Values[0].Agg)
}

func TestAplicarTemplatePreservaFiltros(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "nivel"), ZoneFilters)
	cfg.ToggleFilterValue("nivel", "Superior")

	require.True(t, AplicarTemplate(cfg, TemplateVagasPorSupervisor))
	require.Len(t, cfg.Filters, 1)
	assert.Equal(t, []string{"Superior"}, cfg.Filters[0].SelectedValues)
}

func TestAplicarTemplateDesconhecido(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "curso"), ZoneRows)

	assert.False(t, AplicarTemplate(cfg, "nao_existe"))
	// Configuração intocada
	require.Len(t, cfg.Rows, 1)
	assert.Equal(t, "curso", cfg.Rows[0].Key)
}

func TestTemplatesDisponiveisSaoAplicaveis(t *testing.T) {
	for _, nome := range TemplatesDisponiveis() {
		cfg := &Config{}
		assert.True(t, AplicarTemplate(cfg, nome), "template %q", nome)
		assert.False(t, cfg.Vazia(), "template %q", nome)
	}
}
