package pivot

import (
	"testing"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFieldDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.AddField(campo(t, "vagas"), ZoneValues)
	cfg.AddField(campo(t, "curso"), ZoneValues)
	require.Len(t, cfg.Values, 2)

	// Agregação padrão: sum para numérico, count para texto
	assert.Equal(t, AggSum, cfg.Values[0].Agg)
	assert.Equal(t, AggCount, cfg.Values[1].Agg)

	cfg.AddField(campo(t, "nivel"), ZoneFilters)
	require.Len(t, cfg.Filters, 1)
	assert.Nil(t, cfg.Filters[0].SelectedValues)
}

func TestAddFieldDuplicadoEhNoOp(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "curso"), ZoneRows)
	cfg.AddField(campo(t, "curso"), ZoneRows)
	assert.Len(t, cfg.Rows, 1)

	// A mesma key pode viver em zonas diferentes
	cfg.AddField(campo(t, "curso"), ZoneCols)
	assert.Len(t, cfg.Cols, 1)
}

func TestRemoveFieldEClearZone(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "curso"), ZoneRows)
	cfg.AddField(campo(t, "nivel"), ZoneRows)

	cfg.RemoveField(ZoneRows, "curso")
	require.Len(t, cfg.Rows, 1)
	assert.Equal(t, "nivel", cfg.Rows[0].Key)

	// Remover key ausente é no-op
	cfg.RemoveField(ZoneRows, "inexistente")
	assert.Len(t, cfg.Rows, 1)

	cfg.ClearZone(ZoneRows)
	assert.Empty(t, cfg.Rows)
}

func TestSetAggregation(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "vagas"), ZoneValues)

	cfg.SetAggregation("vagas", AggAvg)
	assert.Equal(t, AggAvg, cfg.Values[0].Agg)

	// Key desconhecida é no-op
	cfg.SetAggregation("inexistente", AggCount)
	assert.Equal(t, AggAvg, cfg.Values[0].Agg)
}

func TestToggleFilterValue(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "nivel"), ZoneFilters)

	// Primeira ativação cria a lista com o valor único
	cfg.ToggleFilterValue("nivel", "Superior")
	assert.Equal(t, []string{"Superior"}, cfg.Filters[0].SelectedValues)

	cfg.ToggleFilterValue("nivel", "Técnico")
	assert.Equal(t, []string{"Superior", "Técnico"}, cfg.Filters[0].SelectedValues)

	// Alternar valor presente remove
	cfg.ToggleFilterValue("nivel", "Superior")
	assert.Equal(t, []string{"Técnico"}, cfg.Filters[0].SelectedValues)

	cfg.ClearFilter("nivel")
	assert.Nil(t, cfg.Filters[0].SelectedValues)
}

func TestVazia(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.Vazia())

	// Só filtros ainda é vazia: nada projetado
	cfg.AddField(campo(t, "nivel"), ZoneFilters)
	assert.True(t, cfg.Vazia())

	cfg.AddField(campo(t, "curso"), ZoneRows)
	assert.False(t, cfg.Vazia())
}

func TestZonasIndependentes(t *testing.T) {
	cfg := &Config{}
	cfg.AddField(campo(t, "curso"), ZoneRows)
	cfg.AddField(campo(t, "nivel"), ZoneCols)
	cfg.AddField(campo(t, "vagas"), ZoneValues)
	cfg.AddField(campo(t, "unidade_setor"), ZoneFilters)

	assert.Equal(t, []entity.FieldDescriptor{campo(t, "curso")}, cfg.Rows)
	assert.Equal(t, []entity.FieldDescriptor{campo(t, "nivel")}, cfg.Cols)
	assert.Len(t, cfg.Values, 1)
	assert.Len(t, cfg.Filters, 1)
}
