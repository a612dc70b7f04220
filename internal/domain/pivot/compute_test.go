package pivot

import (
	"testing"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func campo(t *testing.T, key string) entity.FieldDescriptor {
	t.Helper()
	f, ok := entity.BuscarCampo(key)
	require.True(t, ok, "campo %q não está no catálogo", key)
	return f
}

func registrosExemplo() []*entity.Vaga {
	return []*entity.Vaga{
		{UnidadeSetor: "UBS Centro", Curso: "Enfermagem", Nivel: "Superior", Vagas: f64(4)},
		{UnidadeSetor: "UBS Centro", Curso: "Medicina", Nivel: "Superior", Vagas: f64(2)},
		{UnidadeSetor: "UPA Norte", Curso: "Enfermagem", Nivel: "Técnico", Vagas: f64(6)},
		{UnidadeSetor: "UPA Norte", Curso: "Enfermagem", Nivel: "Superior", Vagas: f64(1)},
		{UnidadeSetor: "UBS Sul", Curso: "Medicina", Nivel: "Superior", Vagas: nil},
	}
}

func TestComputeSomaPorLinha(t *testing.T) {
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "unidade_setor")},
		Values: []ValueField{{Field: campo(t, "vagas"), Agg: AggSum}},
	}
	res := Compute(registrosExemplo(), cfg)

	// Ordem de primeira aparição, nunca alfabética
	assert.Equal(t, []string{"UBS Centro", "UPA Norte", "UBS Sul"}, res.RowKeys)
	assert.Equal(t, []string{""}, res.ColKeys)

	vh := res.ValueHeaders[0]
	assert.Equal(t, "SUM Vagas (calc.)", vh.Title)

	soma := func(rk string) float64 {
		v, ok := res.Escalar(res.Celula(rk, ""), vh)
		require.True(t, ok)
		return v
	}
	assert.Equal(t, 6.0, soma("UBS Centro"))
	assert.Equal(t, 7.0, soma("UPA Norte"))
	// Registro sem valor numérico não contribui para a soma
	assert.Equal(t, 0.0, soma("UBS Sul"))
}

func TestComputeLinhasEColunas(t *testing.T) {
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "unidade_setor")},
		Cols:   []entity.FieldDescriptor{campo(t, "curso")},
		Values: []ValueField{{Field: campo(t, "vagas"), Agg: AggSum}},
	}
	res := Compute(registrosExemplo(), cfg)

	assert.Equal(t, []string{"Enfermagem", "Medicina"}, res.ColKeys)

	vh := res.ValueHeaders[0]
	v, ok := res.Escalar(res.Celula("UPA Norte", "Enfermagem"), vh)
	require.True(t, ok)
	assert.Equal(t, 7.0, v)

	// Célula sem contribuição
	_, ok = res.Escalar(res.Celula("UPA Norte", "Medicina"), vh)
	assert.False(t, ok)
}

func TestComputeChaveComposta(t *testing.T) {
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "unidade_setor"), campo(t, "nivel")},
		Values: []ValueField{{Field: campo(t, "curso"), Agg: AggCount}},
	}
	res := Compute(registrosExemplo(), cfg)

	assert.Contains(t, res.RowKeys, "UBS Centro | Superior")
	assert.Contains(t, res.RowKeys, "UPA Norte | Técnico")
}

func TestComputeCount(t *testing.T) {
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "curso")},
		Values: []ValueField{{Field: campo(t, "curso"), Agg: AggCount}},
	}
	res := Compute(registrosExemplo(), cfg)

	vh := res.ValueHeaders[0]
	v, ok := res.Escalar(res.Celula("Enfermagem", ""), vh)
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
}

// A média divide a soma pela contagem TOTAL de registros da célula, incluindo
// os que não tinham valor numérico. Comportamento herdado do relatório
// original, mantido para compatibilidade das planilhas já publicadas.
func TestComputeAvgContaRegistrosSemValor(t *testing.T) {
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "curso")},
		Values: []ValueField{{Field: campo(t, "vagas"), Agg: AggAvg}},
	}
	res := Compute(registrosExemplo(), cfg)

	vh := res.ValueHeaders[0]
	// Medicina: registros com vagas=2 e vagas=nil -> soma 2 / 2 registros
	v, ok := res.Escalar(res.Celula("Medicina", ""), vh)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

// O acumulador da célula guarda o par (count, sum): count para todo registro
// da célula, sum apenas para os valores numéricos aproveitáveis.
func TestComputeAcumuladorPorCelula(t *testing.T) {
	registros := []*entity.Vaga{
		{UnidadeSetor: "A", Vagas: f64(10)},
		{UnidadeSetor: "A", Vagas: nil},
		{UnidadeSetor: "B", Vagas: f64(5)},
	}
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "unidade_setor")},
		Values: []ValueField{{Field: campo(t, "vagas"), Agg: AggSum}},
	}
	res := Compute(registros, cfg)

	aggKey := res.ValueHeaders[0].AggKey
	a := res.Celula("A", "")[aggKey]
	require.NotNil(t, a)
	assert.Equal(t, 2, a.Count)
	assert.Equal(t, 10.0, a.Sum)

	b := res.Celula("B", "")[aggKey]
	require.NotNil(t, b)
	assert.Equal(t, 1, b.Count)
	assert.Equal(t, 5.0, b.Sum)
}

func TestComputeConfiguracaoVazia(t *testing.T) {
	res := Compute(registrosExemplo(), &Config{})

	// Grade degenerada de célula única sob as chaves vazias
	assert.Equal(t, []string{""}, res.RowKeys)
	assert.Equal(t, []string{""}, res.ColKeys)
	assert.Empty(t, res.ValueHeaders)
}

func TestComputeSemRegistros(t *testing.T) {
	cfg := &Config{Rows: []entity.FieldDescriptor{campo(t, "curso")}}
	res := Compute(nil, cfg)

	assert.Empty(t, res.RowKeys)
	assert.Empty(t, res.ColKeys)
	assert.Nil(t, res.Celula("qualquer", ""))
}

func TestAplicarFiltros(t *testing.T) {
	registros := registrosExemplo()

	// OU dentro do mesmo filtro
	filtros := []FilterField{{
		Field:          campo(t, "unidade_setor"),
		SelectedValues: []string{"UBS Centro", "UBS Sul"},
	}}
	assert.Len(t, AplicarFiltros(registros, filtros), 3)

	// E entre filtros distintos
	filtros = append(filtros, FilterField{
		Field:          campo(t, "curso"),
		SelectedValues: []string{"Medicina"},
	})
	assert.Len(t, AplicarFiltros(registros, filtros), 2)

	// Filtro sem seleção deixa tudo passar
	semSelecao := []FilterField{{Field: campo(t, "curso")}}
	assert.Len(t, AplicarFiltros(registros, semSelecao), len(registros))
}

func TestValoresUnicos(t *testing.T) {
	got := ValoresUnicos(registrosExemplo(), "curso")
	assert.Equal(t, []string{"Enfermagem", "Medicina"}, got)

	// Valores vazios ficam de fora das opções de filtro
	got = ValoresUnicos(registrosExemplo(), "disciplina")
	assert.Empty(t, got)
}

// Recomputar com os mesmos registros e configuração dá o mesmo resultado.
func TestComputeDeterministico(t *testing.T) {
	cfg := &Config{
		Rows:   []entity.FieldDescriptor{campo(t, "unidade_setor")},
		Cols:   []entity.FieldDescriptor{campo(t, "nivel")},
		Values: []ValueField{{Field: campo(t, "vagas"), Agg: AggSum}},
	}
	a := Compute(registrosExemplo(), cfg)
	b := Compute(registrosExemplo(), cfg)
	assert.Equal(t, a.RowKeys, b.RowKeys)
	assert.Equal(t, a.ColKeys, b.ColKeys)
	assert.Equal(t, ExportCsv(a), ExportCsv(b))
}
