package pivot

import (
	"sort"
	"strconv"
	"strings"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
)

// Accumulator guarda o par corrente de um campo de valor em uma célula.
// Count incrementa para todo registro da célula; Sum só recebe valores com
// coerção numérica bem-sucedida.
type Accumulator struct {
	Count int
	Sum   float64
}

// Cell é o conteúdo de uma célula da grade: um acumulador por aggKey
// ("agg:path") da zona de valores.
type Cell map[string]*Accumulator

// ValueHeader descreve uma coluna virtual criada por um campo de valor.
type ValueHeader struct {
	Title  string
	Agg    Aggregation
	Path   string
	AggKey string
}

// Result é a grade agregada. RowKeys e ColKeys preservam a ordem de primeira
// aparição durante a varredura dos registros (não são ordenados).
type Result struct {
	Grid         map[string]map[string]Cell
	RowKeys      []string
	ColKeys      []string
	ValueHeaders []ValueHeader
}

// Celula devolve a célula (rowKey, colKey), ou nil quando nenhum registro
// contribuiu para ela.
func (r *Result) Celula(rowKey, colKey string) Cell {
	cols, ok := r.Grid[rowKey]
	if !ok {
		return nil
	}
	return cols[colKey]
}

// Escalar deriva o valor final de uma célula para um cabeçalho de valor.
// A média é calculada na leitura como Sum/Count; Count inclui registros cujo
// valor não era numérico, reproduzindo o comportamento histórico do relatório
// (ver testes). ok=false quando a célula não tem contribuição para o aggKey.
func (r *Result) Escalar(cell Cell, vh ValueHeader) (float64, bool) {
	if cell == nil {
		return 0, false
	}
	acc, ok := cell[vh.AggKey]
	if !ok {
		return 0, false
	}
	switch vh.Agg {
	case AggCount:
		return float64(acc.Count), true
	case AggSum:
		return acc.Sum, true
	case AggAvg:
		if acc.Count == 0 {
			return 0, true
		}
		return acc.Sum / float64(acc.Count), true
	}
	return 0, false
}

// AplicarFiltros devolve a subsequência de registros que passa em todos os
// filtros configurados: E lógico entre filtros, OU entre os valores
// selecionados de um mesmo filtro. Filtro sem seleção deixa tudo passar.
func AplicarFiltros(registros []*entity.Vaga, filtros []FilterField) []*entity.Vaga {
	if len(filtros) == 0 {
		return registros
	}
	out := make([]*entity.Vaga, 0, len(registros))
	for _, reg := range registros {
		if passaFiltros(reg, filtros) {
			out = append(out, reg)
		}
	}
	return out
}

func passaFiltros(reg *entity.Vaga, filtros []FilterField) bool {
	for _, f := range filtros {
		if len(f.SelectedValues) == 0 {
			continue
		}
		texto, _ := reg.Campo(f.Field.Path)
		achou := false
		for _, v := range f.SelectedValues {
			if v == texto {
				achou = true
				break
			}
		}
		if !achou {
			return false
		}
	}
	return true
}

// Compute agrega os registros (já filtrados) na grade definida pela
// configuração. Nunca falha: configuração vazia produz a grade degenerada de
// célula única sob as chaves "", e lista vazia de registros produz grade sem
// linhas. Função pura, segura para recomputar a cada interação.
func Compute(registros []*entity.Vaga, cfg *Config) *Result {
	res := &Result{
		Grid:         make(map[string]map[string]Cell),
		ValueHeaders: montarValueHeaders(cfg.Values),
	}

	// Ordem de inserção das colunas por linha, para enumerar como a grade
	// original (linha a linha, na ordem de aparição).
	colOrder := make(map[string][]string)

	for _, reg := range registros {
		rKey := chaveProjecao(reg, cfg.Rows)
		cKey := chaveProjecao(reg, cfg.Cols)

		cols, ok := res.Grid[rKey]
		if !ok {
			cols = make(map[string]Cell)
			res.Grid[rKey] = cols
			res.RowKeys = append(res.RowKeys, rKey)
		}
		cell, ok := cols[cKey]
		if !ok {
			cell = make(Cell)
			cols[cKey] = cell
			colOrder[rKey] = append(colOrder[rKey], cKey)
		}

		for _, v := range cfg.Values {
			aggKey := string(v.Agg) + ":" + v.Field.Path
			acc, ok := cell[aggKey]
			if !ok {
				acc = &Accumulator{}
				cell[aggKey] = acc
			}
			acc.Count++
			if num, ok := coercaoNumerica(reg, v.Field.Path); ok {
				acc.Sum += num
			}
		}
	}

	// Enumera as chaves de coluna percorrendo as linhas na ordem de inserção.
	vistos := make(map[string]bool)
	for _, rKey := range res.RowKeys {
		for _, cKey := range colOrder[rKey] {
			if !vistos[cKey] {
				vistos[cKey] = true
				res.ColKeys = append(res.ColKeys, cKey)
			}
		}
	}

	return res
}

// chaveProjecao monta a chave de linha/coluna de um registro: os valores dos
// campos configurados unidos por " | "; campo ausente vira segmento vazio.
func chaveProjecao(reg *entity.Vaga, campos []entity.FieldDescriptor) string {
	if len(campos) == 0 {
		return ""
	}
	segs := make([]string, len(campos))
	for i, f := range campos {
		texto, _ := reg.Campo(f.Path)
		segs[i] = texto
	}
	return strings.Join(segs, " | ")
}

// coercaoNumerica tenta obter o valor numérico de um campo do registro.
// Campos numéricos ausentes e textos não numéricos ficam fora da soma
// (mas seguem contando no Count da célula).
func coercaoNumerica(reg *entity.Vaga, path string) (float64, bool) {
	texto, numero := reg.Campo(path)
	if numero != nil {
		return *numero, true
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(texto), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func montarValueHeaders(values []ValueField) []ValueHeader {
	headers := make([]ValueHeader, 0, len(values))
	for _, v := range values {
		label := v.Field.Label
		if label == "" {
			label = v.Field.Path
		}
		headers = append(headers, ValueHeader{
			Title:  strings.ToUpper(string(v.Agg)) + " " + label,
			Agg:    v.Agg,
			Path:   v.Field.Path,
			AggKey: string(v.Agg) + ":" + v.Field.Path,
		})
	}
	return headers
}

// ValoresUnicos lista os valores distintos e não vazios de um campo entre os
// registros, em ordem alfabética, para alimentar as opções de um filtro.
func ValoresUnicos(registros []*entity.Vaga, path string) []string {
	vistos := make(map[string]bool)
	var out []string
	for _, reg := range registros {
		texto, _ := reg.Campo(path)
		if texto == "" || vistos[texto] {
			continue
		}
		vistos[texto] = true
		out = append(out, texto)
	}
	sort.Strings(out)
	return out
}
