// Package pivot implementa o motor de tabela dinâmica dos relatórios
// interativos: configuração por zonas (linhas, colunas, valores, filtros),
// agregação em grade e exportação CSV. O motor é puro e não guarda estado
// próprio, não faz I/O e pode ser recomputado a cada interação.
package pivot

import "github.com/elneves81/estagios-dashboard-go/internal/domain/entity"

// Aggregation identifica a função de agregação de um campo de valor.
type Aggregation string

const (
	AggCount Aggregation = "count"
	AggSum   Aggregation = "sum"
	AggAvg   Aggregation = "avg"
)

// Zone identifica o papel de um campo dentro da configuração.
type Zone string

const (
	ZoneRows    Zone = "rows"
	ZoneCols    Zone = "cols"
	ZoneValues  Zone = "values"
	ZoneFilters Zone = "filters"
)

// ValueField é um campo da zona de valores com sua agregação escolhida.
type ValueField struct {
	Field entity.FieldDescriptor
	Agg   Aggregation
}

// FilterField é um campo da zona de filtros. SelectedValues nil ou vazio
// significa "sem restrição": todos os registros passam.
type FilterField struct {
	Field          entity.FieldDescriptor
	SelectedValues []string
}

// Config é o estado mutável do construtor de relatórios. Uma Config vazia é
// válida e produz a grade degenerada de célula única.
type Config struct {
	Rows    []entity.FieldDescriptor
	Cols    []entity.FieldDescriptor
	Values  []ValueField
	Filters []FilterField
}

// AddField acrescenta um campo à zona indicada. Adicionar um campo cuja key
// já existe na zona é um no-op, não um erro. Na zona de valores o campo entra
// com a agregação padrão (sum para numéricos, count para texto); na de
// filtros entra sem restrição.
func (c *Config) AddField(f entity.FieldDescriptor, zone Zone) {
	if c.contemKey(zone, f.Key) {
		return
	}
	switch zone {
	case ZoneRows:
		c.Rows = append(c.Rows, f)
	case ZoneCols:
		c.Cols = append(c.Cols, f)
	case ZoneValues:
		agg := AggCount
		if f.Type == entity.FieldNumber {
			agg = AggSum
		}
		c.Values = append(c.Values, ValueField{Field: f, Agg: agg})
	case ZoneFilters:
		c.Filters = append(c.Filters, FilterField{Field: f})
	}
}

// RemoveField retira da zona o campo com a key informada; no-op se ausente.
func (c *Config) RemoveField(zone Zone, key string) {
	switch zone {
	case ZoneRows:
		c.Rows = removeDescriptor(c.Rows, key)
	case ZoneCols:
		c.Cols = removeDescriptor(c.Cols, key)
	case ZoneValues:
		out := c.Values[:0]
		for _, v := range c.Values {
			if v.Field.Key != key {
				out = append(out, v)
			}
		}
		c.Values = out
	case ZoneFilters:
		out := c.Filters[:0]
		for _, f := range c.Filters {
			if f.Field.Key != key {
				out = append(out, f)
			}
		}
		c.Filters = out
	}
}

// ClearZone esvazia uma zona inteira.
func (c *Config) ClearZone(zone Zone) {
	switch zone {
	case ZoneRows:
		c.Rows = nil
	case ZoneCols:
		c.Cols = nil
	case ZoneValues:
		c.Values = nil
	case ZoneFilters:
		c.Filters = nil
	}
}

// SetAggregation troca a agregação de um campo já presente na zona de
// valores; no-op para key desconhecida.
func (c *Config) SetAggregation(key string, agg Aggregation) {
	for i := range c.Values {
		if c.Values[i].Field.Key == key {
			c.Values[i].Agg = agg
		}
	}
}

// ToggleFilterValue alterna a presença de um valor na lista de seleção do
// filtro. Lista nil/vazia significa "todos passam"; a primeira ativação cria
// a lista com o valor único e ativações seguintes acrescentam ou retiram.
func (c *Config) ToggleFilterValue(key, value string) {
	for i := range c.Filters {
		f := &c.Filters[i]
		if f.Field.Key != key {
			continue
		}
		if len(f.SelectedValues) == 0 {
			f.SelectedValues = []string{value}
			return
		}
		for j, v := range f.SelectedValues {
			if v == value {
				f.SelectedValues = append(f.SelectedValues[:j], f.SelectedValues[j+1:]...)
				return
			}
		}
		f.SelectedValues = append(f.SelectedValues, value)
		return
	}
}

// ClearFilter volta o filtro da key informada para "sem restrição".
func (c *Config) ClearFilter(key string) {
	for i := range c.Filters {
		if c.Filters[i].Field.Key == key {
			c.Filters[i].SelectedValues = nil
		}
	}
}

// Vazia informa se nenhuma zona de projeção está configurada (linhas,
// colunas e valores vazios). A interface usa isso para decidir se há
// relatório a exibir.
func (c *Config) Vazia() bool {
	return len(c.Rows) == 0 && len(c.Cols) == 0 && len(c.Values) == 0
}

func (c *Config) contemKey(zone Zone, key string) bool {
	switch zone {
	case ZoneRows:
		return contemDescriptor(c.Rows, key)
	case ZoneCols:
		return contemDescriptor(c.Cols, key)
	case ZoneValues:
		for _, v := range c.Values {
			if v.Field.Key == key {
				return true
			}
		}
	case ZoneFilters:
		for _, f := range c.Filters {
			if f.Field.Key == key {
				return true
			}
		}
	}
	return false
}

func contemDescriptor(fields []entity.FieldDescriptor, key string) bool {
	for _, f := range fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

func removeDescriptor(fields []entity.FieldDescriptor, key string) []entity.FieldDescriptor {
	out := fields[:0]
	for _, f := range fields {
		if f.Key != key {
			out = append(out, f)
		}
	}
	return out
}
