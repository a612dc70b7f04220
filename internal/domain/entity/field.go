package entity

// FieldType distingue dimensões de texto de medidas numéricas.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
)

// FieldDescriptor descreve um campo selecionável do construtor de relatórios:
// uma dimensão (linhas/colunas/filtros) ou uma medida (valores).
type FieldDescriptor struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Path  string    `json:"path"`
	Type  FieldType `json:"type"`
}

// CatalogoCampos retorna o catálogo estático de campos disponíveis para o
// pivot, na mesma ordem apresentada pela interface de relatórios interativos.
func CatalogoCampos() []FieldDescriptor {
	return []FieldDescriptor{
		{Key: "instituicao_ensino", Label: "Instituição", Path: "instituicao_ensino", Type: FieldString},
		{Key: "curso", Label: "Curso", Path: "curso", Type: FieldString},
		{Key: "unidade_setor", Label: "Unidade/Setor", Path: "unidade_setor", Type: FieldString},
		{Key: "supervisor_nome", Label: "Supervisor", Path: "supervisor_nome", Type: FieldString},
		{Key: "disciplina", Label: "Disciplina", Path: "disciplina", Type: FieldString},
		{Key: "nivel", Label: "Nível", Path: "nivel", Type: FieldString},
		{Key: "dias_semana", Label: "Dias da semana", Path: "dias_semana", Type: FieldString},
		{Key: "horario", Label: "Horário", Path: "horario", Type: FieldString},
		{Key: "data_inicio", Label: "Data início", Path: "data_inicio", Type: FieldString},
		{Key: "quantidade_grupos", Label: "Qtd Grupos", Path: "quantidade_grupos", Type: FieldNumber},
		{Key: "num_estagiarios_por_grupo", Label: "Est./Grupo", Path: "num_estagiarios_por_grupo", Type: FieldNumber},
		{Key: "vagas", Label: "Vagas (calc.)", Path: "vagas", Type: FieldNumber},
		{Key: "carga_horaria_individual", Label: "CH individual", Path: "carga_horaria_individual", Type: FieldNumber},
		{Key: "valor_total", Label: "Valor total", Path: "valor_total", Type: FieldNumber},
	}
}

// BuscarCampo procura um descritor no catálogo pela key.
func BuscarCampo(key string) (FieldDescriptor, bool) {
	for _, f := range CatalogoCampos() {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}
