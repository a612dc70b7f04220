package entity

import "strconv"

// Vaga representa uma linha de atividade/vaga do Anexo II, conforme retornado
// pelo endpoint /vagas da API. Campos de texto ausentes chegam como string
// vazia; campos numéricos ausentes chegam como nil.
type Vaga struct {
	ID                     int      `json:"id,omitempty" csv:"id"`
	UnidadeSetor           string   `json:"unidade_setor" csv:"unidade_setor"`
	SupervisorNome         string   `json:"supervisor_nome" csv:"supervisor_nome"`
	Disciplina             string   `json:"disciplina" csv:"disciplina"`
	Curso                  string   `json:"curso" csv:"curso"`
	InstituicaoEnsino      string   `json:"instituicao_ensino" csv:"instituicao_ensino"`
	Nivel                  string   `json:"nivel" csv:"nivel"`
	Horario                string   `json:"horario" csv:"horario"`
	DiasSemana             string   `json:"dias_semana" csv:"dias_semana"`
	DataInicio             string   `json:"data_inicio" csv:"data_inicio"`
	DataFim                string   `json:"data_fim" csv:"data_fim"`
	QuantidadeGrupos       *float64 `json:"quantidade_grupos" csv:"quantidade_grupos"`
	NumEstagiariosPorGrupo *float64 `json:"num_estagiarios_por_grupo" csv:"num_estagiarios_por_grupo"`
	Vagas                  *float64 `json:"vagas" csv:"vagas"`
	CargaHorariaIndividual *float64 `json:"carga_horaria_individual" csv:"carga_horaria_individual"`
	Valor                  *float64 `json:"valor" csv:"valor"`
	ValorTotal             *float64 `json:"valor_total" csv:"valor_total"`
}

// Campo resolve um path do catálogo para o valor do registro.
// Retorna a projeção em string (como a célula do pivot enxerga o valor) e,
// quando o campo é numérico e está presente, o valor numérico.
// Substitui o acesso dinâmico por propriedade (getByPath) da interface web.
func (v *Vaga) Campo(path string) (texto string, numero *float64) {
	switch path {
	case "unidade_setor":
		return v.UnidadeSetor, nil
	case "supervisor_nome":
		return v.SupervisorNome, nil
	case "disciplina":
		return v.Disciplina, nil
	case "curso":
		return v.Curso, nil
	case "instituicao_ensino":
		return v.InstituicaoEnsino, nil
	case "nivel":
		return v.Nivel, nil
	case "horario":
		return v.Horario, nil
	case "dias_semana":
		return v.DiasSemana, nil
	case "data_inicio":
		return v.DataInicio, nil
	case "data_fim":
		return v.DataFim, nil
	case "quantidade_grupos":
		return formatNumero(v.QuantidadeGrupos), v.QuantidadeGrupos
	case "num_estagiarios_por_grupo":
		return formatNumero(v.NumEstagiariosPorGrupo), v.NumEstagiariosPorGrupo
	case "vagas":
		return formatNumero(v.Vagas), v.Vagas
	case "carga_horaria_individual":
		return formatNumero(v.CargaHorariaIndividual), v.CargaHorariaIndividual
	case "valor":
		return formatNumero(v.Valor), v.Valor
	case "valor_total":
		return formatNumero(v.ValorTotal), v.ValorTotal
	}
	return "", nil
}

// CalcularVagas aplica a invariante vagas = quantidade_grupos × num_estagiarios_por_grupo.
// Quando algum dos fatores está ausente o campo vagas não é alterado.
func (v *Vaga) CalcularVagas() {
	if v.QuantidadeGrupos == nil || v.NumEstagiariosPorGrupo == nil {
		return
	}
	total := *v.QuantidadeGrupos * *v.NumEstagiariosPorGrupo
	v.Vagas = &total
}

func formatNumero(n *float64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}
