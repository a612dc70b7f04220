package pivot

import "github.com/elneves81/estagios-dashboard-go/internal/domain/entity"

// Templates rápidos do construtor de relatórios: configurações nomeadas
// prontas, as mesmas oferecidas pelos botões da página de relatórios.
const (
	TemplateVagasPorUnidade      = "vagas_por_unidade"
	TemplateVagasPorSupervisor   = "vagas_por_supervisor"
	TemplateValorTotalPorUnidade = "valor_total_por_unidade"
	TemplateCHMediaPorCurso      = "ch_media_por_curso"
)

// TemplatesDisponiveis lista os nomes de template conhecidos.
func TemplatesDisponiveis() []string {
	return []string{
		TemplateVagasPorUnidade,
		TemplateVagasPorSupervisor,
		TemplateValorTotalPorUnidade,
		TemplateCHMediaPorCurso,
	}
}

// AplicarTemplate substitui as zonas de projeção da configuração pela do
// template nomeado, preservando os filtros já montados. Retorna false para
// nome desconhecido, sem alterar a configuração.
func AplicarTemplate(cfg *Config, nome string) bool {
	var linha, valor string
	var agg Aggregation

	switch nome {
	case TemplateVagasPorUnidade:
		linha, valor, agg = "unidade_setor", "vagas", AggSum
	case TemplateVagasPorSupervisor:
		linha, valor, agg = "supervisor_nome", "vagas", AggSum
	case TemplateValorTotalPorUnidade:
		linha, valor, agg = "unidade_setor", "valor_total", AggSum
	case TemplateCHMediaPorCurso:
		linha, valor, agg = "curso", "carga_horaria_individual", AggAvg
	default:
		return false
	}

	campoLinha, ok := entity.BuscarCampo(linha)
	if !ok {
		return false
	}
	campoValor, ok := entity.BuscarCampo(valor)
	if !ok {
		return false
	}

	cfg.Rows = []entity.FieldDescriptor{campoLinha}
	cfg.Cols = nil
	cfg.Values = []ValueField{{Field: campoValor, Agg: agg}}
	return true
}
