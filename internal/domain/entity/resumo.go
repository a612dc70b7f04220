package entity

// ResumoItem é uma linha do resumo rápido retornado por /vagas/resumo:
// a chave de agrupamento (unidade) com os totais de vagas e atividades.
type ResumoItem struct {
	Chave      string  `json:"chave" csv:"chave"`
	Vagas      float64 `json:"vagas" csv:"vagas"`
	Atividades int     `json:"atividades" csv:"atividades"`
}

// ResumoVagas agrega os itens do resumo (top-N unidades por vagas).
type ResumoVagas struct {
	Items []ResumoItem `json:"items"`
}
