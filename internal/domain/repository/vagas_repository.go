package repository

import (
	"context"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
)

// FiltrosVagas são os parâmetros de consulta aceitos por /vagas.
type FiltrosVagas struct {
	Busca      string
	Unidade    string
	Supervisor string
	Dia        string
	Exercicio  string
	Limit      int
	Offset     int
}

// VagasRepository define a interface de acesso à API de vagas/Anexo II.
type VagasRepository interface {
	// ListarVagas busca os registros de vaga já normalizados para o pivot.
	ListarVagas(ctx context.Context, filtros FiltrosVagas) ([]*entity.Vaga, error)

	// Resumo busca o resumo rápido agregado pelo servidor (top unidades).
	Resumo(ctx context.Context, filtros FiltrosVagas, top int) (*entity.ResumoVagas, error)

	// BaixarCSV repassa o CSV gerado pelo servidor em /vagas/csv.
	BaixarCSV(ctx context.Context, filtros FiltrosVagas) ([]byte, error)
}
