package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/normalizador"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/repository"
	"github.com/elneves81/estagios-dashboard-go/internal/shared/types"
)

// VagasRepositoryImpl implementa o VagasRepository sobre a API REST do
// Estagiosaude, autenticada por token Bearer.
type VagasRepositoryImpl struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewVagasRepository cria uma nova implementação do VagasRepository.
// baseURL é a raiz da API (ex.: https://estagios.example.gov.br/api).
func NewVagasRepository(baseURL, token string) repository.VagasRepository {
	return &VagasRepositoryImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type listaVagasResponse struct {
	Items []*entity.Vaga `json:"items"`
	Total int            `json:"total"`
}

type resumoResponse struct {
	Items []entity.ResumoItem `json:"items"`
}

// ListarVagas busca /vagas e normaliza os campos de texto livre dos
// registros (horário, dias da semana e datas) antes de devolvê-los.
func (r *VagasRepositoryImpl) ListarVagas(ctx context.Context, filtros repository.FiltrosVagas) ([]*entity.Vaga, error) {
	body, err := r.get(ctx, "/vagas", r.queryParams(filtros))
	if err != nil {
		return nil, err
	}

	var resp listaVagasResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error decoding /vagas response: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, types.ErrSemRegistros
	}

	for _, v := range resp.Items {
		normalizarRegistro(v)
	}
	return resp.Items, nil
}

// Resumo busca /vagas/resumo agrupado por unidade.
func (r *VagasRepositoryImpl) Resumo(ctx context.Context, filtros repository.FiltrosVagas, top int) (*entity.ResumoVagas, error) {
	params := r.queryParams(filtros)
	params.Set("group_by", "unidade")
	if top > 0 {
		params.Set("top", strconv.Itoa(top))
	}

	body, err := r.get(ctx, "/vagas/resumo", params)
	if err != nil {
		return nil, err
	}

	var resp resumoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error decoding /vagas/resumo response: %w", err)
	}
	return &entity.ResumoVagas{Items: resp.Items}, nil
}

// BaixarCSV repassa o CSV pronto do servidor (/vagas/csv) sem reprocessar.
func (r *VagasRepositoryImpl) BaixarCSV(ctx context.Context, filtros repository.FiltrosVagas) ([]byte, error) {
	return r.get(ctx, "/vagas/csv", r.queryParams(filtros))
}

func (r *VagasRepositoryImpl) queryParams(filtros repository.FiltrosVagas) url.Values {
	params := url.Values{}
	if filtros.Busca != "" {
		params.Set("q", filtros.Busca)
	}
	if filtros.Unidade != "" {
		params.Set("unidade", filtros.Unidade)
	}
	if filtros.Supervisor != "" {
		params.Set("supervisor", filtros.Supervisor)
	}
	if filtros.Dia != "" {
		params.Set("dia", filtros.Dia)
	}
	if filtros.Exercicio != "" {
		params.Set("exercicio", filtros.Exercicio)
	}
	limit := filtros.Limit
	if limit <= 0 {
		limit = 500
	}
	params.Set("limit", strconv.Itoa(limit))
	if filtros.Offset > 0 {
		params.Set("offset", strconv.Itoa(filtros.Offset))
	}
	return params
}

func (r *VagasRepositoryImpl) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := r.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// normalizarRegistro aplica os normalizadores de texto livre e completa o
// campo vagas quando o servidor não o calculou.
func normalizarRegistro(v *entity.Vaga) {
	v.Horario = normalizador.NormalizarHora(v.Horario)
	if dias := normalizador.ParseDiasTexto(v.DiasSemana); dias != "" {
		v.DiasSemana = dias
	}
	v.DataInicio = normalizador.NormalizarDataBR(v.DataInicio)
	v.DataFim = normalizador.NormalizarDataBR(v.DataFim)
	if v.Vagas == nil {
		v.CalcularVagas()
	}
}
