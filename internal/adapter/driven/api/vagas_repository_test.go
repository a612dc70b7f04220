package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/repository"
	"github.com/elneves81/estagios-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListarVagas(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"unidade_setor":"UBS Centro","curso":"Enfermagem","horario":"7h30 as 11h30","dias_semana":"seg a sex","data_inicio":"01/02/2025","quantidade_grupos":2,"num_estagiarios_por_grupo":5},
			{"unidade_setor":"UPA Norte","curso":"Medicina","vagas":4}
		],"total":2}`))
	}))
	defer server.Close()

	repo := NewVagasRepository(server.URL, "tok-123")
	vagas, err := repo.ListarVagas(context.Background(), repository.FiltrosVagas{
		Busca:   "enfermagem",
		Unidade: "UBS Centro",
	})
	require.NoError(t, err)
	require.Len(t, vagas, 2)

	assert.Equal(t, "/vagas", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "enfermagem", gotQuery["q"][0])
	assert.Equal(t, "UBS Centro", gotQuery["unidade"][0])
	assert.Equal(t, "500", gotQuery["limit"][0])

	// Normalização na entrada
	assert.Equal(t, "07:30 às 11:30", vagas[0].Horario)
	assert.Equal(t, "Seg, Ter, Qua, Qui, Sex", vagas[0].DiasSemana)
	assert.Equal(t, "2025-02-01", vagas[0].DataInicio)

	// vagas calculado quando ausente, preservado quando o servidor mandou
	require.NotNil(t, vagas[0].Vagas)
	assert.Equal(t, 10.0, *vagas[0].Vagas)
	require.NotNil(t, vagas[1].Vagas)
	assert.Equal(t, 4.0, *vagas[1].Vagas)
}

func TestListarVagasSemRegistros(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer server.Close()

	repo := NewVagasRepository(server.URL, "")
	_, err := repo.ListarVagas(context.Background(), repository.FiltrosVagas{})
	assert.ErrorIs(t, err, types.ErrSemRegistros)
}

func TestListarVagasErroHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	repo := NewVagasRepository(server.URL, "invalido")
	_, err := repo.ListarVagas(context.Background(), repository.FiltrosVagas{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestResumo(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vagas/resumo", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items":[{"chave":"UBS Centro","vagas":12,"atividades":3}]}`))
	}))
	defer server.Close()

	repo := NewVagasRepository(server.URL, "")
	resumo, err := repo.Resumo(context.Background(), repository.FiltrosVagas{}, 10)
	require.NoError(t, err)

	assert.Equal(t, "unidade", gotQuery["group_by"][0])
	assert.Equal(t, "10", gotQuery["top"][0])
	require.Len(t, resumo.Items, 1)
	assert.Equal(t, "UBS Centro", resumo.Items[0].Chave)
	assert.Equal(t, 12.0, resumo.Items[0].Vagas)
	assert.Equal(t, 3, resumo.Items[0].Atividades)
}

func TestBaixarCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vagas/csv", r.URL.Path)
		w.Write([]byte("unidade_setor;curso\r\nUBS Centro;Enfermagem\r\n"))
	}))
	defer server.Close()

	repo := NewVagasRepository(server.URL, "")
	data, err := repo.BaixarCSV(context.Background(), repository.FiltrosVagas{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "UBS Centro")
}
