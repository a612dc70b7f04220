package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escreveArquivo(t *testing.T, nome, conteudo string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), nome)
	require.NoError(t, os.WriteFile(path, []byte(conteudo), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := escreveArquivo(t, "config.toml", `
api_url = "https://estagios.example.gov.br/api"
token = "abc"
template = "vagas_por_unidade"
report_type = ["csv", "pdf"]
limit = 200
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://estagios.example.gov.br/api", cfg.APIURL)
	assert.Equal(t, "abc", cfg.Token)
	assert.Equal(t, "vagas_por_unidade", cfg.Template)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
	assert.Equal(t, 200, cfg.Limit)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := escreveArquivo(t, "config.yaml", `
api_url: https://estagios.example.gov.br/api
rows:
  - unidade_setor
values:
  - vagas:sum
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"unidade_setor"}, cfg.Rows)
	assert.Equal(t, []string{"vagas:sum"}, cfg.Values)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := escreveArquivo(t, "config.json", `{"api_url":"http://localhost:8000","unidade":"UBS Centro"}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Equal(t, "UBS Centro", cfg.Unidade)
}

func TestLoadConfigFileErros(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nao_existe.toml"))
	assert.Error(t, err)

	path := escreveArquivo(t, "config.ini", "[section]")
	_, err = repo.LoadConfigFile(path)
	assert.ErrorContains(t, err, "unsupported config file format")

	dir := t.TempDir()
	_, err = repo.LoadConfigFile(dir)
	assert.ErrorContains(t, err, "is a directory")
}
