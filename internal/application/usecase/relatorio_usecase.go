package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/elneves81/estagios-dashboard-go/internal/domain/entity"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/pivot"
	"github.com/elneves81/estagios-dashboard-go/internal/domain/repository"
	"github.com/elneves81/estagios-dashboard-go/internal/shared/types"
)

// VagasRepositoryFactory constrói o cliente da API depois que a URL e o
// token foram resolvidos entre flags, arquivo de configuração e ambiente.
type VagasRepositoryFactory func(baseURL, token string) repository.VagasRepository

// RelatorioUseCase handles the interactive reports functionality.
type RelatorioUseCase struct {
	novaVagasRepo VagasRepositoryFactory
	exportRepo    repository.ExportRepository
	configRepo    repository.ConfigRepository
	prefsRepo     repository.PreferencesRepository
	console       types.ConsoleInterface
}

// NewRelatorioUseCase creates a new report use case.
func NewRelatorioUseCase(
	novaVagasRepo VagasRepositoryFactory,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	prefsRepo repository.PreferencesRepository,
	console types.ConsoleInterface,
) *RelatorioUseCase {
	return &RelatorioUseCase{
		novaVagasRepo: novaVagasRepo,
		exportRepo:    exportRepo,
		configRepo:    configRepo,
		prefsRepo:     prefsRepo,
		console:       console,
	}
}

// topUnidadesResumo é o corte do painel de resumo, o mesmo da interface web.
const topUnidadesResumo = 10

// RunRelatorio executa o fluxo principal: mescla configuração, busca os
// registros na API, monta o pivot e exibe/exporta o resultado.
func (uc *RelatorioUseCase) RunRelatorio(ctx context.Context, args *types.CLIArgs) error {
	// Painel de campos não precisa de API
	if args.Campos {
		uc.displayCatalogo()
		return nil
	}

	// Mescla o arquivo de configuração, se especificado (flags têm precedência)
	if args.ConfigFile != "" {
		fileConfig, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		uc.mergeConfig(args, fileConfig)
	}

	if args.APIURL == "" {
		return types.ErrAPIURLAusente
	}
	vagasRepo := uc.novaVagasRepo(args.APIURL, args.Token)

	filtros := repository.FiltrosVagas{
		Busca:      args.Busca,
		Unidade:    args.Unidade,
		Supervisor: args.Supervisor,
		Dia:        args.Dia,
		Exercicio:  args.Exercicio,
		Limit:      args.Limit,
		Offset:     args.Offset,
	}

	// Download direto do CSV pronto do servidor, sem montar relatório
	if args.CSVServidor {
		return uc.baixarCSVServidor(ctx, vagasRepo, filtros, args)
	}

	// Painel de resumo usa a agregação do servidor
	if args.Resumo {
		status := uc.console.Status("Buscando resumo de vagas...")
		resumo, err := vagasRepo.Resumo(ctx, filtros, topUnidadesResumo)
		status.Stop()
		if err != nil {
			return err
		}
		uc.console.DisplayResumoBars(resumo.Items)

		if args.ReportName != "" {
			uc.exportResumo(resumo, args)
		}
		return nil
	}

	// Monta a configuração do pivot antes de buscar os dados
	cfg, err := uc.buildPivotConfig(args)
	if err != nil {
		return err
	}
	if cfg.Vazia() {
		return types.ErrRelatorioVazio
	}

	status := uc.console.Status("Buscando registros de vagas...")
	registros, err := vagasRepo.ListarVagas(ctx, filtros)
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Computando relatório...")
	filtrados := pivot.AplicarFiltros(registros, cfg.Filters)
	resultado := pivot.Compute(filtrados, cfg)
	status.Stop()

	uc.console.LogInfo("%d registros carregados, %d após filtros", len(registros), len(filtrados))

	// Exibe a grade
	table := uc.createPivotTable(resultado)
	uc.console.Print(table.Render())

	// Persiste a configuração usada para a próxima execução
	if uc.prefsRepo != nil {
		if err := uc.prefsRepo.SavePivotConfig(args.ReportName, cfg); err != nil {
			uc.console.LogWarning("Não foi possível salvar as preferências: %s", err)
		}
	}

	// Exporta os relatórios
	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportPivot(resultado, registros, args)
	}

	return nil
}

// buildPivotConfig monta a configuração a partir dos argumentos: template
// nomeado, depois zonas explícitas, com fallback para a última configuração
// salva quando nada foi pedido.
func (uc *RelatorioUseCase) buildPivotConfig(args *types.CLIArgs) (*pivot.Config, error) {
	cfg := &pivot.Config{}

	// Filtros entram antes do template, que os preserva
	for _, spec := range args.Filters {
		if err := uc.addFilter(cfg, spec); err != nil {
			return nil, err
		}
	}

	if args.Template != "" {
		if !pivot.AplicarTemplate(cfg, args.Template) {
			uc.console.LogError("Template desconhecido: %s (disponíveis: %s)",
				args.Template, strings.Join(pivot.TemplatesDisponiveis(), ", "))
			return nil, types.ErrRelatorioVazio
		}
		return cfg, nil
	}

	for _, key := range args.Rows {
		f, ok := entity.BuscarCampo(key)
		if !ok {
			uc.console.LogError("Campo desconhecido em --rows: %s", key)
			return nil, types.ErrCampoInvalido
		}
		cfg.AddField(f, pivot.ZoneRows)
	}
	for _, key := range args.Cols {
		f, ok := entity.BuscarCampo(key)
		if !ok {
			uc.console.LogError("Campo desconhecido em --cols: %s", key)
			return nil, types.ErrCampoInvalido
		}
		cfg.AddField(f, pivot.ZoneCols)
	}
	for _, spec := range args.Values {
		if err := uc.addValue(cfg, spec); err != nil {
			return nil, err
		}
	}

	// Sem zonas pedidas: tenta a última configuração salva
	if cfg.Vazia() && uc.prefsRepo != nil {
		salva, err := uc.prefsRepo.LoadPivotConfig(args.ReportName)
		if err != nil {
			uc.console.LogWarning("Não foi possível carregar as preferências: %s", err)
		} else if salva != nil && !salva.Vazia() {
			uc.console.LogInfo("Usando a última configuração salva do relatório")
			salva.Filters = append(salva.Filters, cfg.Filters...)
			return salva, nil
		}
	}

	return cfg, nil
}

// addValue interpreta um par "key:agg" da flag --values; agg omitida usa o
// padrão do tipo do campo.
func (uc *RelatorioUseCase) addValue(cfg *pivot.Config, spec string) error {
	key := spec
	agg := ""
	if i := strings.Index(spec, ":"); i >= 0 {
		key, agg = spec[:i], spec[i+1:]
	}

	f, ok := entity.BuscarCampo(key)
	if !ok {
		uc.console.LogError("Campo desconhecido em --values: %s", key)
		return types.ErrCampoInvalido
	}

	cfg.AddField(f, pivot.ZoneValues)
	if agg != "" {
		switch pivot.Aggregation(agg) {
		case pivot.AggCount, pivot.AggSum, pivot.AggAvg:
			cfg.SetAggregation(key, pivot.Aggregation(agg))
		default:
			uc.console.LogError("Agregação desconhecida em --values: %s (use count, sum ou avg)", agg)
			return types.ErrCampoInvalido
		}
	}
	return nil
}

// addFilter interpreta um par "key=v1|v2" da flag --filters.
func (uc *RelatorioUseCase) addFilter(cfg *pivot.Config, spec string) error {
	i := strings.Index(spec, "=")
	if i < 0 {
		uc.console.LogError("Filtro mal formado: %s", spec)
		return types.ErrFiltroMalFormado
	}
	key, valores := spec[:i], spec[i+1:]

	f, ok := entity.BuscarCampo(key)
	if !ok {
		uc.console.LogError("Campo desconhecido em --filters: %s", key)
		return types.ErrCampoInvalido
	}

	cfg.AddField(f, pivot.ZoneFilters)
	for _, v := range strings.Split(valores, "|") {
		if v != "" {
			cfg.ToggleFilterValue(key, v)
		}
	}
	return nil
}

// createPivotTable projeta a grade na tabela de exibição, na mesma forma da
// exportação CSV.
func (uc *RelatorioUseCase) createPivotTable(res *pivot.Result) types.TableInterface {
	table := uc.console.CreateTable()

	table.AddColumn("Linhas")
	for _, ck := range res.ColKeys {
		for _, vh := range res.ValueHeaders {
			nome := vh.Title
			if ck != "" {
				nome = ck + " - " + vh.Title
			}
			table.AddColumn(nome)
		}
	}

	for _, rk := range res.RowKeys {
		rotulo := rk
		if rotulo == "" {
			rotulo = pivot.RotuloVazio
		}
		cells := []interface{}{rotulo}
		for _, ck := range res.ColKeys {
			cell := res.Celula(rk, ck)
			for _, vh := range res.ValueHeaders {
				if v, ok := res.Escalar(cell, vh); ok {
					cells = append(cells, strconv.FormatFloat(v, 'f', -1, 64))
				} else {
					cells = append(cells, "")
				}
			}
		}
		table.AddRow(cells...)
	}

	return table
}

// displayCatalogo lista os campos disponíveis para montagem do relatório.
func (uc *RelatorioUseCase) displayCatalogo() {
	table := uc.console.CreateTable()
	table.AddColumn("Key")
	table.AddColumn("Rótulo")
	table.AddColumn("Tipo")
	for _, f := range entity.CatalogoCampos() {
		table.AddRow(f.Key, f.Label, string(f.Type))
	}
	uc.console.Print(table.Render())
	uc.console.LogInfo("Templates disponíveis: %s", strings.Join(pivot.TemplatesDisponiveis(), ", "))
}

// exportPivot grava o relatório nos formatos pedidos. O CSV e o PDF saem da
// grade; o JSON dos registros brutos sai junto quando pedido com "raw".
func (uc *RelatorioUseCase) exportPivot(res *pivot.Result, registros []*entity.Vaga, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportPivotToCSV(res, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportPivotToJSON(res, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportPivotToPDF(res, tituloRelatorio(args), args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "raw":
			rawPath, err := uc.exportRepo.ExportVagasToCSV(registros, args.ReportName+"_registros", args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export raw records: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported raw records: %s", rawPath)
			}
		default:
			uc.console.LogWarning("Tipo de relatório desconhecido: %s", reportType)
		}
	}
}

// baixarCSVServidor salva o CSV gerado pelo servidor como veio, preservando
// o dialeto (ponto e vírgula, BOM) que a API já produz.
func (uc *RelatorioUseCase) baixarCSVServidor(ctx context.Context, vagasRepo repository.VagasRepository, filtros repository.FiltrosVagas, args *types.CLIArgs) error {
	status := uc.console.Status("Baixando CSV do servidor...")
	data, err := vagasRepo.BaixarCSV(ctx, filtros)
	status.Stop()
	if err != nil {
		return err
	}

	nome := args.ReportName
	if nome == "" {
		nome = "vagas"
	}
	destino := filepath.Join(args.Dir, nome+"_"+time.Now().Format("20060102_150405")+".csv")
	if err := os.WriteFile(destino, data, 0644); err != nil {
		return err
	}
	uc.console.LogSuccess("CSV do servidor salvo em: %s", destino)
	return nil
}

// exportResumo grava o painel de resumo nos formatos pedidos.
func (uc *RelatorioUseCase) exportResumo(resumo *entity.ResumoVagas, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportResumoToCSV(resumo, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportResumoToJSON(resumo, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		default:
			uc.console.LogWarning("Tipo de relatório desconhecido para o resumo: %s", reportType)
		}
	}
}

// mergeConfig aplica os valores do arquivo de configuração nos argumentos
// ainda não definidos pelas flags.
func (uc *RelatorioUseCase) mergeConfig(args *types.CLIArgs, fileConfig *types.Config) {
	if args.APIURL == "" {
		args.APIURL = fileConfig.APIURL
	}
	if args.Token == "" {
		args.Token = fileConfig.Token
	}
	if args.Busca == "" {
		args.Busca = fileConfig.Busca
	}
	if args.Unidade == "" {
		args.Unidade = fileConfig.Unidade
	}
	if args.Supervisor == "" {
		args.Supervisor = fileConfig.Supervisor
	}
	if args.Dia == "" {
		args.Dia = fileConfig.Dia
	}
	if args.Exercicio == "" {
		args.Exercicio = fileConfig.Exercicio
	}
	if fileConfig.Limit > 0 && args.Limit == 500 {
		args.Limit = fileConfig.Limit
	}
	if args.Template == "" {
		args.Template = fileConfig.Template
	}
	if len(args.Rows) == 0 {
		args.Rows = fileConfig.Rows
	}
	if len(args.Cols) == 0 {
		args.Cols = fileConfig.Cols
	}
	if len(args.Values) == 0 {
		args.Values = fileConfig.Values
	}
	if len(args.Filters) == 0 {
		args.Filters = fileConfig.Filters
	}
	if args.ReportName == "" {
		args.ReportName = fileConfig.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = fileConfig.ReportType
	}
	if args.Dir == "" {
		args.Dir = fileConfig.Dir
	}
}

func tituloRelatorio(args *types.CLIArgs) string {
	if args.Template != "" {
		return "Relatório: " + args.Template
	}
	if args.ReportName != "" {
		return "Relatório: " + args.ReportName
	}
	return ""
}
