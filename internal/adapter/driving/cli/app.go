package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/elneves81/estagios-dashboard-go/pkg/version"

	"github.com/elneves81/estagios-dashboard-go/internal/application/usecase"
	"github.com/elneves81/estagios-dashboard-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	relatorioUseCase *usecase.RelatorioUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "estagios-dashboard",
		Short:   "Relatórios interativos de vagas de estágio na rede de saúde",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Estágios Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the internships API (default: ESTAGIOS_API_URL env var)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for the API (default: ESTAGIOS_API_TOKEN env var)")
	rootCmd.PersistentFlags().StringP("busca", "q", "", "Free-text search across unit, supervisor, course and institution")
	rootCmd.PersistentFlags().StringP("unidade", "u", "", "Filter by unit/sector")
	rootCmd.PersistentFlags().StringP("supervisor", "s", "", "Filter by supervisor name")
	rootCmd.PersistentFlags().String("dia", "", "Filter by weekday (e.g. Seg, Ter)")
	rootCmd.PersistentFlags().StringP("exercicio", "e", "", "Filter by fiscal year of the activity start date")
	rootCmd.PersistentFlags().Int("limit", 500, "Maximum records fetched from the API")
	rootCmd.PersistentFlags().Int("offset", 0, "Pagination offset")
	rootCmd.PersistentFlags().StringP("template", "T", "", "Named report template: vagas_por_unidade, vagas_por_supervisor, valor_total_por_unidade, ch_media_por_curso")
	rootCmd.PersistentFlags().StringSlice("rows", nil, "Row fields for the pivot (comma-separated field keys)")
	rootCmd.PersistentFlags().StringSlice("cols", nil, "Column fields for the pivot (comma-separated field keys)")
	rootCmd.PersistentFlags().StringSlice("values", nil, "Value fields as key:agg pairs, e.g. vagas:sum,curso:count")
	rootCmd.PersistentFlags().StringSlice("filters", nil, "Filters as key=v1|v2 pairs, e.g. nivel=Superior")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("resumo", false, "Display the per-unit summary panel (top units by openings)")
	rootCmd.PersistentFlags().Bool("campos", false, "List the available pivot fields and exit")
	rootCmd.PersistentFlags().Bool("csv-servidor", false, "Download the server-generated CSV of the filtered records instead of building a report")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	apiURL, _ := app.rootCmd.Flags().GetString("api-url")
	token, _ := app.rootCmd.Flags().GetString("token")
	busca, _ := app.rootCmd.Flags().GetString("busca")
	unidade, _ := app.rootCmd.Flags().GetString("unidade")
	supervisor, _ := app.rootCmd.Flags().GetString("supervisor")
	dia, _ := app.rootCmd.Flags().GetString("dia")
	exercicio, _ := app.rootCmd.Flags().GetString("exercicio")
	limit, _ := app.rootCmd.Flags().GetInt("limit")
	offset, _ := app.rootCmd.Flags().GetInt("offset")
	template, _ := app.rootCmd.Flags().GetString("template")
	rows, _ := app.rootCmd.Flags().GetStringSlice("rows")
	cols, _ := app.rootCmd.Flags().GetStringSlice("cols")
	values, _ := app.rootCmd.Flags().GetStringSlice("values")
	filters, _ := app.rootCmd.Flags().GetStringSlice("filters")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	resumo, _ := app.rootCmd.Flags().GetBool("resumo")
	campos, _ := app.rootCmd.Flags().GetBool("campos")
	csvServidor, _ := app.rootCmd.Flags().GetBool("csv-servidor")

	// .env local complementa o ambiente sem sobrescrever variáveis já definidas
	_ = godotenv.Load()

	if apiURL == "" {
		apiURL = os.Getenv("ESTAGIOS_API_URL")
	}
	if token == "" {
		token = os.Getenv("ESTAGIOS_API_TOKEN")
	}

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		APIURL:      apiURL,
		Token:       token,
		Busca:       busca,
		Unidade:     unidade,
		Supervisor:  supervisor,
		Dia:         dia,
		Exercicio:   exercicio,
		Limit:       limit,
		Offset:      offset,
		Template:    template,
		Rows:        rows,
		Cols:        cols,
		Values:      values,
		Filters:     filters,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		Resumo:      resumo,
		Campos:      campos,
		CSVServidor: csvServidor,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa o relatório
	ctx := context.Background()
	return app.relatorioUseCase.RunRelatorio(ctx, cliArgs)
}

// SetRelatorioUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetRelatorioUseCase(useCase *usecase.RelatorioUseCase) {
	app.relatorioUseCase = useCase
}
