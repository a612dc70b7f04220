package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string

	// Conexão com a API
	APIURL string
	Token  string

	// Consulta enviada a /vagas
	Busca      string
	Unidade    string
	Supervisor string
	Dia        string
	Exercicio  string
	Limit      int
	Offset     int

	// Montagem do relatório
	Template string
	Rows     []string
	Cols     []string
	Values   []string
	Filters  []string

	// Exportação
	ReportName string
	ReportType []string
	Dir        string

	// Painéis extras
	Resumo      bool
	Campos      bool
	CSVServidor bool
}
