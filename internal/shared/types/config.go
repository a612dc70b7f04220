package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	APIURL     string   `json:"api_url" yaml:"api_url" toml:"api_url"`
	Token      string   `json:"token" yaml:"token" toml:"token"`
	Busca      string   `json:"busca" yaml:"busca" toml:"busca"`
	Unidade    string   `json:"unidade" yaml:"unidade" toml:"unidade"`
	Supervisor string   `json:"supervisor" yaml:"supervisor" toml:"supervisor"`
	Dia        string   `json:"dia" yaml:"dia" toml:"dia"`
	Exercicio  string   `json:"exercicio" yaml:"exercicio" toml:"exercicio"`
	Limit      int      `json:"limit" yaml:"limit" toml:"limit"`
	Template   string   `json:"template" yaml:"template" toml:"template"`
	Rows       []string `json:"rows" yaml:"rows" toml:"rows"`
	Cols       []string `json:"cols" yaml:"cols" toml:"cols"`
	Values     []string `json:"values" yaml:"values" toml:"values"`
	Filters    []string `json:"filters" yaml:"filters" toml:"filters"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
