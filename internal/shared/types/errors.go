package types

import "errors"

var (
	ErrAPIURLAusente    = errors.New("API URL not configured. Use --api-url, the config file, or ESTAGIOS_API_URL")
	ErrSemRegistros     = errors.New("no vacancy records returned for the given filters")
	ErrRelatorioVazio   = errors.New("report configuration is empty. Use --template or --rows/--values")
	ErrCampoInvalido    = errors.New("unknown field key for the report builder")
	ErrFiltroMalFormado = errors.New("filter must be in the form field=value1|value2")
)
