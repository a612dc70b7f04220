package normalizador

import (
	"regexp"
	"time"
)

var reDataBR = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// NormalizarDataBR reescreve datas digitadas como "DD/MM/YYYY" para o formato
// ISO "YYYY-MM-DD". Qualquer outro formato é devolvido inalterado (assume-se
// já ISO ou texto intencionalmente livre).
func NormalizarDataBR(s string) string {
	m := reDataBR.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[3] + "-" + m[2] + "-" + m[1]
}

// DataCoerente verifica a coerência do período: verdadeiro quando alguma das
// datas está vazia ou quando início <= fim no calendário. Datas que não
// parseiam como ISO tornam o período incoerente.
func DataCoerente(ini, fim string) bool {
	if ini == "" || fim == "" {
		return true
	}
	a, err := time.Parse("2006-01-02", ini)
	if err != nil {
		return false
	}
	b, err := time.Parse("2006-01-02", fim)
	if err != nil {
		return false
	}
	return !a.After(b)
}
