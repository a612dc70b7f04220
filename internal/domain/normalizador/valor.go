package normalizador

import (
	"strconv"
	"strings"
)

// ParseValor interpreta valores decimais digitados em formato brasileiro ou
// americano. Com vírgula presente ela é o separador decimal e pontos são
// milhares ("1.234,56" -> 1234.56); sem vírgula o último ponto separa a
// fração e os demais são descartados ("1.234.56" -> 1234.56). Entrada vazia
// ou inaproveitável retorna nil, nunca erro.
func ParseValor(s string) *float64 {
	str := strings.TrimSpace(s)
	if str == "" {
		return nil
	}

	if strings.Contains(str, ",") {
		clean := strings.ReplaceAll(str, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
		return parseFloatOuNil(clean)
	}

	parts := strings.Split(str, ".")
	if len(parts) > 1 {
		joined := strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
		return parseFloatOuNil(joined)
	}
	return parseFloatOuNil(parts[0])
}

func parseFloatOuNil(s string) *float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}
