package normalizador

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValor(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado float64
	}{
		{"1234.56", 1234.56},
		{"1234,56", 1234.56},
		{"1.234,56", 1234.56},
		{"1.234.567,89", 1234567.89},
		{"1.234.56", 1234.56},
		{"1000", 1000},
		{"0,5", 0.5},
		{"  42  ", 42},
	}
	for _, c := range casos {
		got := ParseValor(c.entrada)
		require.NotNil(t, got, "entrada %q", c.entrada)
		assert.InDelta(t, c.esperado, *got, 1e-9, "entrada %q", c.entrada)
	}
}

func TestParseValorInaproveitavel(t *testing.T) {
	for _, entrada := range []string{"", "   ", "abc", "12abc", "R$ 100", "1,2,3"} {
		assert.Nil(t, ParseValor(entrada), "entrada %q", entrada)
	}
}

// Um valor já normalizado sobrevive à viagem formata-parseia sem perda.
func TestParseValorRoundTrip(t *testing.T) {
	entradas := []string{"1.234,56", "99,9", "1234.56"}
	for _, e := range entradas {
		primeiro := ParseValor(e)
		require.NotNil(t, primeiro)
		segundo := ParseValor(strconv.FormatFloat(*primeiro, 'f', -1, 64))
		require.NotNil(t, segundo)
		assert.Equal(t, *primeiro, *segundo, "entrada %q", e)
	}
}
