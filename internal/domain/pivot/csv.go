package pivot

import (
	"strconv"
	"strings"
)

// RotuloVazio é o marcador exibido para a chave de linha vazia.
const RotuloVazio = "(vazio)"

// ExportCsv serializa a grade para texto CSV: uma linha de cabeçalho
// ("Linhas" e um par colKey × cabeçalho de valor por coluna) seguida de uma
// linha por rowKey. Campos são sempre entre aspas duplas, com aspas internas
// dobradas; delimitador vírgula, sem BOM. Pré-condição: resultado não nulo;
// a interface desabilita a exportação enquanto não há relatório computado.
func ExportCsv(res *Result) string {
	headers := []string{"Linhas"}
	for _, ck := range res.ColKeys {
		for _, vh := range res.ValueHeaders {
			headers = append(headers, ck+" - "+vh.Title)
		}
	}

	linhas := []string{linhaCsv(headers)}
	for _, rk := range res.RowKeys {
		rotulo := rk
		if rotulo == "" {
			rotulo = RotuloVazio
		}
		campos := []string{rotulo}
		for _, ck := range res.ColKeys {
			cell := res.Celula(rk, ck)
			for _, vh := range res.ValueHeaders {
				if v, ok := res.Escalar(cell, vh); ok {
					campos = append(campos, strconv.FormatFloat(v, 'f', -1, 64))
				} else {
					campos = append(campos, "")
				}
			}
		}
		linhas = append(linhas, linhaCsv(campos))
	}

	return strings.Join(linhas, "\n")
}

func linhaCsv(campos []string) string {
	out := make([]string, len(campos))
	for i, c := range campos {
		out[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(out, ",")
}
