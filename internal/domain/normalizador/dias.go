package normalizador

import (
	"regexp"
	"strings"
)

// DiasOrdem é a sequência semanal canônica, sempre iniciada na segunda-feira.
var DiasOrdem = []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// diasChave são as mesmas posições de DiasOrdem sem acento, usadas para
// casar entrada já normalizada.
var diasChave = []string{"seg", "ter", "qua", "qui", "sex", "sab", "dom"}

// aliasDia mapeia abreviações e nomes completos (com e sem acento, já
// minúsculos e sem diacríticos) para o rótulo canônico de três letras.
var aliasDia = map[string]string{
	"seg": "Seg", "segunda": "Seg", "segunda-feira": "Seg",
	"ter": "Ter", "terca": "Ter", "terca-feira": "Ter",
	"qua": "Qua", "quarta": "Qua", "quarta-feira": "Qua",
	"qui": "Qui", "quinta": "Qui", "quinta-feira": "Qui",
	"sex": "Sex", "sexta": "Sex", "sexta-feira": "Sex",
	"sab": "Sáb", "sabado": "Sáb",
	"dom": "Dom", "domingo": "Dom",
}

var (
	reIntervaloDias = regexp.MustCompile(`(seg|ter|qua|qui|sex|sab|dom)\s*(?:a|-|ate)\s*(seg|ter|qua|qui|sex|sab|dom)`)
	reSepDias       = regexp.MustCompile(`[\s,/]+`)
)

// ordenarDias reordena e junta os rótulos reconhecidos segundo DiasOrdem,
// descartando duplicatas.
func ordenarDias(dias []string) string {
	presentes := make(map[string]bool, len(dias))
	for _, d := range dias {
		presentes[d] = true
	}
	var out []string
	for _, d := range DiasOrdem {
		if presentes[d] {
			out = append(out, d)
		}
	}
	return strings.Join(out, ", ")
}

// ParseDiasTexto converte texto livre de dias da semana na lista canônica
// "Seg, Ter, ..., Dom". Intervalos como "seg a sex", "ter-qui" ou
// "segunda até quarta" expandem pelo índice na semana fixa (sem dar a volta
// depois de domingo); listas aceitam vírgula, espaço ou barra como separador.
// Tokens não reconhecidos são descartados em silêncio; sem nada reconhecível
// o resultado é vazio.
func ParseDiasTexto(txt string) string {
	if txt == "" {
		return ""
	}
	s := removerAcentos(txt)

	if m := reIntervaloDias.FindStringSubmatch(s); m != nil {
		i1 := indiceDia(m[1])
		i2 := indiceDia(m[2])
		if i1 != -1 && i2 != -1 {
			low, high := i1, i2
			if low > high {
				low, high = high, low
			}
			var dias []string
			for _, chave := range diasChave[low : high+1] {
				dias = append(dias, aliasDia[chave])
			}
			return ordenarDias(dias)
		}
	}

	var dias []string
	for _, p := range reSepDias.Split(s, -1) {
		if p == "" {
			continue
		}
		if d, ok := aliasDia[p]; ok {
			dias = append(dias, d)
		}
	}
	return ordenarDias(dias)
}

func indiceDia(chave string) int {
	for i, d := range diasChave {
		if d == chave {
			return i
		}
	}
	return -1
}
