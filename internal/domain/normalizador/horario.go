// Package normalizador concentra as normalizações de campos de formulário que
// antes viviam duplicadas em cada página (Anexo II, Vagas, Cadastro de
// Atividades). Nenhuma função retorna erro: entrada malformada degrada para a
// melhor forma canônica possível ou para a string original aparada.
package normalizador

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNaoDigito  = regexp.MustCompile(`\D`)
	reDigitos    = regexp.MustCompile(`\d+`)
	reHifen      = regexp.MustCompile(`\s*-\s*`)
	reLetraA     = regexp.MustCompile(`\s*a\s*`)
	reEspacos    = regexp.MustCompile(`\s+`)
	reSeparador  = regexp.MustCompile(`\sas\s`)
	reHoraExata  = regexp.MustCompile(`^(\d{2}):(\d{2}) às (\d{2}):(\d{2})$`)
	reHoraTokens = regexp.MustCompile(`(\d{1,2})[:h]?(\d{2})?`)
)

// removerAcentos remove marcas diacríticas e converte para minúsculas
// ("Às" -> "as", "Sáb" -> "sab").
func removerAcentos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, runes.Map(unicode.ToLower))
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// formatSegment formata até 4 dígitos como segmento parcial de hora:
// "8" -> "8", "80" -> "80", "800" -> "80:0", "0800" -> "08:00".
func formatSegment(digits string) string {
	if digits == "" {
		return ""
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + ":" + digits[2:]
}

// MaskHorario é a máscara incremental de digitação do campo horário: mantém
// apenas dígitos (no máximo 8) e os apresenta progressivamente no formato
// "HH:MM às HH:MM". É só apresentação; não valida faixas.
func MaskHorario(s string) string {
	digits := reNaoDigito.ReplaceAllString(s, "")
	if len(digits) > 8 {
		digits = digits[:8]
	}
	var part1, part2 string
	if len(digits) > 4 {
		part1, part2 = digits[:4], digits[4:]
	} else {
		part1 = digits
	}
	if part2 == "" {
		return formatSegment(part1)
	}
	return formatSegment(part1) + " às " + formatSegment(part2)
}

// preNormalizar aplica a limpeza tolerante compartilhada por NormalizarHora e
// HorarioValido: minúsculas sem acento, separadores "-" e "a" viram " as ",
// espaços colapsados.
func preNormalizar(s string) string {
	s = removerAcentos(s)
	s = reHifen.ReplaceAllString(s, " as ")
	s = reLetraA.ReplaceAllString(s, " as ")
	s = reEspacos.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// paraHHMM extrai os dígitos de um lado do intervalo e monta "HH:MM".
// 4+ dígitos: dois primeiros = hora, dois seguintes = minuto; 3 dígitos:
// primeiro = hora; 2 dígitos: hora cheia. Hora limitada a [0,23], minuto a [0,59].
func paraHHMM(txt string) string {
	d := strings.Join(reDigitos.FindAllString(txt, -1), "")
	var hh, mm int
	switch {
	case len(d) >= 4:
		hh, _ = strconv.Atoi(d[:2])
		mm, _ = strconv.Atoi(d[2:4])
	case len(d) == 3:
		hh, _ = strconv.Atoi(d[:1])
		mm, _ = strconv.Atoi(d[1:])
	case len(d) == 2:
		hh, _ = strconv.Atoi(d)
	}
	return fmt.Sprintf("%02d:%02d", clamp(hh, 0, 23), clamp(mm, 0, 59))
}

// NormalizarHora aceita formatos variados ("8 as 12", "08h00 - 12h00",
// "8:00 às 12:00", "08001200") e normaliza para "HH:MM às HH:MM". Quando nada
// é aproveitável devolve a entrada original aparada. Idempotente sobre a
// própria saída.
func NormalizarHora(s string) string {
	if s == "" {
		return ""
	}
	pre := preNormalizar(s)
	parts := reSeparador.Split(pre, -1)
	if len(parts) == 2 {
		return paraHHMM(parts[0]) + " às " + paraHHMM(parts[1])
	}
	// Sem separador reconhecível: tenta tratar como bloco posicional HHMMHHMM.
	all := strings.Join(reDigitos.FindAllString(pre, -1), "")
	if len(all) >= 8 {
		return all[:2] + ":" + all[2:4] + " às " + all[4:6] + ":" + all[6:8]
	}
	return strings.TrimSpace(s)
}

// minutosDoLado interpreta um lado do intervalo como minutos desde meia-noite.
// Retorna -1 quando nenhum horário é reconhecível.
func minutosDoLado(p string) int {
	m := reHoraTokens.FindStringSubmatch(p)
	if m == nil {
		return -1
	}
	hh, _ := strconv.Atoi(m[1])
	mm := 0
	if m[2] != "" {
		mm, _ = strconv.Atoi(m[2])
	} else {
		// "800" e "0800" sem separador: reconstrói pela contagem de dígitos.
		d := strings.Join(reDigitos.FindAllString(p, -1), "")
		if len(d) == 3 {
			hh, _ = strconv.Atoi(d[:1])
			mm, _ = strconv.Atoi(d[1:])
		} else if len(d) == 4 {
			hh, _ = strconv.Atoi(d[:2])
			mm, _ = strconv.Atoi(d[2:])
		}
	}
	return clamp(hh, 0, 23)*60 + clamp(mm, 0, 59)
}

// HorarioValido valida um horário de atividade. Campo opcional: vazio é
// válido. Aceita as mesmas variações toleradas por NormalizarHora e exige
// início estritamente anterior ao fim, no mesmo dia.
func HorarioValido(h string) bool {
	if h == "" {
		return true
	}
	parts := reSeparador.Split(preNormalizar(h), -1)
	if len(parts) != 2 {
		return false
	}
	ini := minutosDoLado(parts[0])
	fim := minutosDoLado(parts[1])
	if ini < 0 || fim < 0 {
		return false
	}
	return ini < fim
}

// HorarioCanonico informa se o valor já está na forma canônica
// "HH:MM às HH:MM".
func HorarioCanonico(h string) bool {
	return reHoraExata.MatchString(h)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
