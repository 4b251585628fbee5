package ledgering

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthAbbreviations = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

var (
	monYYPattern     = regexp.MustCompile(`^([A-Za-z]{3})-(\d{2})$`)
	monthNamePattern = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})$`)
	yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
)

// Layouts tentados pelo parse genérico, truncados para o primeiro dia do mês
var genericLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2006",
	"Jan 2006",
	"01/2006",
	"2006-01",
}

// ResolveMonthLabel converte um rótulo de mês heterogêneo em um ponto de
// calendário comparável (primeiro dia do mês, UTC). Estratégias tentadas em
// ordem, a primeira que resolver vence:
//  1. "Mon-YY" (ex.: "Jul-24"), ano = 2000 + YY
//  2. parse genérico de data, truncado para o mês
//  3. "MonthName YYYY" por prefixo case-insensitive das doze abreviações
//  4. "YYYY-MM" numérico, com 1 <= MM <= 12 e ano > 1900
//
// Rótulos irresolvíveis retornam ok=false e são excluídos de qualquer
// comparação cronológica; isso é política de descarte silencioso, não erro.
func ResolveMonthLabel(label string) (time.Time, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return time.Time{}, false
	}

	if m := monYYPattern.FindStringSubmatch(trimmed); m != nil {
		if monthIndex := abbreviationIndex(m[1]); monthIndex >= 0 {
			yy, _ := strconv.Atoi(m[2])
			return monthStart(2000+yy, monthIndex), true
		}
	}

	for _, layout := range genericLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return monthStart(parsed.Year(), int(parsed.Month())-1), true
		}
	}

	if m := monthNamePattern.FindStringSubmatch(trimmed); m != nil {
		if monthIndex := abbreviationIndex(m[1]); monthIndex >= 0 {
			year, _ := strconv.Atoi(m[2])
			return monthStart(year, monthIndex), true
		}
	}

	if m := yearMonthPattern.FindStringSubmatch(trimmed); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if year > 1900 && month >= 1 && month <= 12 {
			return monthStart(year, month-1), true
		}
	}

	return time.Time{}, false
}

// abbreviationIndex casa o nome pelo prefixo de três letras, case-insensitive
func abbreviationIndex(name string) int {
	lower := strings.ToLower(name)
	for i, abbr := range monthAbbreviations {
		if strings.HasPrefix(lower, abbr) {
			return i
		}
	}
	return -1
}

func monthStart(year, monthIndex int) time.Time {
	return time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
}
