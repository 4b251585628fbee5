package ledgering

import (
	"math"
	"strconv"
	"strings"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// NormalizeDepartment canonicaliza o nome do departamento: espaços são
// aparados e valores vazios ou placeholders ("-", "nil" em qualquer caixa)
// colapsam para o sentinela "Unassigned". Função pura, sem efeitos colaterais.
func NormalizeDepartment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" || strings.EqualFold(trimmed, "nil") {
		return domain.UnassignedDepartment
	}
	return trimmed
}

// ToNumber converte uma célula para número com a regra permissiva-para-zero:
// qualquer valor que não seja um número finito vira 0
func ToNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseRiskFlag deriva o nível de risco por substring case-insensitive;
// valores não reconhecidos assumem risco baixo
func ParseRiskFlag(raw string) domain.RiskLevel {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "high"):
		return domain.RiskHigh
	case strings.Contains(lower, "medium"):
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
