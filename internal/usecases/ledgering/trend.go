package ledgering

import (
	"sort"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// AllDepartments desabilita o filtro por departamento na agregação
const AllDepartments = "all"

// BuildTrend agrupa todos os registros (não apenas o mais recente de cada
// departamento) pelo rótulo bruto de mês, soma receita e despesa por grupo e
// ordena pela data resolvida, ascendente. Grupos com mês irresolvível são
// descartados. O resultado é a janela final de tamanho window (0 = sem
// limite). Quando department é diferente de vazio e de "all", o conjunto de
// entrada é restringido antes do agrupamento, de modo que os totais refletem
// um único departamento.
func BuildTrend(records []domain.RawRecord, window int, department string) []domain.TrendPoint {
	type monthGroup struct {
		revenue  float64
		expenses float64
		resolved time.Time
	}

	byLabel := make(map[string]*monthGroup)
	var labels []string

	for _, record := range records {
		if department != "" && department != AllDepartments {
			if NormalizeDepartment(record[domain.ColumnDepartment]) != department {
				continue
			}
		}

		resolved, ok := ResolveMonthLabel(record[domain.ColumnMonth])
		if !ok {
			continue
		}

		label := record[domain.ColumnMonth]
		group, exists := byLabel[label]
		if !exists {
			group = &monthGroup{resolved: resolved}
			byLabel[label] = group
			labels = append(labels, label)
		}

		group.revenue += ToNumber(record[domain.ColumnRevenue])
		group.expenses += ToNumber(record[domain.ColumnExpenses])
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return byLabel[labels[i]].resolved.Before(byLabel[labels[j]].resolved)
	})

	if window > 0 && len(labels) > window {
		labels = labels[len(labels)-window:]
	}

	points := make([]domain.TrendPoint, 0, len(labels))
	for _, label := range labels {
		group := byLabel[label]
		points = append(points, domain.TrendPoint{
			Month:    label,
			Revenue:  group.revenue,
			Expenses: group.expenses,
		})
	}

	return points
}

// BuildProfitRanking deriva a lista de lucro 1:1 a partir dos snapshots,
// ordenada por lucro decrescente
func BuildProfitRanking(snapshots []domain.FinancialSnapshot) []domain.ProfitEntry {
	entries := make([]domain.ProfitEntry, 0, len(snapshots))
	for _, snapshot := range snapshots {
		entries = append(entries, domain.ProfitEntry{
			Department: snapshot.Department,
			Profit:     snapshot.Profit,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Profit > entries[j].Profit
	})

	return entries
}
