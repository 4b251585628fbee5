package ledgering

import (
	"math"
	"sort"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// BuildSnapshots agrupa os registros por departamento normalizado e retém,
// para cada grupo, apenas o registro cujo mês resolvido é o mais recente.
// Linhas com mês irresolvível não participam da seleção; um departamento sem
// nenhuma linha resolúvel fica fora da saída (nenhum snapshot é fabricado).
// Em caso de empate cronológico, vence o primeiro registro encontrado.
// A saída é ordenada por nome de departamento, ascendente e case-sensitive.
func BuildSnapshots(records []domain.RawRecord) []domain.FinancialSnapshot {
	type latest struct {
		record domain.RawRecord
		month  time.Time
	}

	latestByDept := make(map[string]latest)
	for _, record := range records {
		dept := NormalizeDepartment(record[domain.ColumnDepartment])

		month, ok := ResolveMonthLabel(record[domain.ColumnMonth])
		if !ok {
			continue
		}

		current, exists := latestByDept[dept]
		if !exists || month.After(current.month) {
			latestByDept[dept] = latest{record: record, month: month}
		}
	}

	snapshots := make([]domain.FinancialSnapshot, 0, len(latestByDept))
	for dept, entry := range latestByDept {
		record := entry.record

		revenue := ToNumber(record[domain.ColumnRevenue])
		expenses := ToNumber(record[domain.ColumnExpenses])
		budget := ToNumber(record[domain.ColumnBudget])

		snapshots = append(snapshots, domain.FinancialSnapshot{
			Department:         dept,
			MonthLabel:         record[domain.ColumnMonth],
			Revenue:            revenue,
			Expenses:           expenses,
			Budget:             budget,
			UtilizationPercent: utilizationPercent(expenses, budget),
			Profit:             ToNumber(record[domain.ColumnProfit]),
			GrowthPercent:      ToNumber(record[domain.ColumnGrowth]),
			Risk:               ParseRiskFlag(record[domain.ColumnRiskFlag]),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Department < snapshots[j].Department
	})

	return snapshots
}

// utilizationPercent calcula despesas como percentual do orçamento alocado,
// arredondado e limitado a [0, 100]; orçamento não positivo resulta em 0
func utilizationPercent(expenses, budget float64) int {
	if budget <= 0 {
		return 0
	}

	percent := int(math.Round(expenses / budget * 100))
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
