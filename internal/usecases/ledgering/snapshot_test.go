package ledgering

import (
	"testing"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func record(dept, month, revenue, expenses, budget, profit, growth, risk string) domain.RawRecord {
	return domain.RawRecord{
		domain.ColumnDepartment: dept,
		domain.ColumnMonth:      month,
		domain.ColumnRevenue:    revenue,
		domain.ColumnExpenses:   expenses,
		domain.ColumnBudget:     budget,
		domain.ColumnProfit:     profit,
		domain.ColumnGrowth:     growth,
		domain.ColumnRiskFlag:   risk,
	}
}

func TestBuildSnapshots(t *testing.T) {
	t.Run("Retém apenas o mês mais recente de cada departamento", func(t *testing.T) {
		records := []domain.RawRecord{
			record("Ops", "Jan-24", "100", "50", "80", "50", "1", "low"),
			record("Ops", "Feb-24", "200", "60", "80", "140", "2", "low"),
			record("R&D", "Jan-24", "300", "100", "150", "200", "3", "low"),
		}

		snapshots := BuildSnapshots(records)

		assert.Len(t, snapshots, 2)
		assert.Equal(t, "Ops", snapshots[0].Department)
		assert.Equal(t, "Feb-24", snapshots[0].MonthLabel)
		assert.Equal(t, 200.0, snapshots[0].Revenue)
		assert.Equal(t, "R&D", snapshots[1].Department)
	})

	t.Run("Empate cronológico mantém o primeiro registro", func(t *testing.T) {
		records := []domain.RawRecord{
			record("Ops", "Feb-24", "111", "0", "0", "0", "0", "low"),
			record("Ops", "2024-02", "222", "0", "0", "0", "0", "low"),
		}

		snapshots := BuildSnapshots(records)

		assert.Len(t, snapshots, 1)
		assert.Equal(t, 111.0, snapshots[0].Revenue)
		assert.Equal(t, "Feb-24", snapshots[0].MonthLabel)
	})

	t.Run("Linhas com mês irresolvível ficam fora da seleção", func(t *testing.T) {
		records := []domain.RawRecord{
			record("Ops", "not-a-month", "999", "0", "0", "0", "0", "low"),
			record("Ops", "Jan-24", "100", "0", "0", "0", "0", "low"),
			record("Ghost", "???", "500", "0", "0", "0", "0", "low"),
		}

		snapshots := BuildSnapshots(records)

		assert.Len(t, snapshots, 1)
		assert.Equal(t, "Ops", snapshots[0].Department)
		assert.Equal(t, 100.0, snapshots[0].Revenue)
	})

	t.Run("Departamentos placeholder colapsam em Unassigned", func(t *testing.T) {
		records := []domain.RawRecord{
			record("-", "Jan-24", "100", "0", "0", "0", "0", "low"),
			record("nil", "Feb-24", "200", "0", "0", "0", "0", "low"),
		}

		snapshots := BuildSnapshots(records)

		assert.Len(t, snapshots, 1)
		assert.Equal(t, domain.UnassignedDepartment, snapshots[0].Department)
		assert.Equal(t, "Feb-24", snapshots[0].MonthLabel)
	})

	t.Run("Saída ordenada por departamento ascendente", func(t *testing.T) {
		records := []domain.RawRecord{
			record("Zeta", "Jan-24", "1", "0", "0", "0", "0", "low"),
			record("Alpha", "Jan-24", "2", "0", "0", "0", "0", "low"),
			record("Mid", "Jan-24", "3", "0", "0", "0", "0", "low"),
		}

		snapshots := BuildSnapshots(records)

		assert.Equal(t, "Alpha", snapshots[0].Department)
		assert.Equal(t, "Mid", snapshots[1].Department)
		assert.Equal(t, "Zeta", snapshots[2].Department)
	})

	t.Run("Campos numéricos seguem a regra permissiva-para-zero", func(t *testing.T) {
		records := []domain.RawRecord{
			record("Ops", "Jan-24", "abc", "", "xyz", "nope", "bad", "high"),
		}

		snapshots := BuildSnapshots(records)

		assert.Len(t, snapshots, 1)
		assert.Equal(t, 0.0, snapshots[0].Revenue)
		assert.Equal(t, 0.0, snapshots[0].Expenses)
		assert.Equal(t, 0.0, snapshots[0].Budget)
		assert.Equal(t, 0.0, snapshots[0].Profit)
		assert.Equal(t, 0.0, snapshots[0].GrowthPercent)
		assert.Equal(t, domain.RiskHigh, snapshots[0].Risk)
	})
}

func TestUtilizationPercent(t *testing.T) {
	tests := []struct {
		name     string
		expenses float64
		budget   float64
		expected int
	}{
		{name: "Uso parcial arredondado", expenses: 50, budget: 80, expected: 63},
		{name: "Estouro é limitado a 100", expenses: 120, budget: 100, expected: 100},
		{name: "Orçamento zero resulta em 0", expenses: 50, budget: 0, expected: 0},
		{name: "Orçamento negativo resulta em 0", expenses: 50, budget: -10, expected: 0},
		{name: "Despesa negativa é limitada a 0", expenses: -20, budget: 100, expected: 0},
		{name: "Uso exato", expenses: 100, budget: 100, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utilizationPercent(tt.expenses, tt.budget))
		})
	}
}
