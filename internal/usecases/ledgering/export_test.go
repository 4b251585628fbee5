package ledgering

import (
	"strings"
	"testing"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExportCSV(t *testing.T) {
	t.Run("Cabeçalho mais uma linha por snapshot", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{
				Department:         "Ops",
				MonthLabel:         "Jul-24",
				Revenue:            1500.5,
				Expenses:           1200,
				Budget:             1300,
				UtilizationPercent: 92,
				Profit:             300.5,
				GrowthPercent:      4.2,
				Risk:               domain.RiskMedium,
			},
		}

		lines := strings.Split(string(ExportCSV(snapshots)), "\n")

		assert.Len(t, lines, 2)
		assert.Equal(t, "department,month,revenue,expenses,budget,utilization,profit,growth,risk", lines[0])
		assert.Equal(t, "Ops,Jul-24,1500.5,1200,1300,92,300.5,4.2,medium", lines[1])
	})

	t.Run("Lista vazia exporta apenas o cabeçalho", func(t *testing.T) {
		content := string(ExportCSV(nil))

		assert.Equal(t, "department,month,revenue,expenses,budget,utilization,profit,growth,risk", content)
	})

	t.Run("Exportação é reparseável pelo próprio pipeline", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", MonthLabel: "Jul-24", Revenue: 100},
			{Department: "R&D", MonthLabel: "Aug-24", Revenue: 200},
		}

		records := ParseRows(string(ExportCSV(snapshots)))

		assert.Len(t, records, 2)
		assert.Equal(t, "Ops", records[0]["department"])
		assert.Equal(t, "100", records[0]["revenue"])
	})
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "starkledger_export_all.csv", ExportFilename(""))
	assert.Equal(t, "starkledger_export_all.csv", ExportFilename(AllDepartments))
	assert.Equal(t, "starkledger_export_Ops.csv", ExportFilename("Ops"))
}

func TestBuildSummary(t *testing.T) {
	t.Run("Totaliza a visão filtrada", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Revenue: 100.555, Expenses: 40, Profit: 60, UtilizationPercent: 50},
			{Revenue: 200, Expenses: 80, Profit: 120, UtilizationPercent: 75},
		}

		summary := BuildSummary(snapshots)

		assert.Equal(t, 300.56, summary.TotalRevenue)
		assert.Equal(t, 120.0, summary.TotalExpenses)
		assert.Equal(t, 180.0, summary.NetProfit)
		assert.Equal(t, 62.5, summary.AvgUtilization)
	})

	t.Run("Snapshots vazios produzem zeros", func(t *testing.T) {
		summary := BuildSummary(nil)

		assert.Equal(t, 0.0, summary.TotalRevenue)
		assert.Equal(t, 0.0, summary.AvgUtilization)
	})
}
