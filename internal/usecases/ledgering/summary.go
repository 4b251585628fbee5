package ledgering

import (
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/pkg/utils"
)

// BuildSummary totaliza a visão filtrada dos snapshots para os cartões do
// painel: receita, despesa, lucro líquido e utilização média do orçamento
func BuildSummary(snapshots []domain.FinancialSnapshot) domain.LedgerSummary {
	var summary domain.LedgerSummary

	for _, s := range snapshots {
		summary.TotalRevenue += s.Revenue
		summary.TotalExpenses += s.Expenses
		summary.NetProfit += s.Profit
		summary.AvgUtilization += float64(s.UtilizationPercent)
	}

	if len(snapshots) > 0 {
		summary.AvgUtilization = utils.RoundWithTwoDecimalPlace(summary.AvgUtilization / float64(len(snapshots)))
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalExpenses = utils.RoundWithTwoDecimalPlace(summary.TotalExpenses)
	summary.NetProfit = utils.RoundWithTwoDecimalPlace(summary.NetProfit)

	return summary
}
