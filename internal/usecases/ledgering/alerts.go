package ledgering

import (
	"fmt"
	"strconv"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// alertTimestampLayout limita o timestamp dos alertas à precisão de minuto
const alertTimestampLayout = "2006-01-02 15:04"

// DeriveAlerts varre os snapshots e emite alertas em ordem estável: primeiro
// os avisos de estouro de orçamento, depois os críticos de risco alto e por
// fim um único info para o maior crescimento projetado. Todos os alertas de
// um lote compartilham o mesmo timestamp e recebem IDs sequenciais a partir
// de 1. Os alertas nunca são persistidos: são regenerados a cada ciclo.
func DeriveAlerts(snapshots []domain.FinancialSnapshot, now time.Time) []domain.Alert {
	timestamp := now.Format(alertTimestampLayout)

	var alerts []domain.Alert
	nextID := 1

	for _, s := range snapshots {
		if s.Budget > 0 && s.Expenses > s.Budget {
			overagePercent := (s.Expenses - s.Budget) / s.Budget * 100
			alerts = append(alerts, domain.Alert{
				ID:        nextID,
				Type:      domain.AlertWarning,
				Message:   fmt.Sprintf("%s expenses exceeded budget by %.1f%% (%s)", s.Department, overagePercent, s.MonthLabel),
				Timestamp: timestamp,
			})
			nextID++
		}
	}

	for _, s := range snapshots {
		if s.Risk == domain.RiskHigh {
			alerts = append(alerts, domain.Alert{
				ID:        nextID,
				Type:      domain.AlertCritical,
				Message:   fmt.Sprintf("%s flagged as HIGH operational risk (%s)", s.Department, s.MonthLabel),
				Timestamp: timestamp,
			})
			nextID++
		}
	}

	if top, ok := topGrowth(snapshots); ok {
		growth := strconv.FormatFloat(top.GrowthPercent, 'f', -1, 64)
		alerts = append(alerts, domain.Alert{
			ID:        nextID,
			Type:      domain.AlertInfo,
			Message:   fmt.Sprintf("%s shows strongest growth (+%s%%)", top.Department, growth),
			Timestamp: timestamp,
		})
	}

	return alerts
}

// topGrowth devolve o snapshot de maior crescimento; em empate vence o
// primeiro na ordem dos snapshots
func topGrowth(snapshots []domain.FinancialSnapshot) (domain.FinancialSnapshot, bool) {
	if len(snapshots) == 0 {
		return domain.FinancialSnapshot{}, false
	}

	top := snapshots[0]
	for _, s := range snapshots[1:] {
		if s.GrowthPercent > top.GrowthPercent {
			top = s
		}
	}

	return top, true
}
