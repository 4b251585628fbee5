package ledgering

import (
	"testing"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveAlerts(t *testing.T) {
	now := time.Date(2024, 7, 15, 10, 30, 45, 0, time.UTC)

	t.Run("Estouro de orçamento gera warning com percentual", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", MonthLabel: "Jul-24", Expenses: 120, Budget: 100},
		}

		alerts := DeriveAlerts(snapshots, now)

		assert.Len(t, alerts, 2) // warning + info de crescimento
		assert.Equal(t, domain.AlertWarning, alerts[0].Type)
		assert.Equal(t, "Ops expenses exceeded budget by 20.0% (Jul-24)", alerts[0].Message)
		assert.Equal(t, "2024-07-15 10:30", alerts[0].Timestamp)
	})

	t.Run("Orçamento não positivo nunca gera estouro", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", MonthLabel: "Jul-24", Expenses: 120, Budget: 0},
		}

		alerts := DeriveAlerts(snapshots, now)

		for _, alert := range alerts {
			assert.NotEqual(t, domain.AlertWarning, alert.Type)
		}
	})

	t.Run("Risco alto gera alerta crítico", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Vault", MonthLabel: "Jul-24", Risk: domain.RiskHigh},
			{Department: "Ops", MonthLabel: "Jul-24", Risk: domain.RiskLow},
		}

		alerts := DeriveAlerts(snapshots, now)

		var critical []domain.Alert
		for _, alert := range alerts {
			if alert.Type == domain.AlertCritical {
				critical = append(critical, alert)
			}
		}

		assert.Len(t, critical, 1)
		assert.Equal(t, "Vault flagged as HIGH operational risk (Jul-24)", critical[0].Message)
	})

	t.Run("Um único info para o maior crescimento", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", GrowthPercent: 3.5},
			{Department: "R&D", GrowthPercent: 12.5},
			{Department: "Legal", GrowthPercent: 12.5},
		}

		alerts := DeriveAlerts(snapshots, now)

		assert.Len(t, alerts, 1)
		assert.Equal(t, domain.AlertInfo, alerts[0].Type)
		// Em empate vence o primeiro na ordem dos snapshots
		assert.Equal(t, "R&D shows strongest growth (+12.5%)", alerts[0].Message)
	})

	t.Run("Crescimento inteiro serializa sem zeros à direita", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", GrowthPercent: 8},
		}

		alerts := DeriveAlerts(snapshots, now)

		assert.Len(t, alerts, 1)
		assert.Equal(t, "Ops shows strongest growth (+8%)", alerts[0].Message)
	})

	t.Run("IDs sequenciais a partir de 1 na ordem warning, critical, info", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", MonthLabel: "Jul-24", Expenses: 150, Budget: 100, Risk: domain.RiskHigh, GrowthPercent: 5},
			{Department: "R&D", MonthLabel: "Jul-24", Expenses: 110, Budget: 100, Risk: domain.RiskLow, GrowthPercent: 2},
		}

		alerts := DeriveAlerts(snapshots, now)

		assert.Len(t, alerts, 4)
		for i, alert := range alerts {
			assert.Equal(t, i+1, alert.ID)
		}
		assert.Equal(t, domain.AlertWarning, alerts[0].Type)
		assert.Equal(t, domain.AlertWarning, alerts[1].Type)
		assert.Equal(t, domain.AlertCritical, alerts[2].Type)
		assert.Equal(t, domain.AlertInfo, alerts[3].Type)
	})

	t.Run("Snapshots vazios não geram alertas", func(t *testing.T) {
		assert.Empty(t, DeriveAlerts(nil, now))
	})

	t.Run("Todos os alertas do lote compartilham o timestamp", func(t *testing.T) {
		snapshots := []domain.FinancialSnapshot{
			{Department: "Ops", MonthLabel: "Jul-24", Expenses: 150, Budget: 100, GrowthPercent: 1},
			{Department: "R&D", MonthLabel: "Jul-24", Risk: domain.RiskHigh},
		}

		alerts := DeriveAlerts(snapshots, now)

		assert.NotEmpty(t, alerts)
		for _, alert := range alerts {
			assert.Equal(t, "2024-07-15 10:30", alert.Timestamp)
		}
	})
}
