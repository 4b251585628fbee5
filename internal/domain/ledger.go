package domain

import "time"

// RawRecord representa uma linha bruta do CSV, indexada pelo nome da coluna.
// É um dado efêmero: descartado assim que as coleções derivadas são construídas.
type RawRecord map[string]string

// Colunas esperadas no CSV do Stark Ledger
const (
	ColumnDepartment = "Department"
	ColumnMonth      = "Month"
	ColumnRevenue    = "Revenue"
	ColumnExpenses   = "Expenses"
	ColumnProfit     = "Profit/Loss"
	ColumnBudget     = "Budget Allocation"
	ColumnGrowth     = "Forecasted Growth %"
	ColumnRiskFlag   = "Risk Flag"
)

// UnassignedDepartment é o sentinela para departamentos vazios ou placeholders
const UnassignedDepartment = "Unassigned"

// RiskLevel é a classificação de risco operacional de um departamento
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FinancialSnapshot é o registro mais recente retido por departamento
type FinancialSnapshot struct {
	Department         string    `json:"department"`
	MonthLabel         string    `json:"monthLabel"`
	Revenue            float64   `json:"revenue"`
	Expenses           float64   `json:"expenses"`
	Budget             float64   `json:"budget"`
	UtilizationPercent int       `json:"utilization"`
	Profit             float64   `json:"profit"`
	GrowthPercent      float64   `json:"growth"`
	Risk               RiskLevel `json:"risk"`
}

// TrendPoint é o total de receita/despesa de um mês somado entre departamentos
type TrendPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ProfitEntry é derivado 1:1 dos snapshots, ordenado por lucro decrescente
type ProfitEntry struct {
	Department string  `json:"department"`
	Profit     float64 `json:"profit"`
}

// AlertType indica a severidade de um alerta derivado
type AlertType string

const (
	AlertInfo     AlertType = "info"
	AlertWarning  AlertType = "warning"
	AlertCritical AlertType = "critical"
)

// Alert é gerado a cada ciclo completo de recomputação; nunca é persistido
type Alert struct {
	ID        int       `json:"id"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
}

// LedgerSummary são os totais exibidos nos cartões do painel, calculados
// sobre a visão filtrada dos snapshots
type LedgerSummary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProfit      float64 `json:"net_profit"`
	AvgUtilization float64 `json:"avg_utilization"`
}

// LedgerReport agrupa as quatro coleções derivadas de um ciclo do pipeline.
// O relatório é imutável: substituído por inteiro a cada ciclo bem-sucedido,
// nunca alterado campo a campo.
type LedgerReport struct {
	Snapshots   []FinancialSnapshot `json:"snapshots"`
	Trend       []TrendPoint        `json:"trend"`
	Profit      []ProfitEntry       `json:"profit"`
	Alerts      []Alert             `json:"alerts"`
	LastUpdated time.Time           `json:"last_updated"`
}

// Departments lista os departamentos presentes nos snapshots, já ordenados
func (r *LedgerReport) Departments() []string {
	departments := make([]string, 0, len(r.Snapshots))
	for _, s := range r.Snapshots {
		departments = append(departments, s.Department)
	}
	return departments
}
