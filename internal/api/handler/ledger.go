package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	"github.com/marvelhub/marvel-hub-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetLedgerSnapshots retorna a tabela de snapshots financeiros, opcionalmente
// filtrada por departamento via query string
func GetLedgerSnapshots(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department := r.URL.Query().Get("department")

		snapshots, err := service.Snapshots(department)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLedgerTrend retorna a série mensal de receita e despesa.
// window aceita um inteiro positivo ou "all" para a série completa
func GetLedgerTrend(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department := r.URL.Query().Get("department")

		window := -1
		if raw := r.URL.Query().Get("window"); raw != "" {
			if raw == "all" {
				window = 0
			} else {
				parsed, err := strconv.Atoi(raw)
				if err != nil || parsed < 0 {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Janela inválida, use um inteiro positivo ou 'all'", nil)
					return
				}
				window = parsed
			}
		}

		trend, err := service.Trend(window, department)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLedgerProfit retorna o ranking de lucro por departamento, decrescente
func GetLedgerProfit(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profit, err := service.ProfitRanking()
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profit); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLedgerAlerts retorna o feed de alertas do último ciclo
func GetLedgerAlerts(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.Alerts()
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLedgerDepartments lista os departamentos presentes nos snapshots
func GetLedgerDepartments(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		departments, err := service.Departments()
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(departments); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLedgerSummary totaliza a visão filtrada para os cartões do painel
func GetLedgerSummary(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department := r.URL.Query().Get("department")

		summary, err := service.Summary(department)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ExportLedger devolve os snapshots filtrados como arquivo CSV para download
func ExportLedger(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department := r.URL.Query().Get("department")

		content, filename, err := service.Export(department)
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(content); err != nil {
			logrus.Error(err)
		}
	}
}

// RefreshLedger dispara um ciclo completo do pipeline e devolve o relatório
func RefreshLedger(service ledgering.Ledgerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshLedger")

		report, err := service.Refresh(r.Context())
		if err != nil {
			handleLedgerError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// handleLedgerError mapeia erros do pipeline para os códigos da API
func handleLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgering.ErrNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrLedgerNotLoaded, "Nenhum ciclo do pipeline foi concluído ainda", nil)

	case errors.Is(err, ledgering.ErrSourceFetch):
		apiErrors.WriteError(w, apiErrors.ErrLedgerSourceFetch, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no pipeline financeiro", nil)
	}
}
