package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/internal/scheduler"
	"github.com/marvelhub/marvel-hub-api/pkg/apiErrors"
	"github.com/marvelhub/marvel-hub-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeLedger      = "ledger"
	CronJobTypeLeaderboard = "leaderboard"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	LedgerRefreshService   *scheduler.LedgerRefreshService
	LeaderboardSyncService *scheduler.LeaderboardSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeLedger:
			if services.LedgerRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do ledger não disponível", nil)
				return
			}
			services.LedgerRefreshService.TriggerManualSync()

		case CronJobTypeLeaderboard:
			if services.LeaderboardSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recalculo do placar não disponível", nil)
				return
			}
			services.LeaderboardSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.LedgerRefreshService != nil {
				services.LedgerRefreshService.TriggerManualSync()
			}
			if services.LeaderboardSyncService != nil {
				services.LeaderboardSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ledger, leaderboard, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"ledger":      services.LedgerRefreshService.GetStatus(),
			"leaderboard": services.LeaderboardSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
