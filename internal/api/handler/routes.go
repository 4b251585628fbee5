package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic"
	"github.com/marvelhub/marvel-hub-api/internal/api/handler/router"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/authenticating"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/gaming"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/missioning"
	"github.com/marvelhub/marvel-hub-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Ledger(service ledgering.Ledgerer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ledger/snapshots",
			Method:      http.MethodGet,
			Handler:     GetLedgerSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/trend",
			Method:      http.MethodGet,
			Handler:     GetLedgerTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/profit",
			Method:      http.MethodGet,
			Handler:     GetLedgerProfit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/alerts",
			Method:      http.MethodGet,
			Handler:     GetLedgerAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/departments",
			Method:      http.MethodGet,
			Handler:     GetLedgerDepartments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/summary",
			Method:      http.MethodGet,
			Handler:     GetLedgerSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/export",
			Method:      http.MethodGet,
			Handler:     ExportLedger(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ledger/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshLedger(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Missions(service missioning.Missioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/missions",
			Method:      http.MethodGet,
			Handler:     ListMissions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions",
			Method:      http.MethodPost,
			Handler:     CreateMission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions/:id",
			Method:      http.MethodGet,
			Handler:     GetMission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions/:id/logs",
			Method:      http.MethodGet,
			Handler:     ListMissionLogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions/:id/logs",
			Method:      http.MethodPost,
			Handler:     AddMissionLog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/missions/:id/logs/:logId",
			Method:      http.MethodDelete,
			Handler:     DeleteMissionLog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Events(service missioning.Eventer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events",
			Method:      http.MethodGet,
			Handler:     ListEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events",
			Method:      http.MethodPost,
			Handler:     CreateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/admin/events",
			Method:      http.MethodGet,
			Handler:     ListAllEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Notifications(service missioning.Notifier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notifications/:id/read",
			Method:      http.MethodPost,
			Handler:     MarkNotificationRead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notifications/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteNotification(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Game(service gaming.GameService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/game/stats",
			Method:      http.MethodGet,
			Handler:     GetGameStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/game/stats",
			Method:      http.MethodPost,
			Handler:     SaveGameStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/game/leaderboard",
			Method:      http.MethodGet,
			Handler:     GetLeaderboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Mystic(service mystic.MysticIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/mystic/query",
			Method:      http.MethodPost,
			Handler:     QueryMystic(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mystic/documents",
			Method:      http.MethodGet,
			Handler:     ListMysticDocuments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mystic/documents",
			Method:      http.MethodPost,
			Handler:     UploadMysticDocument(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
