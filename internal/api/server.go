package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic"
	"github.com/marvelhub/marvel-hub-api/internal/api/handler"
	"github.com/marvelhub/marvel-hub-api/internal/api/handler/router"
	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/scheduler"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/authenticating"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/gaming"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/missioning"
	"github.com/marvelhub/marvel-hub-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	ledgerService ledgering.Ledgerer,
	missionService missioning.Missioner,
	eventService missioning.Eventer,
	notificationService missioning.Notifier,
	gameService gaming.GameService,
	mysticService mystic.MysticIntegrator,
	authenticator authenticating.Authenticator,
	ledgerRefreshService *scheduler.LedgerRefreshService,
	leaderboardSyncService *scheduler.LeaderboardSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		LedgerRefreshService:   ledgerRefreshService,
		LeaderboardSyncService: leaderboardSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Ledger(ledgerService)...),
		router.WithRoutes(handler.Missions(missionService)...),
		router.WithRoutes(handler.Events(eventService)...),
		router.WithRoutes(handler.Notifications(notificationService)...),
		router.WithRoutes(handler.Game(gameService)...),
		router.WithRoutes(handler.Mystic(mysticService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
