package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/marvelhub/marvel-hub-api/infrastructure/database/postgres"
	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/ledgersource/ledgersourceclient"
	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic"
	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic/mysticclient"
	"github.com/marvelhub/marvel-hub-api/infrastructure/repository"
	"github.com/marvelhub/marvel-hub-api/internal/api"
	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/scheduler"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/authenticating"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/gaming"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/missioning"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	missionRepo := repository.NewMissionRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)
	gameStatRepo := repository.NewGameStatRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	ledgerSource := ledgersourceclient.NewClient(cfg)
	ledgerService := ledgering.NewService(cfg, ledgerSource)

	mysticClient := mysticclient.NewClient(cfg)
	mysticService := mystic.New(cfg, mysticClient)

	missionService := missioning.NewService(missionRepo, notificationRepo)
	eventService := missioning.NewEventService(eventRepo)
	notificationService := missioning.NewNotificationService(notificationRepo)
	gameService := gaming.NewService(gameStatRepo, userRepo)

	// Primeiro ciclo do pipeline em background: o painel fica disponível
	// assim que a origem responder
	go func() {
		if _, err := ledgerService.Refresh(ctx); err != nil {
			logrus.WithError(err).Warn("Carga inicial do ledger financeiro falhou; nova tentativa via cron ou refresh manual")
		}
	}()

	ledgerRefreshService := scheduler.NewLedgerRefreshService(ledgerService, cfg)
	leaderboardSyncService := scheduler.NewLeaderboardSyncService(gameService, cfg)

	if err := ledgerRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do ledger financeiro")
	} else {
		logrus.Info("Agendador de recarga do ledger financeiro iniciado com sucesso")
	}

	if err := leaderboardSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recalculo do placar")
	} else {
		logrus.Info("Agendador de recalculo do placar iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ledgerService,
		missionService,
		eventService,
		notificationService,
		gameService,
		mysticService,
		authenticator,
		ledgerRefreshService,
		leaderboardSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
