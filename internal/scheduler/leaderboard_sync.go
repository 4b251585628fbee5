package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/gaming"
	"github.com/sirupsen/logrus"
)

// LeaderboardSyncConfig representa a configuração do agendador do placar
type LeaderboardSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// LeaderboardSyncService recalcula o placar do jogo diariamente a partir das
// estatísticas salvas, preservando as posições anteriores para o cálculo de variação
type LeaderboardSyncService struct {
	scheduler           *gocron.Scheduler
	config              LeaderboardSyncConfig
	gameService         gaming.GameService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLeaderboardSyncService(gameService gaming.GameService, appConfig *config.Config) *LeaderboardSyncService {
	syncConfig := LeaderboardSyncConfig{
		CronSchedule: appConfig.LeaderboardSync.CronSchedule,
		SyncEnabled:  appConfig.LeaderboardSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do placar carregada")

	return &LeaderboardSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		gameService: gameService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *LeaderboardSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recalculo periódico do placar desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recalculo do placar")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncLeaderboard()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recalculo do placar: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recalculo do placar")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LeaderboardSyncService) syncLeaderboard() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recalculo do placar já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recalculo do placar do jogo")

	if err := s.gameService.RecomputeLeaderboard(); err != nil {
		logrus.WithError(err).Error("Erro ao recalcular o placar do jogo")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Recalculo do placar concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um recalculo do placar
func (s *LeaderboardSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recalculo do placar já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recalculo manual do placar")
	go s.syncLeaderboard()
}

// GetStatus retorna o status atual do agendador. Os timestamps são lidos sob
// o mesmo mutex que os protege durante o recalculo
func (s *LeaderboardSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
