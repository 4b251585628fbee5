package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	"github.com/sirupsen/logrus"
)

// LedgerRefreshConfig representa a configuração do agendador do ledger financeiro
type LedgerRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// LedgerRefreshService recarrega o CSV financeiro periodicamente e reconstrói o relatório
type LedgerRefreshService struct {
	scheduler           *gocron.Scheduler
	config              LedgerRefreshConfig
	ledgerService       ledgering.Ledgerer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewLedgerRefreshService(ledgerService ledgering.Ledgerer, appConfig *config.Config) *LedgerRefreshService {
	refreshConfig := LedgerRefreshConfig{
		CronSchedule: appConfig.LedgerSync.CronSchedule,
		SyncEnabled:  appConfig.LedgerSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador do ledger financeiro carregada")

	return &LedgerRefreshService{
		scheduler:     scheduler,
		config:        refreshConfig,
		ledgerService: ledgerService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *LedgerRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga periódica do ledger financeiro desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do ledger financeiro")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshLedger(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do ledger financeiro: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do ledger financeiro")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LedgerRefreshService) refreshLedger(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do ledger financeiro já em andamento, ignorando")
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

	logrus.Info("Iniciando recarga do ledger financeiro")

	report, err := s.ledgerService.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o ledger financeiro")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"snapshots": len(report.Snapshots),
		"alerts":    len(report.Alerts),
	}).Info("Recarga do ledger financeiro concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma recarga do ledger financeiro
func (s *LedgerRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do ledger financeiro já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do ledger financeiro")
	go s.refreshLedger(context.Background())
}

// GetStatus retorna o status atual do agendador. Os timestamps são lidos sob
// o mesmo mutex que os protege durante a recarga
func (s *LedgerRefreshService) GetStatus() map[string]any {
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
