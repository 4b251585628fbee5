package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	ledgermocks "github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLedgerRefreshService(t *testing.T, enabled bool) (*LedgerRefreshService, *ledgermocks.MockLedgerer) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledgerService := ledgermocks.NewMockLedgerer(ctrl)

	cfg := &config.Config{
		LedgerSync: config.LedgerSync{
			CronSchedule: "0 * * * *",
			Enabled:      enabled,
		},
	}

	return NewLedgerRefreshService(ledgerService, cfg), ledgerService
}

func TestLedgerRefreshService_Start_Desabilitado(t *testing.T) {
	service, ledgerService := newLedgerRefreshService(t, false)

	// Nenhuma recarga deve ser disparada
	ledgerService.EXPECT().Refresh(gomock.Any()).Times(0)

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestLedgerRefreshService_RefreshLedger(t *testing.T) {
	t.Run("Recarga bem-sucedida registra a conclusão", func(t *testing.T) {
		service, ledgerService := newLedgerRefreshService(t, true)

		ledgerService.EXPECT().
			Refresh(gomock.Any()).
			Return(&domain.LedgerReport{
				Snapshots: []domain.FinancialSnapshot{{Department: "Ops"}},
			}, nil)

		service.refreshLedger(context.Background())

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha na recarga não registra conclusão", func(t *testing.T) {
		service, ledgerService := newLedgerRefreshService(t, true)

		ledgerService.EXPECT().
			Refresh(gomock.Any()).
			Return(nil, errors.Wrap(ledgering.ErrSourceFetch, "timeout"))

		service.refreshLedger(context.Background())

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Recarga concorrente é ignorada", func(t *testing.T) {
		service, ledgerService := newLedgerRefreshService(t, true)

		started := make(chan struct{})
		release := make(chan struct{})

		ledgerService.EXPECT().
			Refresh(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (*domain.LedgerReport, error) {
				close(started)
				<-release
				return &domain.LedgerReport{}, nil
			})

		go service.refreshLedger(context.Background())
		<-started

		// Segunda chamada encontra o sync em andamento e retorna sem recarregar
		service.refreshLedger(context.Background())

		close(release)

		assert.Eventually(t, func() bool {
			service.syncMutex.Lock()
			defer service.syncMutex.Unlock()
			return !service.syncRunning
		}, time.Second, 10*time.Millisecond)
	})
}

func TestLedgerRefreshService_GetStatus(t *testing.T) {
	service, _ := newLedgerRefreshService(t, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 * * * *", status["sync_cron"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}

func TestLedgerRefreshService_GetStatus_DuranteRecarga(t *testing.T) {
	service, ledgerService := newLedgerRefreshService(t, true)

	started := make(chan struct{})
	release := make(chan struct{})

	ledgerService.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.LedgerReport, error) {
			close(started)
			<-release
			return &domain.LedgerReport{}, nil
		})

	go service.refreshLedger(context.Background())
	<-started

	// Consulta de status enquanto a recarga segue em andamento
	status := service.GetStatus()
	startedAt, ok := status["last_sync_started_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, startedAt.IsZero())

	completedAt, ok := status["last_sync_completed_at"].(time.Time)
	assert.True(t, ok)
	assert.True(t, completedAt.IsZero())

	close(release)

	assert.Eventually(t, func() bool {
		completedAt, ok := service.GetStatus()["last_sync_completed_at"].(time.Time)
		return ok && !completedAt.IsZero()
	}, time.Second, 10*time.Millisecond)
}
