package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/config"
	gamingmocks "github.com/marvelhub/marvel-hub-api/internal/usecases/gaming/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLeaderboardSyncService(t *testing.T, enabled bool) (*LeaderboardSyncService, *gamingmocks.MockGameService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gameService := gamingmocks.NewMockGameService(ctrl)

	cfg := &config.Config{
		LeaderboardSync: config.LeaderboardSync{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}

	return NewLeaderboardSyncService(gameService, cfg), gameService
}

func TestLeaderboardSyncService_Start_Desabilitado(t *testing.T) {
	service, gameService := newLeaderboardSyncService(t, false)

	gameService.EXPECT().RecomputeLeaderboard().Times(0)

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestLeaderboardSyncService_SyncLeaderboard(t *testing.T) {
	t.Run("Recalculo bem-sucedido registra a conclusão", func(t *testing.T) {
		service, gameService := newLeaderboardSyncService(t, true)

		gameService.EXPECT().RecomputeLeaderboard().Return(nil)

		service.syncLeaderboard()

		assert.False(t, service.lastSyncStartedAt.IsZero())
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha no recalculo não registra conclusão", func(t *testing.T) {
		service, gameService := newLeaderboardSyncService(t, true)

		gameService.EXPECT().RecomputeLeaderboard().Return(errors.New("banco indisponível"))

		service.syncLeaderboard()

		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})
}

func TestLeaderboardSyncService_GetStatus(t *testing.T) {
	service, _ := newLeaderboardSyncService(t, true)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
}

func TestLeaderboardSyncService_GetStatus_DuranteRecalculo(t *testing.T) {
	service, gameService := newLeaderboardSyncService(t, true)

	started := make(chan struct{})
	release := make(chan struct{})

	gameService.EXPECT().
		RecomputeLeaderboard().
		DoAndReturn(func() error {
			close(started)
			<-release
			return nil
		})

	go service.syncLeaderboard()
	<-started

	// Consulta de status enquanto o recalculo segue em andamento
	status := service.GetStatus()
	startedAt, ok := status["last_sync_started_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, startedAt.IsZero())

	close(release)

	assert.Eventually(t, func() bool {
		completedAt, ok := service.GetStatus()["last_sync_completed_at"].(time.Time)
		return ok && !completedAt.IsZero()
	}, time.Second, 10*time.Millisecond)
}
