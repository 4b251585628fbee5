package gaming

import (
	"testing"

	"github.com/marvelhub/marvel-hub-api/infrastructure/repository/mocks"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSaveOrUpdateStats(t *testing.T) {
	tests := []struct {
		name        string
		bestTime    string
		bestPoints  string
		current     *domain.GameStat
		expected    *domain.GameStat
		expectedErr error
	}{
		{
			name:       "Primeira partida grava tempo e pontuação",
			bestTime:   "2:30",
			bestPoints: "1500",
			current:    nil,
			expected:   &domain.GameStat{UserID: 7, BestTime: "2:30", BestPoints: "1500"},
		},
		{
			name:       "Tempo pior mantém o recorde anterior",
			bestTime:   "3:10",
			bestPoints: "2000",
			current:    &domain.GameStat{UserID: 7, BestTime: "2:30", BestPoints: "1500"},
			expected:   &domain.GameStat{UserID: 7, BestTime: "2:30", BestPoints: "2000"},
		},
		{
			name:       "Pontuação pior mantém o recorde anterior",
			bestTime:   "1:45",
			bestPoints: "800",
			current:    &domain.GameStat{UserID: 7, BestTime: "2:30", BestPoints: "1500"},
			expected:   &domain.GameStat{UserID: 7, BestTime: "1:45", BestPoints: "1500"},
		},
		{
			name:       "Empate de tempo mantém o valor anterior",
			bestTime:   "2:30",
			bestPoints: "1500",
			current:    &domain.GameStat{UserID: 7, BestTime: "2:30", BestPoints: "1500"},
			expected:   &domain.GameStat{UserID: 7, BestTime: "2:30", BestPoints: "1500"},
		},
		{
			name:        "Formato de tempo inválido é rejeitado",
			bestTime:    "90 segundos",
			bestPoints:  "100",
			expectedErr: ErrInvalidBestTime,
		},
		{
			name:        "Segundos acima de 59 são rejeitados",
			bestTime:    "2:75",
			bestPoints:  "100",
			expectedErr: ErrInvalidBestTime,
		},
		{
			name:        "Pontuação negativa é rejeitada",
			bestTime:    "2:30",
			bestPoints:  "-10",
			expectedErr: ErrInvalidBestPoints,
		},
		{
			name:        "Pontuação não numérica é rejeitada",
			bestTime:    "2:30",
			bestPoints:  "muitos",
			expectedErr: ErrInvalidBestPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gameStatRepo := mocks.NewMockGameStatRepository(ctrl)
			service := NewService(gameStatRepo, mocks.NewMockUserRepository(ctrl))

			if tt.expectedErr == nil {
				gameStatRepo.EXPECT().GetStatsByUserID(7).Return(tt.current, nil)
				gameStatRepo.EXPECT().UpsertStats(tt.expected).Return(nil)
				gameStatRepo.EXPECT().GetStatsByUserID(7).Return(tt.expected, nil)
			}

			stat, err := service.SaveOrUpdateStats(7, tt.bestTime, tt.bestPoints)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected.BestTime, stat.BestTime)
			assert.Equal(t, tt.expected.BestPoints, stat.BestPoints)
		})
	}
}

func TestRecomputeLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameStatRepo := mocks.NewMockGameStatRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(gameStatRepo, userRepo)

	stats := []*domain.GameStat{
		{UserID: 1, BestTime: "2:00", BestPoints: "1000"},
		{UserID: 2, BestTime: "1:30", BestPoints: "2500"},
		{UserID: 3, BestTime: "1:00", BestPoints: "1000"},
		{UserID: 4, BestTime: "corrompido", BestPoints: "500"},
	}

	users := []*domain.User{
		{ID: 1, Name: "Tony", Lastname: "Stark"},
		{ID: 2, Name: "Natasha", Lastname: "Romanoff"},
	}

	gameStatRepo.EXPECT().ListStats().Return(stats, nil)
	userRepo.EXPECT().ListUser().Return(users, nil)

	// Usuário 2 mantém a primeira posição; usuário 3 sobe da terceira
	// para a segunda; usuário 1 é novo no placar
	gameStatRepo.EXPECT().GetLeaderboardEntry(2).Return(&domain.LeaderboardEntry{UserID: 2, Position: 1}, nil)
	gameStatRepo.EXPECT().GetLeaderboardEntry(3).Return(&domain.LeaderboardEntry{UserID: 3, Position: 3}, nil)
	gameStatRepo.EXPECT().GetLeaderboardEntry(1).Return(nil, nil)

	gameStatRepo.EXPECT().
		SaveOrUpdateLeaderboard(gomock.Any()).
		DoAndReturn(func(entries []*domain.LeaderboardEntry) error {
			assert.Len(t, entries, 3)

			// Maior pontuação primeiro
			assert.Equal(t, 2, entries[0].UserID)
			assert.Equal(t, "Natasha Romanoff", entries[0].PlayerName)
			assert.Equal(t, 1, entries[0].Position)
			assert.Equal(t, 0, entries[0].PositionChange)

			// Empate em pontos decidido pelo menor tempo
			assert.Equal(t, 3, entries[1].UserID)
			assert.Equal(t, "Agente 3", entries[1].PlayerName)
			assert.Equal(t, 2, entries[1].Position)
			assert.Equal(t, 1, entries[1].PositionChange)
			assert.Equal(t, 3, entries[1].PreviousPosition)

			// Entrada nova não tem posição anterior
			assert.Equal(t, 1, entries[2].UserID)
			assert.Equal(t, 3, entries[2].Position)
			assert.Equal(t, 0, entries[2].PositionChange)
			assert.Equal(t, 0, entries[2].PreviousPosition)

			return nil
		})

	err := service.RecomputeLeaderboard()

	assert.NoError(t, err)
}

func TestRecomputeLeaderboard_SemEstatisticas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gameStatRepo := mocks.NewMockGameStatRepository(ctrl)
	service := NewService(gameStatRepo, mocks.NewMockUserRepository(ctrl))

	gameStatRepo.EXPECT().ListStats().Return(nil, nil)

	assert.NoError(t, service.RecomputeLeaderboard())
}
