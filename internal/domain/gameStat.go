package domain

import "time"

// GameStat guarda o melhor desempenho de um usuário no jogo embutido.
// BestTime usa o formato "M:SS" (menor é melhor); BestPoints é numérico
// serializado como string pelo cliente do jogo (maior é melhor).
type GameStat struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	BestTime   string    `json:"best_time"`
	BestPoints string    `json:"best_points"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaderboardEntry é uma posição do placar, recalculada pelo agendador diário
type LeaderboardEntry struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	PlayerName       string    `json:"player_name"`
	BestTime         string    `json:"best_time"`
	BestPoints       int       `json:"best_points"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"`
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type LeaderboardResponse struct {
	Ranking    []LeaderboardEntry `json:"ranking"`
	LastUpdate time.Time          `json:"last_update"`
}
