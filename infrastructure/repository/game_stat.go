package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/marvelhub/marvel-hub-api/infrastructure/database/postgres"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

const (
	gameStatsTable   = "game_stats"
	leaderboardTable = "game_leaderboard gl"
)

type GameStatRepository interface {
	GetStatsByUserID(userID int) (*domain.GameStat, error)
	ListStats() ([]*domain.GameStat, error)
	UpsertStats(stat *domain.GameStat) error
	GetLeaderboard() (*domain.LeaderboardResponse, error)
	GetLeaderboardEntry(userID int) (*domain.LeaderboardEntry, error)
	SaveOrUpdateLeaderboard(entries []*domain.LeaderboardEntry) error
}

type gameStatRepository struct {
	conn *postgres.Connection
}

func NewGameStatRepository(conn *postgres.Connection) GameStatRepository {
	return &gameStatRepository{
		conn: conn,
	}
}

func (r *gameStatRepository) GetStatsByUserID(userID int) (*domain.GameStat, error) {
	row := r.conn.QueryRow(
		"SELECT id, user_id, best_time, best_points, created_at, updated_at FROM game_stats WHERE user_id = $1",
		userID,
	)

	var stat domain.GameStat
	err := row.Scan(&stat.ID, &stat.UserID, &stat.BestTime, &stat.BestPoints, &stat.CreatedAt, &stat.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear estatísticas: %w", err)
	}

	return &stat, nil
}

func (r *gameStatRepository) ListStats() ([]*domain.GameStat, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "best_time", "best_points", "created_at", "updated_at").
		From(gameStatsTable).
		OrderBy("user_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.GameStat, 0)
	for rows.Next() {
		var stat domain.GameStat
		err := rows.Scan(&stat.ID, &stat.UserID, &stat.BestTime, &stat.BestPoints, &stat.CreatedAt, &stat.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas: %w", err)
		}
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *gameStatRepository) UpsertStats(stat *domain.GameStat) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(gameStatsTable).
		Columns("user_id", "best_time", "best_points").
		Values(stat.UserID, stat.BestTime, stat.BestPoints).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				best_time = EXCLUDED.best_time,
				best_points = EXCLUDED.best_points,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *gameStatRepository) GetLeaderboard() (*domain.LeaderboardResponse, error) {
	query, args, err := leaderboardSelect().
		OrderBy("gl.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ranking := make([]domain.LeaderboardEntry, 0)
	var lastUpdate time.Time

	for rows.Next() {
		entry, err := scanLeaderboardEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear posição do placar: %w", err)
		}

		ranking = append(ranking, *entry)

		if entry.UpdatedAt.After(lastUpdate) {
			lastUpdate = entry.UpdatedAt
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.LeaderboardResponse{
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *gameStatRepository) GetLeaderboardEntry(userID int) (*domain.LeaderboardEntry, error) {
	query, args, err := leaderboardSelect().
		Where(squirrel.Eq{"gl.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry := &domain.LeaderboardEntry{}
	err = row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.PlayerName,
		&entry.BestTime,
		&entry.BestPoints,
		&entry.Position,
		&entry.PositionChange,
		&entry.PreviousPosition,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear posição do placar: %w", err)
	}

	return entry, nil
}

func (r *gameStatRepository) SaveOrUpdateLeaderboard(entries []*domain.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("game_leaderboard").
		Columns(
			"user_id",
			"player_name",
			"best_time",
			"best_points",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		query = query.Values(
			entry.UserID,
			entry.PlayerName,
			entry.BestTime,
			entry.BestPoints,
			entry.Position,
			entry.PositionChange,
			entry.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (user_id) DO UPDATE SET
			player_name = EXCLUDED.player_name,
			best_time = EXCLUDED.best_time,
			best_points = EXCLUDED.best_points,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func leaderboardSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"gl.id",
			"gl.user_id",
			"gl.player_name",
			"gl.best_time",
			"gl.best_points",
			"gl.position",
			"gl.position_change",
			"gl.previous_position",
			"gl.created_at",
			"gl.updated_at",
		).
		From(leaderboardTable)
}

func scanLeaderboardEntry(rows *sql.Rows) (*domain.LeaderboardEntry, error) {
	entry := &domain.LeaderboardEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.PlayerName,
		&entry.BestTime,
		&entry.BestPoints,
		&entry.Position,
		&entry.PositionChange,
		&entry.PreviousPosition,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
