package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/database/postgres"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

const (
	missionsTable    = "missions"
	missionLogsTable = "mission_logs"
)

type MissionRepository interface {
	CreateMission(record domain.MissionRecord) (*domain.Mission, error)
	UpdateMission(record domain.MissionRecord) (*domain.Mission, error)
	GetMissionByID(missionID uuid.UUID) (*domain.Mission, error)
	ListMissionsByUser(userID int, from, to *time.Time) ([]*domain.Mission, error)
	DeleteMission(missionID uuid.UUID) error
	CreateMissionLog(log domain.MissionLog) (*domain.MissionLog, error)
	ListMissionLogs(missionID uuid.UUID) ([]*domain.MissionLog, error)
	DeleteMissionLog(logID uuid.UUID) error
}

type missionRepository struct {
	conn *postgres.Connection
}

func NewMissionRepository(conn *postgres.Connection) MissionRepository {
	return &missionRepository{
		conn: conn,
	}
}

func (r *missionRepository) CreateMission(record domain.MissionRecord) (*domain.Mission, error) {
	query, args, err := squirrel.
		Insert(missionsTable).
		Columns(
			"id",
			"user_id",
			"title",
			"description",
			"mission_type",
			"threat_level",
			"latitude",
			"longitude",
			"start_time",
			"end_time",
			"success",
		).
		Values(
			record.ID,
			record.UserID,
			record.Title,
			record.Description,
			record.MissionType,
			record.ThreatLevel,
			record.Latitude,
			record.Longitude,
			record.StartTime,
			record.EndTime,
			record.Success,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir missão: %w", err)
	}

	return r.GetMissionByID(record.ID)
}

func (r *missionRepository) UpdateMission(record domain.MissionRecord) (*domain.Mission, error) {
	query, args, err := squirrel.
		Update(missionsTable).
		Set("title", record.Title).
		Set("description", record.Description).
		Set("mission_type", record.MissionType).
		Set("threat_level", record.ThreatLevel).
		Set("latitude", record.Latitude).
		Set("longitude", record.Longitude).
		Set("start_time", record.StartTime).
		Set("end_time", record.EndTime).
		Set("success", record.Success).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao atualizar missão: %w", err)
	}

	return r.GetMissionByID(record.ID)
}

func (r *missionRepository) GetMissionByID(missionID uuid.UUID) (*domain.Mission, error) {
	query, args, err := missionSelect().
		Where(squirrel.Eq{"m.id": missionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	mission, err := scanMissionRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear missão: %w", err)
	}

	return mission, nil
}

func (r *missionRepository) ListMissionsByUser(userID int, from, to *time.Time) ([]*domain.Mission, error) {
	queryBuilder := missionSelect().
		Where(squirrel.Eq{"m.user_id": userID}).
		OrderBy("m.start_time ASC")

	if from != nil && !from.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"m.start_time": *from})
	}

	if to != nil && !to.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"m.start_time": *to})
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	missions := make([]*domain.Mission, 0)
	for rows.Next() {
		mission, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear missão: %w", err)
		}
		missions = append(missions, mission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return missions, nil
}

func (r *missionRepository) DeleteMission(missionID uuid.UUID) error {
	query, args, err := squirrel.
		Delete(missionsTable).
		Where(squirrel.Eq{"id": missionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir missão: %w", err)
	}

	return nil
}

func (r *missionRepository) CreateMissionLog(log domain.MissionLog) (*domain.MissionLog, error) {
	query, args, err := squirrel.
		Insert(missionLogsTable).
		Columns("id", "mission_id", "note", "log_date").
		Values(log.ID, log.MissionID, log.Note, log.LogDate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir registro de missão: %w", err)
	}

	return r.getMissionLogByID(log.ID)
}

func (r *missionRepository) ListMissionLogs(missionID uuid.UUID) ([]*domain.MissionLog, error) {
	query, args, err := missionLogSelect().
		Where(squirrel.Eq{"l.mission_id": missionID}).
		OrderBy("l.log_date DESC").
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

	logs := make([]*domain.MissionLog, 0)
	for rows.Next() {
		log, err := scanMissionLog(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de missão: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func (r *missionRepository) DeleteMissionLog(logID uuid.UUID) error {
	query, args, err := squirrel.
		Delete(missionLogsTable).
		Where(squirrel.Eq{"id": logID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir registro de missão: %w", err)
	}

	return nil
}

func (r *missionRepository) getMissionLogByID(logID uuid.UUID) (*domain.MissionLog, error) {
	query, args, err := missionLogSelect().
		Where(squirrel.Eq{"l.id": logID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	log, err := scanMissionLog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear registro de missão: %w", err)
	}

	return log, nil
}

func missionLogSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"l.id",
			"l.mission_id",
			"l.note",
			"l.log_date",
			"l.created_at",
		).
		From(missionLogsTable + " l")
}

func scanMissionLog(scanner rowScanner) (*domain.MissionLog, error) {
	var log domain.MissionLog

	err := scanner.Scan(
		&log.ID,
		&log.MissionID,
		&log.Note,
		&log.LogDate,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &log, nil
}

func missionSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"m.id",
			"m.user_id",
			"m.title",
			"m.description",
			"m.mission_type",
			"m.threat_level",
			"m.latitude",
			"m.longitude",
			"m.start_time",
			"m.end_time",
			"m.success",
			"m.created_at",
			"m.updated_at",
		).
		From(missionsTable + " m")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(scanner rowScanner) (*domain.Mission, error) {
	var (
		mission     domain.Mission
		description sql.NullString
		missionType sql.NullString
		threatLevel sql.NullString
		latitude    sql.NullFloat64
		longitude   sql.NullFloat64
		endTime     sql.NullTime
		success     sql.NullBool
	)

	err := scanner.Scan(
		&mission.ID,
		&mission.UserID,
		&mission.Title,
		&description,
		&missionType,
		&threatLevel,
		&latitude,
		&longitude,
		&mission.StartTime,
		&endTime,
		&success,
		&mission.CreatedAt,
		&mission.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	mission.Description = description.String

	if missionType.Valid {
		value := domain.MissionType(missionType.String)
		mission.MissionType = &value
	}

	if threatLevel.Valid {
		value := domain.ThreatLevel(threatLevel.String)
		mission.ThreatLevel = &value
	}

	if latitude.Valid {
		mission.Latitude = &latitude.Float64
	}

	if longitude.Valid {
		mission.Longitude = &longitude.Float64
	}

	if endTime.Valid {
		mission.EndTime = &endTime.Time
	}

	if success.Valid {
		mission.Success = &success.Bool
	}

	return &mission, nil
}

func scanMissionRow(row *sql.Row) (*domain.Mission, error) {
	return scanMission(row)
}
