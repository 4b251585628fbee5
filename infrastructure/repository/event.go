package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/database/postgres"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

const (
	eventsTable = "calendar_events"
)

type EventRepository interface {
	CreateEvent(record domain.EventRecord) (*domain.CalendarEvent, error)
	UpdateEvent(record domain.EventRecord) (*domain.CalendarEvent, error)
	GetEventByID(eventID uuid.UUID) (*domain.CalendarEvent, error)
	ListEventsByUser(userID int) ([]*domain.CalendarEvent, error)
	ListAllEvents() ([]*domain.CalendarEvent, error)
	DeleteEvent(eventID uuid.UUID) error
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) CreateEvent(record domain.EventRecord) (*domain.CalendarEvent, error) {
	query, args, err := squirrel.
		Insert(eventsTable).
		Columns("id", "user_id", "title", "description", "start_time", "end_time").
		Values(record.ID, record.UserID, record.Title, record.Description, record.StartTime, record.EndTime).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir evento: %w", err)
	}

	return r.GetEventByID(record.ID)
}

func (r *eventRepository) UpdateEvent(record domain.EventRecord) (*domain.CalendarEvent, error) {
	query, args, err := squirrel.
		Update(eventsTable).
		Set("title", record.Title).
		Set("description", record.Description).
		Set("start_time", record.StartTime).
		Set("end_time", record.EndTime).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao atualizar evento: %w", err)
	}

	return r.GetEventByID(record.ID)
}

func (r *eventRepository) GetEventByID(eventID uuid.UUID) (*domain.CalendarEvent, error) {
	query, args, err := eventSelect().
		Where(squirrel.Eq{"e.id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear evento: %w", err)
	}

	return event, nil
}

func (r *eventRepository) ListEventsByUser(userID int) ([]*domain.CalendarEvent, error) {
	return r.listEvents(eventSelect().
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.start_time ASC"))
}

func (r *eventRepository) ListAllEvents() ([]*domain.CalendarEvent, error) {
	return r.listEvents(eventSelect().OrderBy("e.start_time ASC"))
}

func (r *eventRepository) listEvents(queryBuilder squirrel.SelectBuilder) ([]*domain.CalendarEvent, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.CalendarEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *eventRepository) DeleteEvent(eventID uuid.UUID) error {
	query, args, err := squirrel.
		Delete(eventsTable).
		Where(squirrel.Eq{"id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir evento: %w", err)
	}

	return nil
}

func eventSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"e.id",
			"e.user_id",
			"e.title",
			"e.description",
			"e.start_time",
			"e.end_time",
			"e.created_at",
			"e.updated_at",
		).
		From(eventsTable + " e")
}

func scanEvent(scanner rowScanner) (*domain.CalendarEvent, error) {
	var (
		event       domain.CalendarEvent
		description sql.NullString
		endTime     sql.NullTime
	)

	err := scanner.Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&description,
		&event.StartTime,
		&endTime,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.Description = description.String

	if endTime.Valid {
		event.EndTime = &endTime.Time
	}

	return &event, nil
}
