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
	notificationsTable = "notifications"
)

type NotificationRepository interface {
	CreateNotification(userID int, missionID *uuid.UUID, notifType domain.NotificationType, message string) (*domain.Notification, error)
	GetNotificationByID(notificationID uuid.UUID) (*domain.Notification, error)
	ListNotificationsByUser(userID int) ([]*domain.Notification, error)
	MarkNotificationRead(notificationID uuid.UUID) (*domain.Notification, error)
	DeleteNotification(notificationID uuid.UUID) error
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

func (r *notificationRepository) CreateNotification(userID int, missionID *uuid.UUID, notifType domain.NotificationType, message string) (*domain.Notification, error) {
	id := uuid.New()

	mission := uuid.NullUUID{}
	if missionID != nil {
		mission = uuid.NullUUID{UUID: *missionID, Valid: true}
	}

	query, args, err := squirrel.
		Insert(notificationsTable).
		Columns("id", "user_id", "mission_id", "type", "message", "is_read").
		Values(id, userID, mission, string(notifType), message, false).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir notificação: %w", err)
	}

	return r.GetNotificationByID(id)
}

func (r *notificationRepository) GetNotificationByID(notificationID uuid.UUID) (*domain.Notification, error) {
	query, args, err := notificationSelect().
		Where(squirrel.Eq{"n.id": notificationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	notification, err := scanNotification(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
	}

	return notification, nil
}

func (r *notificationRepository) ListNotificationsByUser(userID int) ([]*domain.Notification, error) {
	query, args, err := notificationSelect().
		Where(squirrel.Eq{"n.user_id": userID}).
		OrderBy("n.created_at DESC").
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

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkNotificationRead(notificationID uuid.UUID) (*domain.Notification, error) {
	query, args, err := squirrel.
		Update(notificationsTable).
		Set("is_read", true).
		Where(squirrel.Eq{"id": notificationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}

	return r.GetNotificationByID(notificationID)
}

func (r *notificationRepository) DeleteNotification(notificationID uuid.UUID) error {
	query, args, err := squirrel.
		Delete(notificationsTable).
		Where(squirrel.Eq{"id": notificationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir notificação: %w", err)
	}

	return nil
}

func notificationSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"n.id",
			"n.user_id",
			"n.mission_id",
			"n.type",
			"n.message",
			"n.is_read",
			"n.created_at",
		).
		From(notificationsTable + " n")
}

func scanNotification(scanner rowScanner) (*domain.Notification, error) {
	var (
		notification domain.Notification
		missionID    uuid.NullUUID
		notifType    string
	)

	err := scanner.Scan(
		&notification.ID,
		&notification.UserID,
		&missionID,
		&notifType,
		&notification.Message,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	notification.Type = domain.NotificationType(notifType)

	if missionID.Valid {
		notification.MissionID = &missionID.UUID
	}

	return &notification, nil
}
