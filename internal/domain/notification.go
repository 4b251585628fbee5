package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifica a origem do aviso no sino do painel
type NotificationType string

const (
	NotificationMissionReminder NotificationType = "mission_reminder"
	NotificationSystem          NotificationType = "system"
)

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    int              `json:"user_id"`
	MissionID *uuid.UUID       `json:"mission_id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
