package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CalendarEvent é um compromisso avulso do planejador, sem tipo de missão nem
// nível de ameaça
type CalendarEvent struct {
	ID          uuid.UUID  `json:"id"`
	UserID      int        `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EventRequest é o corpo de criação/atualização de eventos do calendário
type EventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// EventRecord é a forma persistível da requisição
type EventRecord struct {
	ID          uuid.UUID
	UserID      int
	Title       string
	Description sql.NullString
	StartTime   time.Time
	EndTime     sql.NullTime
}

func (req *EventRequest) ToRecord(id uuid.UUID, userID int) EventRecord {
	record := EventRecord{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		StartTime:   req.StartTime,
	}

	if req.EndTime != nil {
		record.EndTime = sql.NullTime{Time: *req.EndTime, Valid: true}
	}

	return record
}
