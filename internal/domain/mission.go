package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// MissionType classifica a missão no planejador de calendário
type MissionType string

const (
	MissionRecon     MissionType = "recon"
	MissionRescue    MissionType = "rescue"
	MissionDefense   MissionType = "defense"
	MissionTraining  MissionType = "training"
	MissionDiplomacy MissionType = "diplomacy"
)

// ThreatLevel é a severidade estimada da missão
type ThreatLevel string

const (
	ThreatOmega ThreatLevel = "omega"
	ThreatAlpha ThreatLevel = "alpha"
	ThreatBeta  ThreatLevel = "beta"
	ThreatGamma ThreatLevel = "gamma"
)

type Mission struct {
	ID          uuid.UUID    `json:"id"`
	UserID      int          `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	MissionType *MissionType `json:"mission_type"`
	ThreatLevel *ThreatLevel `json:"threat_level"`
	Latitude    *float64     `json:"latitude"`
	Longitude   *float64     `json:"longitude"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     *time.Time   `json:"end_time"`
	Success     *bool        `json:"success"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// MissionRequest é o corpo de criação/atualização de missões. Campos opcionais
// são ponteiros e convertidos uma única vez na borda para os tipos sql.Null*,
// em vez de checagens de tipo espalhadas pelos handlers.
type MissionRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MissionType string     `json:"mission_type"`
	ThreatLevel string     `json:"threat_level"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Success     *bool      `json:"success"`
}

// MissionRecord é a forma persistível da requisição, com os opcionais já
// resolvidos para valores anuláveis do banco
type MissionRecord struct {
	ID          uuid.UUID
	UserID      int
	Title       string
	Description sql.NullString
	MissionType sql.NullString
	ThreatLevel sql.NullString
	Latitude    sql.NullFloat64
	Longitude   sql.NullFloat64
	StartTime   time.Time
	EndTime     sql.NullTime
	Success     sql.NullBool
}

// MissionLog é uma anotação de campo presa a uma missão
type MissionLog struct {
	ID        uuid.UUID `json:"id"`
	MissionID uuid.UUID `json:"mission_id"`
	Note      string    `json:"note"`
	LogDate   time.Time `json:"log_date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToRecord resolve os campos opcionais da requisição em valores anuláveis
func (req *MissionRequest) ToRecord(id uuid.UUID, userID int) MissionRecord {
	record := MissionRecord{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		MissionType: sql.NullString{String: req.MissionType, Valid: req.MissionType != ""},
		ThreatLevel: sql.NullString{String: req.ThreatLevel, Valid: req.ThreatLevel != ""},
		StartTime:   req.StartTime,
	}

	if req.Latitude != nil {
		record.Latitude = sql.NullFloat64{Float64: *req.Latitude, Valid: true}
	}

	if req.Longitude != nil {
		record.Longitude = sql.NullFloat64{Float64: *req.Longitude, Valid: true}
	}

	if req.EndTime != nil {
		record.EndTime = sql.NullTime{Time: *req.EndTime, Valid: true}
	}

	if req.Success != nil {
		record.Success = sql.NullBool{Bool: *req.Success, Valid: true}
	}

	return record
}
