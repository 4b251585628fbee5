package missioning

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/repository"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var validMissionTypes = map[domain.MissionType]bool{
	domain.MissionRecon:     true,
	domain.MissionRescue:    true,
	domain.MissionDefense:   true,
	domain.MissionTraining:  true,
	domain.MissionDiplomacy: true,
}

var validThreatLevels = map[domain.ThreatLevel]bool{
	domain.ThreatOmega: true,
	domain.ThreatAlpha: true,
	domain.ThreatBeta:  true,
	domain.ThreatGamma: true,
}

type Missioner interface {
	CreateMission(userID int, req *domain.MissionRequest) (*domain.Mission, error)
	UpdateMission(userID int, missionID uuid.UUID, req *domain.MissionRequest) (*domain.Mission, error)
	GetMission(userID int, missionID uuid.UUID) (*domain.Mission, error)
	ListMissions(userID int, from, to *time.Time) ([]*domain.Mission, error)
	DeleteMission(userID int, missionID uuid.UUID) error
	AddMissionLog(userID int, missionID uuid.UUID, note string, logDate time.Time) (*domain.MissionLog, error)
	ListMissionLogs(userID int, missionID uuid.UUID) ([]*domain.MissionLog, error)
	DeleteMissionLog(userID int, missionID, logID uuid.UUID) error
}

type Service struct {
	missionRepo      repository.MissionRepository
	notificationRepo repository.NotificationRepository
}

func NewService(missionRepo repository.MissionRepository, notificationRepo repository.NotificationRepository) Missioner {
	return &Service{
		missionRepo:      missionRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *Service) CreateMission(userID int, req *domain.MissionRequest) (*domain.Mission, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	record := req.ToRecord(uuid.New(), userID)

	mission, err := s.missionRepo.CreateMission(record)
	if err != nil {
		return nil, err
	}

	// O aviso no sino do painel é melhor esforço: a missão já foi criada
	message := fmt.Sprintf("Missão %q agendada para %s", mission.Title, mission.StartTime.Format("02/01/2006 15:04"))
	if _, err := s.notificationRepo.CreateNotification(userID, &mission.ID, domain.NotificationMissionReminder, message); err != nil {
		logrus.WithError(err).Warn("Erro ao criar notificação da missão")
	}

	logrus.Infof("Missão %s criada para o usuário %d", mission.ID, userID)
	return mission, nil
}

func (s *Service) UpdateMission(userID int, missionID uuid.UUID, req *domain.MissionRequest) (*domain.Mission, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.ownedMission(userID, missionID); err != nil {
		return nil, err
	}

	record := req.ToRecord(missionID, userID)

	return s.missionRepo.UpdateMission(record)
}

func (s *Service) GetMission(userID int, missionID uuid.UUID) (*domain.Mission, error) {
	return s.ownedMission(userID, missionID)
}

func (s *Service) ListMissions(userID int, from, to *time.Time) ([]*domain.Mission, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, ErrInvalidDateFilter
	}

	return s.missionRepo.ListMissionsByUser(userID, from, to)
}

func (s *Service) DeleteMission(userID int, missionID uuid.UUID) error {
	if _, err := s.ownedMission(userID, missionID); err != nil {
		return err
	}

	if err := s.missionRepo.DeleteMission(missionID); err != nil {
		return err
	}

	logrus.Infof("Missão %s removida pelo usuário %d", missionID, userID)
	return nil
}

// AddMissionLog acrescenta uma anotação de campo a uma missão do usuário.
// Data ausente assume o momento atual
func (s *Service) AddMissionLog(userID int, missionID uuid.UUID, note string, logDate time.Time) (*domain.MissionLog, error) {
	if note == "" {
		return nil, ErrMissingNote
	}

	if _, err := s.ownedMission(userID, missionID); err != nil {
		return nil, err
	}

	if logDate.IsZero() {
		logDate = time.Now()
	}

	return s.missionRepo.CreateMissionLog(domain.MissionLog{
		ID:        uuid.New(),
		MissionID: missionID,
		Note:      note,
		LogDate:   logDate,
	})
}

func (s *Service) ListMissionLogs(userID int, missionID uuid.UUID) ([]*domain.MissionLog, error) {
	if _, err := s.ownedMission(userID, missionID); err != nil {
		return nil, err
	}

	return s.missionRepo.ListMissionLogs(missionID)
}

func (s *Service) DeleteMissionLog(userID int, missionID, logID uuid.UUID) error {
	if _, err := s.ownedMission(userID, missionID); err != nil {
		return err
	}

	return s.missionRepo.DeleteMissionLog(logID)
}

// ownedMission carrega a missão e garante que ela pertence ao usuário
func (s *Service) ownedMission(userID int, missionID uuid.UUID) (*domain.Mission, error) {
	mission, err := s.missionRepo.GetMissionByID(missionID)
	if err != nil {
		return nil, err
	}

	if mission == nil {
		return nil, ErrMissionNotFound
	}

	if mission.UserID != userID {
		return nil, ErrMissionForbidden
	}

	return mission, nil
}

func validateRequest(req *domain.MissionRequest) error {
	if req.Title == "" {
		return ErrMissingTitle
	}

	if req.StartTime.IsZero() {
		return ErrMissingStartTime
	}

	if req.MissionType != "" && !validMissionTypes[domain.MissionType(req.MissionType)] {
		return ErrInvalidType
	}

	if req.ThreatLevel != "" && !validThreatLevels[domain.ThreatLevel(req.ThreatLevel)] {
		return ErrInvalidThreat
	}

	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		return ErrEndBeforeStart
	}

	return nil
}
