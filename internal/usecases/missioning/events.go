package missioning

import (
	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/repository"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Eventer gerencia os compromissos avulsos do planejador, ao lado das missões
type Eventer interface {
	CreateEvent(userID int, req *domain.EventRequest) (*domain.CalendarEvent, error)
	UpdateEvent(userID int, eventID uuid.UUID, req *domain.EventRequest) (*domain.CalendarEvent, error)
	ListEvents(userID int) ([]*domain.CalendarEvent, error)
	ListAllEvents() ([]*domain.CalendarEvent, error)
	DeleteEvent(userID int, eventID uuid.UUID) error
}

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) Eventer {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (s *EventService) CreateEvent(userID int, req *domain.EventRequest) (*domain.CalendarEvent, error) {
	if err := validateEventRequest(req); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.CreateEvent(req.ToRecord(uuid.New(), userID))
	if err != nil {
		return nil, err
	}

	logrus.Infof("Evento %s criado para o usuário %d", event.ID, userID)
	return event, nil
}

func (s *EventService) UpdateEvent(userID int, eventID uuid.UUID, req *domain.EventRequest) (*domain.CalendarEvent, error) {
	if err := validateEventRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.ownedEvent(userID, eventID); err != nil {
		return nil, err
	}

	return s.eventRepo.UpdateEvent(req.ToRecord(eventID, userID))
}

func (s *EventService) ListEvents(userID int) ([]*domain.CalendarEvent, error) {
	return s.eventRepo.ListEventsByUser(userID)
}

// ListAllEvents devolve a agenda de todos os usuários, para a visão
// administrativa
func (s *EventService) ListAllEvents() ([]*domain.CalendarEvent, error) {
	return s.eventRepo.ListAllEvents()
}

func (s *EventService) DeleteEvent(userID int, eventID uuid.UUID) error {
	if _, err := s.ownedEvent(userID, eventID); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteEvent(eventID); err != nil {
		return err
	}

	logrus.Infof("Evento %s removido pelo usuário %d", eventID, userID)
	return nil
}

func (s *EventService) ownedEvent(userID int, eventID uuid.UUID) (*domain.CalendarEvent, error) {
	event, err := s.eventRepo.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}

	if event == nil {
		return nil, ErrEventNotFound
	}

	if event.UserID != userID {
		return nil, ErrEventForbidden
	}

	return event, nil
}

func validateEventRequest(req *domain.EventRequest) error {
	if req.Title == "" {
		return ErrMissingTitle
	}

	if req.StartTime.IsZero() {
		return ErrMissingStartTime
	}

	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		return ErrEndBeforeStart
	}

	return nil
}
