package missioning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/repository/mocks"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newEventService(t *testing.T) (Eventer, *mocks.MockEventRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	eventRepo := mocks.NewMockEventRepository(ctrl)

	return NewEventService(eventRepo), eventRepo
}

func validEventRequest() *domain.EventRequest {
	return &domain.EventRequest{
		Title:     "Briefing semanal",
		StartTime: time.Date(2024, 7, 3, 14, 0, 0, 0, time.UTC),
	}
}

func TestCreateEvent(t *testing.T) {
	end := time.Date(2024, 7, 3, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mutate      func(req *domain.EventRequest)
		expectedErr error
	}{
		{
			name:        "Título obrigatório",
			mutate:      func(req *domain.EventRequest) { req.Title = "" },
			expectedErr: ErrMissingTitle,
		},
		{
			name:        "Início obrigatório",
			mutate:      func(req *domain.EventRequest) { req.StartTime = time.Time{} },
			expectedErr: ErrMissingStartTime,
		},
		{
			name:        "Fim antes do início é rejeitado",
			mutate:      func(req *domain.EventRequest) { req.EndTime = &end },
			expectedErr: ErrEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newEventService(t)

			req := validEventRequest()
			tt.mutate(req)

			_, err := service.CreateEvent(10, req)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	t.Run("Evento válido é persistido", func(t *testing.T) {
		service, eventRepo := newEventService(t)

		eventRepo.EXPECT().
			CreateEvent(gomock.Any()).
			DoAndReturn(func(record domain.EventRecord) (*domain.CalendarEvent, error) {
				assert.NotEqual(t, uuid.Nil, record.ID)
				assert.Equal(t, 10, record.UserID)
				assert.Equal(t, "Briefing semanal", record.Title)
				assert.False(t, record.EndTime.Valid)

				return &domain.CalendarEvent{ID: record.ID, UserID: 10, Title: record.Title}, nil
			})

		event, err := service.CreateEvent(10, validEventRequest())

		assert.NoError(t, err)
		assert.Equal(t, "Briefing semanal", event.Title)
	})
}

func TestUpdateEvent_Ownership(t *testing.T) {
	eventID := uuid.New()

	t.Run("Evento inexistente", func(t *testing.T) {
		service, eventRepo := newEventService(t)
		eventRepo.EXPECT().GetEventByID(eventID).Return(nil, nil)

		_, err := service.UpdateEvent(10, eventID, validEventRequest())

		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("Evento de outro usuário é negado", func(t *testing.T) {
		service, eventRepo := newEventService(t)
		eventRepo.EXPECT().
			GetEventByID(eventID).
			Return(&domain.CalendarEvent{ID: eventID, UserID: 99}, nil)

		_, err := service.UpdateEvent(10, eventID, validEventRequest())

		assert.ErrorIs(t, err, ErrEventForbidden)
	})

	t.Run("Dono do evento pode alterá-lo", func(t *testing.T) {
		service, eventRepo := newEventService(t)

		eventRepo.EXPECT().
			GetEventByID(eventID).
			Return(&domain.CalendarEvent{ID: eventID, UserID: 10}, nil)
		eventRepo.EXPECT().
			UpdateEvent(gomock.Any()).
			DoAndReturn(func(record domain.EventRecord) (*domain.CalendarEvent, error) {
				assert.Equal(t, eventID, record.ID)

				return &domain.CalendarEvent{ID: eventID, UserID: 10, Title: record.Title}, nil
			})

		event, err := service.UpdateEvent(10, eventID, validEventRequest())

		assert.NoError(t, err)
		assert.Equal(t, eventID, event.ID)
	})
}

func TestDeleteEvent(t *testing.T) {
	service, eventRepo := newEventService(t)

	eventID := uuid.New()
	eventRepo.EXPECT().
		GetEventByID(eventID).
		Return(&domain.CalendarEvent{ID: eventID, UserID: 10}, nil)
	eventRepo.EXPECT().DeleteEvent(eventID).Return(nil)

	assert.NoError(t, service.DeleteEvent(10, eventID))
}

func TestListEvents(t *testing.T) {
	t.Run("Listagem do próprio usuário", func(t *testing.T) {
		service, eventRepo := newEventService(t)

		eventRepo.EXPECT().
			ListEventsByUser(10).
			Return([]*domain.CalendarEvent{{Title: "Briefing semanal"}}, nil)

		events, err := service.ListEvents(10)

		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("Visão administrativa cobre todos os usuários", func(t *testing.T) {
		service, eventRepo := newEventService(t)

		eventRepo.EXPECT().
			ListAllEvents().
			Return([]*domain.CalendarEvent{{UserID: 10}, {UserID: 99}}, nil)

		events, err := service.ListAllEvents()

		assert.NoError(t, err)
		assert.Len(t, events, 2)
	})
}
