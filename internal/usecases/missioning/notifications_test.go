package missioning

import (
	"testing"

	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/repository/mocks"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newNotificationService(t *testing.T) (Notifier, *mocks.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	notificationRepo := mocks.NewMockNotificationRepository(ctrl)

	return NewNotificationService(notificationRepo), notificationRepo
}

func TestListNotifications(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	notificationRepo.EXPECT().
		ListNotificationsByUser(10).
		Return([]*domain.Notification{{UserID: 10, Message: "Missão agendada"}}, nil)

	notifications, err := service.ListNotifications(10)

	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestMarkNotificationRead(t *testing.T) {
	notificationID := uuid.New()

	t.Run("Notificação inexistente", func(t *testing.T) {
		service, notificationRepo := newNotificationService(t)
		notificationRepo.EXPECT().GetNotificationByID(notificationID).Return(nil, nil)

		_, err := service.MarkNotificationRead(10, notificationID)

		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	t.Run("Notificação de outro usuário é negada", func(t *testing.T) {
		service, notificationRepo := newNotificationService(t)
		notificationRepo.EXPECT().
			GetNotificationByID(notificationID).
			Return(&domain.Notification{ID: notificationID, UserID: 99}, nil)

		_, err := service.MarkNotificationRead(10, notificationID)

		assert.ErrorIs(t, err, ErrNotificationForbidden)
	})

	t.Run("Dono marca a notificação como lida", func(t *testing.T) {
		service, notificationRepo := newNotificationService(t)

		notificationRepo.EXPECT().
			GetNotificationByID(notificationID).
			Return(&domain.Notification{ID: notificationID, UserID: 10}, nil)
		notificationRepo.EXPECT().
			MarkNotificationRead(notificationID).
			Return(&domain.Notification{ID: notificationID, UserID: 10, IsRead: true}, nil)

		notification, err := service.MarkNotificationRead(10, notificationID)

		assert.NoError(t, err)
		assert.True(t, notification.IsRead)
	})
}

func TestDeleteNotification(t *testing.T) {
	notificationID := uuid.New()

	t.Run("Exclusão exige a posse da notificação", func(t *testing.T) {
		service, notificationRepo := newNotificationService(t)
		notificationRepo.EXPECT().
			GetNotificationByID(notificationID).
			Return(&domain.Notification{ID: notificationID, UserID: 99}, nil)

		err := service.DeleteNotification(10, notificationID)

		assert.ErrorIs(t, err, ErrNotificationForbidden)
	})

	t.Run("Dono remove a notificação", func(t *testing.T) {
		service, notificationRepo := newNotificationService(t)

		notificationRepo.EXPECT().
			GetNotificationByID(notificationID).
			Return(&domain.Notification{ID: notificationID, UserID: 10}, nil)
		notificationRepo.EXPECT().DeleteNotification(notificationID).Return(nil)

		assert.NoError(t, service.DeleteNotification(10, notificationID))
	})
}
