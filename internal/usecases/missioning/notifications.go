package missioning

import (
	"github.com/google/uuid"
	"github.com/marvelhub/marvel-hub-api/infrastructure/repository"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Notifier expõe o sino de avisos do painel. As notificações são criadas
// pelos próprios casos de uso, nunca diretamente pela API
type Notifier interface {
	ListNotifications(userID int) ([]*domain.Notification, error)
	MarkNotificationRead(userID int, notificationID uuid.UUID) (*domain.Notification, error)
	DeleteNotification(userID int, notificationID uuid.UUID) error
}

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) Notifier {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

func (s *NotificationService) ListNotifications(userID int) ([]*domain.Notification, error) {
	return s.notificationRepo.ListNotificationsByUser(userID)
}

func (s *NotificationService) MarkNotificationRead(userID int, notificationID uuid.UUID) (*domain.Notification, error) {
	if err := s.checkOwner(userID, notificationID); err != nil {
		return nil, err
	}

	return s.notificationRepo.MarkNotificationRead(notificationID)
}

func (s *NotificationService) DeleteNotification(userID int, notificationID uuid.UUID) error {
	if err := s.checkOwner(userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.DeleteNotification(notificationID); err != nil {
		return err
	}

	logrus.Infof("Notificação %s removida pelo usuário %d", notificationID, userID)
	return nil
}

func (s *NotificationService) checkOwner(userID int, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.GetNotificationByID(notificationID)
	if err != nil {
		return err
	}

	if notification == nil {
		return ErrNotificationNotFound
	}

	if notification.UserID != userID {
		return ErrNotificationForbidden
	}

	return nil
}
