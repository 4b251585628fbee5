package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/missioning"
	"github.com/marvelhub/marvel-hub-api/pkg/apiErrors"
	"github.com/marvelhub/marvel-hub-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListNotifications lista os avisos do usuário autenticado, mais recentes primeiro
func ListNotifications(service missioning.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		notifications, err := service.ListNotifications(userClaims.UserID)
		if err != nil {
			handleNotificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(notifications); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// MarkNotificationRead marca um aviso do usuário autenticado como lido
func MarkNotificationRead(service missioning.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MarkNotificationRead")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		notificationID, ok := notificationIDFromRequest(w, r)
		if !ok {
			return
		}

		notification, err := service.MarkNotificationRead(userClaims.UserID, notificationID)
		if err != nil {
			handleNotificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(notification); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteNotification remove um aviso do usuário autenticado
func DeleteNotification(service missioning.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteNotification")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		notificationID, ok := notificationIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteNotification(userClaims.UserID, notificationID); err != nil {
			handleNotificationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func notificationIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da notificação não fornecido", nil)
		return uuid.Nil, false
	}

	notificationID, err := uuid.Parse(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da notificação inválido", nil)
		return uuid.Nil, false
	}

	return notificationID, true
}

func handleNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, missioning.ErrNotificationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Notificação não encontrada", nil)

	case errors.Is(err, missioning.ErrNotificationForbidden):
		apiErrors.WriteError(w, apiErrors.ErrResourceForbidden, "Notificação pertence a outro usuário", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar notificações", nil)
	}
}
