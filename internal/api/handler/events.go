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

// ListEvents lista os compromissos do usuário autenticado
func ListEvents(service missioning.Eventer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		events, err := service.ListEvents(userClaims.UserID)
		if err != nil {
			handleEventError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(events); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListAllEvents lista a agenda completa, restrita a administradores
func ListAllEvents(service missioning.Eventer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAllEvents")

		events, err := service.ListAllEvents()
		if err != nil {
			handleEventError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(events); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateEvent agenda um novo compromisso para o usuário autenticado
func CreateEvent(service missioning.Eventer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvent")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		event, err := service.CreateEvent(userClaims.UserID, &req)
		if err != nil {
			handleEventError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(event); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateEvent substitui os dados de um compromisso do usuário autenticado
func UpdateEvent(service missioning.Eventer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEvent")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		eventID, ok := eventIDFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		event, err := service.UpdateEvent(userClaims.UserID, eventID, &req)
		if err != nil {
			handleEventError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(event); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteEvent remove um compromisso do usuário autenticado
func DeleteEvent(service missioning.Eventer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteEvent")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		eventID, ok := eventIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteEvent(userClaims.UserID, eventID); err != nil {
			handleEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func eventIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do evento não fornecido", nil)
		return uuid.Nil, false
	}

	eventID, err := uuid.Parse(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do evento inválido", nil)
		return uuid.Nil, false
	}

	return eventID, true
}

func handleEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, missioning.ErrEventNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Evento não encontrado", nil)

	case errors.Is(err, missioning.ErrEventForbidden):
		apiErrors.WriteError(w, apiErrors.ErrResourceForbidden, "Evento pertence a outro usuário", nil)

	case errors.Is(err, missioning.ErrMissingTitle),
		errors.Is(err, missioning.ErrMissingStartTime):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, missioning.ErrEndBeforeStart):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar eventos", nil)
	}
}
