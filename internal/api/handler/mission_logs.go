package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/missioning"
	"github.com/marvelhub/marvel-hub-api/pkg/apiErrors"
	"github.com/marvelhub/marvel-hub-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MissionLogRequest é o corpo de criação de anotações de campo
type MissionLogRequest struct {
	Note    string    `json:"note"`
	LogDate time.Time `json:"log_date"`
}

// ListMissionLogs lista as anotações de campo de uma missão do usuário autenticado
func ListMissionLogs(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		missionID, ok := missionIDFromRequest(w, r)
		if !ok {
			return
		}

		logs, err := service.ListMissionLogs(userClaims.UserID, missionID)
		if err != nil {
			handleMissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(logs); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// AddMissionLog acrescenta uma anotação de campo a uma missão do usuário autenticado
func AddMissionLog(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddMissionLog")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		missionID, ok := missionIDFromRequest(w, r)
		if !ok {
			return
		}

		var req MissionLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		log, err := service.AddMissionLog(userClaims.UserID, missionID, req.Note, req.LogDate)
		if err != nil {
			handleMissionLogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(log); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteMissionLog remove uma anotação de campo de uma missão do usuário autenticado
func DeleteMissionLog(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMissionLog")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		missionID, ok := missionIDFromRequest(w, r)
		if !ok {
			return
		}

		logIDStr := httprouter.ParamsFromContext(r.Context()).ByName("logId")
		logID, err := uuid.Parse(logIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do registro inválido", nil)
			return
		}

		if err := service.DeleteMissionLog(userClaims.UserID, missionID, logID); err != nil {
			handleMissionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleMissionLogError(w http.ResponseWriter, err error) {
	if errors.Is(err, missioning.ErrMissingNote) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	handleMissionError(w, err)
}
