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
	"github.com/marvelhub/marvel-hub-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListMissions lista as missões do usuário autenticado.
// Aceita filtros from e to no formato YYYY-MM-DD
func ListMissions(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var from, to *time.Time

		if raw := r.URL.Query().Get("from"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use YYYY-MM-DD", nil)
				return
			}
			from = parsed
		}

		if raw := r.URL.Query().Get("to"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use YYYY-MM-DD", nil)
				return
			}
			to = parsed
		}

		missions, err := service.ListMissions(userClaims.UserID, from, to)
		if err != nil {
			handleMissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(missions); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateMission agenda uma nova missão para o usuário autenticado
func CreateMission(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateMission")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.MissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		mission, err := service.CreateMission(userClaims.UserID, &req)
		if err != nil {
			handleMissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(mission); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetMission retorna uma missão do usuário autenticado por ID
func GetMission(service missioning.Missioner) http.HandlerFunc {
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

		mission, err := service.GetMission(userClaims.UserID, missionID)
		if err != nil {
			handleMissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(mission); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateMission substitui os dados de uma missão do usuário autenticado
func UpdateMission(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateMission")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		missionID, ok := missionIDFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.MissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		mission, err := service.UpdateMission(userClaims.UserID, missionID, &req)
		if err != nil {
			handleMissionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(mission); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteMission remove uma missão do usuário autenticado
func DeleteMission(service missioning.Missioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMission")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		missionID, ok := missionIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteMission(userClaims.UserID, missionID); err != nil {
			handleMissionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func missionIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da missão não fornecido", nil)
		return uuid.Nil, false
	}

	missionID, err := uuid.Parse(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da missão inválido", nil)
		return uuid.Nil, false
	}

	return missionID, true
}

// handleMissionError mapeia erros do planejador de missões para os códigos da API
func handleMissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, missioning.ErrMissionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Missão não encontrada", nil)

	case errors.Is(err, missioning.ErrMissionForbidden):
		apiErrors.WriteError(w, apiErrors.ErrResourceForbidden, "Missão pertence a outro usuário", nil)

	case errors.Is(err, missioning.ErrMissingTitle),
		errors.Is(err, missioning.ErrMissingStartTime),
		errors.Is(err, missioning.ErrInvalidDateFilter):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, missioning.ErrInvalidType),
		errors.Is(err, missioning.ErrInvalidThreat),
		errors.Is(err, missioning.ErrEndBeforeStart):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar missões", nil)
	}
}
