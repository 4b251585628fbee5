package handler

import (
	"errors"
	"net/http"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/gaming"
	"github.com/marvelhub/marvel-hub-api/pkg/apiErrors"
	"github.com/marvelhub/marvel-hub-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type GameStatsRequest struct {
	BestTime   string `json:"best_time"`
	BestPoints string `json:"best_points"`
}

// GetGameStats retorna o melhor desempenho do usuário autenticado
func GetGameStats(service gaming.GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stats, err := service.GetStats(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas", nil)
			return
		}

		if stats == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhuma estatística registrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// SaveGameStats registra o resultado de uma partida mantendo o melhor desempenho
func SaveGameStats(service gaming.GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveGameStats")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req GameStatsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		stats, err := service.SaveOrUpdateStats(userClaims.UserID, req.BestTime, req.BestPoints)
		if err != nil {
			if errors.Is(err, gaming.ErrInvalidBestTime) || errors.Is(err, gaming.ErrInvalidBestPoints) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar estatísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetLeaderboard retorna o placar atual do jogo
func GetLeaderboard(service gaming.GameService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leaderboard, err := service.GetLeaderboard()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o placar", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(leaderboard); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
