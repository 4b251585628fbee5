package handler

import (
	"net/http"

	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic"
	"github.com/marvelhub/marvel-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type MysticQueryRequest struct {
	Question string `json:"question"`
}

type MysticUploadRequest struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

// QueryMystic encaminha uma pergunta ao serviço de consulta do grimório
func QueryMystic(service mystic.MysticIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - QueryMystic")

		var req MysticQueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Question == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Pergunta é obrigatória", nil)
			return
		}

		answer, err := service.QueryGrimoire(req.Question)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço místico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(answer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UploadMysticDocument envia o texto extraído de um documento para indexação
func UploadMysticDocument(service mystic.MysticIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadMysticDocument")

		var req MysticUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Title == "" || req.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título e texto são obrigatórios", nil)
			return
		}

		document, err := service.UploadDocument(req.Title, req.Source, req.Text)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao enviar documento ao serviço místico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(document); err != nil {
			logrus.Error(err)
		}
	}
}

// ListMysticDocuments lista os documentos indexados no serviço místico
func ListMysticDocuments(service mystic.MysticIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documents, err := service.ListDocuments()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar documentos do serviço místico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(documents); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
