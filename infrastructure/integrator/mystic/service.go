package mystic

import (
	"encoding/json"
	"fmt"
	"time"

	mysticdomain "github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic/domain"
	"github.com/marvelhub/marvel-hub-api/infrastructure/integrator/mystic/mysticclient"
	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/pkg/utils"
)

type MysticIntegrator interface {
	QueryGrimoire(question string) (*mysticdomain.Answer, error)
	ListDocuments() ([]mysticdomain.Document, error)
	UploadDocument(title, source, text string) (*mysticdomain.Document, error)
}

type MysticService struct {
	cfg    *config.Config
	Client mysticclient.Client
}

func New(cfg *config.Config, client mysticclient.Client) MysticIntegrator {
	return &MysticService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MysticService) QueryGrimoire(question string) (*mysticdomain.Answer, error) {
	resp, err := s.Client.QueryGrimoire(mysticclient.QueryParams{
		Question: question,
		TopK:     5,
	})
	if err != nil {
		return nil, err
	}

	answer := &mysticdomain.Answer{
		Question:   question,
		Text:       resp.Answer,
		AnsweredAt: time.Now(),
	}

	for _, citation := range resp.Citations {
		ref, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar referência de citação: %w", err)
		}

		answer.Citations = append(answer.Citations, mysticdomain.Citation{
			DocumentRef: ref,
			Title:       citation.Title,
			Excerpt:     citation.Excerpt,
		})
	}

	return answer, nil
}

func (s *MysticService) ListDocuments() ([]mysticdomain.Document, error) {
	data, err := utils.MakeRequest(s.cfg.Mystic.URL + "/documents")
	if err != nil {
		return nil, err
	}

	documents := make([]mysticdomain.Document, 0)
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a lista de documentos: %w", err)
	}

	for i := range documents {
		if documents[i].Ref == "" {
			ref, err := utils.GenerateID()
			if err != nil {
				return nil, fmt.Errorf("erro ao gerar referência de documento: %w", err)
			}
			documents[i].Ref = ref
		}
	}

	return documents, nil
}

// UploadDocument envia o texto já extraído de um documento para indexação.
// A extração do conteúdo é responsabilidade do chamador; o serviço místico só
// recebe texto puro.
func (s *MysticService) UploadDocument(title, source, text string) (*mysticdomain.Document, error) {
	resp, err := s.Client.UploadDocument(mysticclient.UploadParams{
		Title:  title,
		Source: source,
		Text:   text,
	})
	if err != nil {
		return nil, err
	}

	document := &mysticdomain.Document{
		Ref:       resp.Ref,
		Title:     resp.Title,
		Source:    source,
		IndexedAt: time.Now(),
	}

	if document.Ref == "" {
		ref, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar referência de documento: %w", err)
		}
		document.Ref = ref
	}

	return document, nil
}
