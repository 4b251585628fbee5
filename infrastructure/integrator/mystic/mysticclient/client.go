package mysticclient

import (
	"net/http"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/config"
)

type Client interface {
	QueryGrimoire(params QueryParams) (QueryResponse, error)
	UploadDocument(params UploadParams) (UploadResponse, error)
}

type MysticClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do serviço místico.
func NewClient(cfg *config.Config) Client {
	return &MysticClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}
