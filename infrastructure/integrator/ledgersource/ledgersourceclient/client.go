package ledgersourceclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
)

type LedgerSourceClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria o cliente que baixa o CSV financeiro da URL configurada.
func NewClient(cfg *config.Config) ledgering.SourceFetcher {
	return &LedgerSourceClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

func (c *LedgerSourceClient) FetchCSV(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Ledger.SourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Failed to load CSV (%d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	return string(body), nil
}
