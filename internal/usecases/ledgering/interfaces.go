package ledgering

import (
	"context"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// SourceFetcher obtém o texto delimitado bruto da origem do Stark Ledger
type SourceFetcher interface {
	// FetchCSV busca o conteúdo do CSV; o único ponto de I/O do pipeline
	FetchCSV(ctx context.Context) (string, error)
}

// Ledgerer expõe as coleções derivadas do pipeline de agregação financeira
type Ledgerer interface {
	// Refresh executa um ciclo completo: fetch, parse e rederivação total
	Refresh(ctx context.Context) (*domain.LedgerReport, error)

	// Report devolve o último relatório comitado
	Report() (*domain.LedgerReport, error)

	// Snapshots devolve a tabela de snapshots, opcionalmente filtrada
	Snapshots(department string) ([]domain.FinancialSnapshot, error)

	// Trend devolve a série mensal na janela pedida (0 = sem limite,
	// negativo = janela configurada), opcionalmente restrita a um departamento
	Trend(window int, department string) ([]domain.TrendPoint, error)

	// ProfitRanking devolve a lista de lucro por departamento, decrescente
	ProfitRanking() ([]domain.ProfitEntry, error)

	// Alerts devolve o feed de alertas do último ciclo
	Alerts() ([]domain.Alert, error)

	// Departments lista os departamentos distintos presentes nos snapshots
	Departments() ([]string, error)

	// Summary totaliza a visão filtrada para os cartões do painel
	Summary(department string) (*domain.LedgerSummary, error)

	// Export serializa a visão filtrada dos snapshots e devolve o conteúdo
	// e o nome de arquivo para download
	Export(department string) ([]byte, string, error)
}
