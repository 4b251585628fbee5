package ledgering

import (
	"context"
	"sync"
	"time"

	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Service executa o pipeline e guarda o resultado do último ciclo. Todas as
// entidades derivadas são reconstruídas do zero a cada ciclo; não existe
// atualização incremental. O relatório comitado é imutável e substituído por
// inteiro: as quatro coleções são trocadas juntas, nunca campo a campo.
type Service struct {
	cfg    *config.Config
	source SourceFetcher

	mu         sync.RWMutex
	records    []domain.RawRecord
	report     *domain.LedgerReport
	generation uint64
}

func NewService(cfg *config.Config, source SourceFetcher) Ledgerer {
	return &Service{
		cfg:    cfg,
		source: source,
	}
}

// Refresh executa um ciclo completo de fetch-e-recomputação. Ciclos
// sobrepostos são resolvidos por um contador monotônico de geração: apenas a
// resposta da requisição mais recente pode comitar; respostas atrasadas são
// descartadas sem tocar no relatório vigente.
func (s *Service) Refresh(ctx context.Context) (*domain.LedgerReport, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	text, err := s.source.FetchCSV(ctx)
	if err != nil {
		logrus.WithError(err).Error("ledger: falha ao buscar o CSV de origem")
		return nil, errors.Wrap(ErrSourceFetch, err.Error())
	}

	records := ParseRows(text)
	snapshots := BuildSnapshots(records)

	report := &domain.LedgerReport{
		Snapshots:   snapshots,
		Trend:       BuildTrend(records, s.trendWindow(), AllDepartments),
		Profit:      BuildProfitRanking(snapshots),
		Alerts:      DeriveAlerts(snapshots, time.Now()),
		LastUpdated: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		// Resposta obsoleta: outra atualização foi disparada depois desta
		logrus.WithFields(logrus.Fields{
			"generation": generation,
			"current":    s.generation,
		}).Warn("ledger: resposta obsoleta descartada")
		return s.report, nil
	}

	s.records = records
	s.report = report

	logrus.WithFields(logrus.Fields{
		"rows":      len(records),
		"snapshots": len(snapshots),
		"alerts":    len(report.Alerts),
	}).Info("ledger: relatório recomputado")

	return report, nil
}

func (s *Service) Report() (*domain.LedgerReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return nil, ErrNotLoaded
	}
	return s.report, nil
}

func (s *Service) Snapshots(department string) ([]domain.FinancialSnapshot, error) {
	report, err := s.Report()
	if err != nil {
		return nil, err
	}

	if department == "" || department == AllDepartments {
		return report.Snapshots, nil
	}

	filtered := make([]domain.FinancialSnapshot, 0, 1)
	for _, snapshot := range report.Snapshots {
		if snapshot.Department == department {
			filtered = append(filtered, snapshot)
		}
	}
	return filtered, nil
}

func (s *Service) Trend(window int, department string) ([]domain.TrendPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return nil, ErrNotLoaded
	}

	// Janela negativa significa "não informada" e cai na janela configurada
	if window < 0 {
		window = s.trendWindow()
	}
	return BuildTrend(s.records, window, department), nil
}

func (s *Service) ProfitRanking() ([]domain.ProfitEntry, error) {
	report, err := s.Report()
	if err != nil {
		return nil, err
	}
	return report.Profit, nil
}

func (s *Service) Alerts() ([]domain.Alert, error) {
	report, err := s.Report()
	if err != nil {
		return nil, err
	}
	return report.Alerts, nil
}

func (s *Service) Departments() ([]string, error) {
	report, err := s.Report()
	if err != nil {
		return nil, err
	}
	return report.Departments(), nil
}

func (s *Service) Summary(department string) (*domain.LedgerSummary, error) {
	snapshots, err := s.Snapshots(department)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(snapshots)
	return &summary, nil
}

func (s *Service) Export(department string) ([]byte, string, error) {
	snapshots, err := s.Snapshots(department)
	if err != nil {
		return nil, "", err
	}
	return ExportCSV(snapshots), ExportFilename(department), nil
}

func (s *Service) trendWindow() int {
	if s.cfg == nil || s.cfg.Ledger.TrendWindow <= 0 {
		return 0
	}
	return s.cfg.Ledger.TrendWindow
}
