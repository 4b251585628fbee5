package ledgering_test

import (
	"context"
	"testing"

	"github.com/marvelhub/marvel-hub-api/internal/config"
	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering"
	"github.com/marvelhub/marvel-hub-api/internal/usecases/ledgering/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const sampleCSV = `Department,Month,Revenue,Expenses,Profit/Loss,Budget Allocation,Forecasted Growth %,Risk Flag
Ops,Jan-24,1000,400,600,500,2,low
Ops,Feb-24,1200,550,650,500,3,low
R&D,Feb-24,2000,900,1100,800,8.5,HIGH
-,Feb-24,300,100,200,150,1,low`

func newService(t *testing.T) (ledgering.Ledgerer, *mocks.MockSourceFetcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	source := mocks.NewMockSourceFetcher(ctrl)
	cfg := &config.Config{Ledger: config.Ledger{TrendWindow: 6}}

	return ledgering.NewService(cfg, source), source
}

func TestService_Refresh(t *testing.T) {
	t.Run("Ciclo completo comita as quatro coleções", func(t *testing.T) {
		service, source := newService(t)
		source.EXPECT().FetchCSV(gomock.Any()).Return(sampleCSV, nil)

		report, err := service.Refresh(context.Background())

		assert.NoError(t, err)
		assert.Len(t, report.Snapshots, 3)
		assert.Len(t, report.Trend, 2)
		assert.NotEmpty(t, report.Profit)
		assert.NotEmpty(t, report.Alerts)
		assert.False(t, report.LastUpdated.IsZero())

		// Snapshot de Ops deve ser o de fevereiro
		assert.Equal(t, "Feb-24", report.Snapshots[0].MonthLabel)
		assert.Equal(t, "Ops", report.Snapshots[0].Department)
	})

	t.Run("Falha na origem preserva o relatório anterior", func(t *testing.T) {
		service, source := newService(t)

		source.EXPECT().FetchCSV(gomock.Any()).Return(sampleCSV, nil)
		_, err := service.Refresh(context.Background())
		assert.NoError(t, err)

		source.EXPECT().FetchCSV(gomock.Any()).Return("", errors.New("timeout"))
		_, err = service.Refresh(context.Background())
		assert.ErrorIs(t, err, ledgering.ErrSourceFetch)

		report, err := service.Report()
		assert.NoError(t, err)
		assert.Len(t, report.Snapshots, 3)
	})

	t.Run("Estouro de orçamento de R&D gera warning", func(t *testing.T) {
		service, source := newService(t)
		source.EXPECT().FetchCSV(gomock.Any()).Return(sampleCSV, nil)

		_, err := service.Refresh(context.Background())
		assert.NoError(t, err)

		alerts, err := service.Alerts()
		assert.NoError(t, err)

		var messages []string
		for _, alert := range alerts {
			messages = append(messages, alert.Message)
		}

		assert.Contains(t, messages, "R&D expenses exceeded budget by 12.5% (Feb-24)")
		assert.Contains(t, messages, "R&D flagged as HIGH operational risk (Feb-24)")
		assert.Contains(t, messages, "R&D shows strongest growth (+8.5%)")
		assert.Contains(t, messages, "Ops expenses exceeded budget by 10.0% (Feb-24)")
	})
}

func TestService_RefreshSobreposto(t *testing.T) {
	t.Run("Resposta atrasada não sobrescreve o relatório mais recente", func(t *testing.T) {
		service, source := newService(t)

		staleCSV := `Department,Month,Revenue,Expenses,Profit/Loss,Budget Allocation,Forecasted Growth %,Risk Flag
Legacy,Jan-24,100,50,50,60,1,low`

		fetchStarted := make(chan struct{})
		releaseFetch := make(chan struct{})

		// A primeira busca fica presa na origem até a segunda já ter comitado
		source.EXPECT().
			FetchCSV(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (string, error) {
				close(fetchStarted)
				<-releaseFetch
				return staleCSV, nil
			})
		source.EXPECT().FetchCSV(gomock.Any()).Return(sampleCSV, nil)

		firstDone := make(chan *domain.LedgerReport, 1)
		go func() {
			report, err := service.Refresh(context.Background())
			assert.NoError(t, err)
			firstDone <- report
		}()
		<-fetchStarted

		fresh, err := service.Refresh(context.Background())
		assert.NoError(t, err)
		assert.Len(t, fresh.Snapshots, 3)

		close(releaseFetch)
		stale := <-firstDone

		// A chamada atrasada devolve o relatório vigente em vez do obsoleto
		assert.Same(t, fresh, stale)

		report, err := service.Report()
		assert.NoError(t, err)
		assert.Same(t, fresh, report)
		for _, snapshot := range report.Snapshots {
			assert.NotEqual(t, "Legacy", snapshot.Department)
		}
	})
}

func TestService_BeforeFirstCycle(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Report()
	assert.ErrorIs(t, err, ledgering.ErrNotLoaded)

	_, err = service.Snapshots("")
	assert.ErrorIs(t, err, ledgering.ErrNotLoaded)

	_, err = service.Trend(0, "")
	assert.ErrorIs(t, err, ledgering.ErrNotLoaded)

	_, err = service.Summary("")
	assert.ErrorIs(t, err, ledgering.ErrNotLoaded)

	_, _, err = service.Export("")
	assert.ErrorIs(t, err, ledgering.ErrNotLoaded)
}

func TestService_FilteredViews(t *testing.T) {
	service, source := newService(t)
	source.EXPECT().FetchCSV(gomock.Any()).Return(sampleCSV, nil)

	_, err := service.Refresh(context.Background())
	assert.NoError(t, err)

	t.Run("Snapshots filtrados por departamento", func(t *testing.T) {
		snapshots, err := service.Snapshots("Ops")

		assert.NoError(t, err)
		assert.Len(t, snapshots, 1)
		assert.Equal(t, "Ops", snapshots[0].Department)
	})

	t.Run("Filtro all devolve todos os snapshots", func(t *testing.T) {
		snapshots, err := service.Snapshots(ledgering.AllDepartments)

		assert.NoError(t, err)
		assert.Len(t, snapshots, 3)
	})

	t.Run("Departamento desconhecido devolve lista vazia", func(t *testing.T) {
		snapshots, err := service.Snapshots("Wakanda")

		assert.NoError(t, err)
		assert.Empty(t, snapshots)
	})

	t.Run("Departamentos distintos ordenados", func(t *testing.T) {
		departments, err := service.Departments()

		assert.NoError(t, err)
		assert.Equal(t, []string{"Ops", "R&D", domain.UnassignedDepartment}, departments)
	})

	t.Run("Tendência recalculada sobre todos os registros", func(t *testing.T) {
		points, err := service.Trend(0, ledgering.AllDepartments)

		assert.NoError(t, err)
		assert.Len(t, points, 2)
		assert.Equal(t, "Jan-24", points[0].Month)
		assert.Equal(t, 1000.0, points[0].Revenue)
		assert.Equal(t, "Feb-24", points[1].Month)
		assert.Equal(t, 3500.0, points[1].Revenue)
	})

	t.Run("Janela não informada usa a configuração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		source := mocks.NewMockSourceFetcher(ctrl)
		source.EXPECT().FetchCSV(gomock.Any()).Return(sampleCSV, nil)

		narrow := ledgering.NewService(&config.Config{Ledger: config.Ledger{TrendWindow: 1}}, source)
		_, err := narrow.Refresh(context.Background())
		assert.NoError(t, err)

		points, err := narrow.Trend(-1, ledgering.AllDepartments)

		assert.NoError(t, err)
		assert.Len(t, points, 1)
		assert.Equal(t, "Feb-24", points[0].Month)
	})

	t.Run("Tendência com janela de um mês", func(t *testing.T) {
		points, err := service.Trend(1, ledgering.AllDepartments)

		assert.NoError(t, err)
		assert.Len(t, points, 1)
		assert.Equal(t, "Feb-24", points[0].Month)
	})

	t.Run("Sumário do filtro all", func(t *testing.T) {
		summary, err := service.Summary("")

		assert.NoError(t, err)
		assert.Equal(t, 3500.0, summary.TotalRevenue)
		assert.Equal(t, 1550.0, summary.TotalExpenses)
		assert.Equal(t, 1950.0, summary.NetProfit)
	})

	t.Run("Exportação codifica o filtro no nome do arquivo", func(t *testing.T) {
		content, filename, err := service.Export("Ops")

		assert.NoError(t, err)
		assert.Equal(t, "starkledger_export_Ops.csv", filename)
		assert.Contains(t, string(content), "Ops,Feb-24")

		_, filename, err = service.Export("")
		assert.NoError(t, err)
		assert.Equal(t, "starkledger_export_all.csv", filename)
	})
}
