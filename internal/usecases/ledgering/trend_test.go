package ledgering

import (
	"testing"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildTrend(t *testing.T) {
	records := []domain.RawRecord{
		record("Ops", "Jan-24", "100", "40", "0", "0", "0", "low"),
		record("R&D", "Jan-24", "200", "60", "0", "0", "0", "low"),
		record("Ops", "Feb-24", "150", "50", "0", "0", "0", "low"),
		record("R&D", "Mar-24", "300", "80", "0", "0", "0", "low"),
	}

	t.Run("Soma todos os registros por mês, não apenas o mais recente", func(t *testing.T) {
		points := BuildTrend(records, 0, AllDepartments)

		assert.Len(t, points, 3)
		assert.Equal(t, "Jan-24", points[0].Month)
		assert.Equal(t, 300.0, points[0].Revenue)
		assert.Equal(t, 100.0, points[0].Expenses)
		assert.Equal(t, "Feb-24", points[1].Month)
		assert.Equal(t, 150.0, points[1].Revenue)
		assert.Equal(t, "Mar-24", points[2].Month)
	})

	t.Run("Janela retém apenas os meses finais", func(t *testing.T) {
		points := BuildTrend(records, 2, AllDepartments)

		assert.Len(t, points, 2)
		assert.Equal(t, "Feb-24", points[0].Month)
		assert.Equal(t, "Mar-24", points[1].Month)
	})

	t.Run("Janela maior que a série devolve tudo", func(t *testing.T) {
		points := BuildTrend(records, 10, AllDepartments)

		assert.Len(t, points, 3)
	})

	t.Run("Janela zero desabilita o limite", func(t *testing.T) {
		points := BuildTrend(records, 0, "")

		assert.Len(t, points, 3)
	})

	t.Run("Filtro por departamento restringe os totais", func(t *testing.T) {
		points := BuildTrend(records, 0, "Ops")

		assert.Len(t, points, 2)
		assert.Equal(t, 100.0, points[0].Revenue)
		assert.Equal(t, 150.0, points[1].Revenue)
	})

	t.Run("Meses irresolvíveis são descartados do agrupamento", func(t *testing.T) {
		withBad := append([]domain.RawRecord{
			record("Ops", "garbage", "999", "999", "0", "0", "0", "low"),
		}, records...)

		points := BuildTrend(withBad, 0, AllDepartments)

		assert.Len(t, points, 3)
		assert.Equal(t, 300.0, points[0].Revenue)
	})

	t.Run("Registros vazios produzem série vazia", func(t *testing.T) {
		assert.Empty(t, BuildTrend(nil, 0, AllDepartments))
	})
}

func TestBuildProfitRanking(t *testing.T) {
	snapshots := []domain.FinancialSnapshot{
		{Department: "Ops", Profit: 100},
		{Department: "R&D", Profit: 500},
		{Department: "Legal", Profit: -50},
		{Department: "PR", Profit: 500},
	}

	entries := BuildProfitRanking(snapshots)

	assert.Len(t, entries, 4)
	assert.Equal(t, "R&D", entries[0].Department)
	// Empate mantém a ordem de entrada
	assert.Equal(t, "PR", entries[1].Department)
	assert.Equal(t, "Ops", entries[2].Department)
	assert.Equal(t, "Legal", entries[3].Department)
}
