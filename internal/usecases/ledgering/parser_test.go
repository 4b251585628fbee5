package ledgering

import (
	"testing"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseRows(t *testing.T) {
	t.Run("Linhas são indexadas pelo cabeçalho", func(t *testing.T) {
		text := "Department,Month,Revenue\nOps,Jul-24,1000\nR&D,Jul-24,2000"

		records := ParseRows(text)

		assert.Len(t, records, 2)
		assert.Equal(t, "Ops", records[0][domain.ColumnDepartment])
		assert.Equal(t, "Jul-24", records[0][domain.ColumnMonth])
		assert.Equal(t, "1000", records[0][domain.ColumnRevenue])
		assert.Equal(t, "R&D", records[1][domain.ColumnDepartment])
	})

	t.Run("Linhas em branco são ignoradas", func(t *testing.T) {
		text := "Department,Month\nOps,Jul-24\n\n   \nR&D,Aug-24\n"

		records := ParseRows(text)

		assert.Len(t, records, 2)
	})

	t.Run("Células faltantes no fim resolvem para vazio", func(t *testing.T) {
		text := "Department,Month,Revenue\nOps,Jul-24"

		records := ParseRows(text)

		assert.Len(t, records, 1)
		assert.Equal(t, "", records[0][domain.ColumnRevenue])
	})

	t.Run("Células excedentes são descartadas", func(t *testing.T) {
		text := "Department,Month\nOps,Jul-24,extra,mais"

		records := ParseRows(text)

		assert.Len(t, records, 1)
		assert.Len(t, records[0], 2)
	})

	t.Run("Quebras de linha CRLF são toleradas", func(t *testing.T) {
		text := "Department,Month\r\nOps,Jul-24\r\n"

		records := ParseRows(text)

		assert.Len(t, records, 1)
		assert.Equal(t, "Ops", records[0][domain.ColumnDepartment])
	})

	t.Run("Espaços ao redor das células são aparados", func(t *testing.T) {
		text := "Department , Month\n Ops , Jul-24 "

		records := ParseRows(text)

		assert.Len(t, records, 1)
		assert.Equal(t, "Ops", records[0][domain.ColumnDepartment])
	})

	t.Run("Texto vazio produz lista vazia", func(t *testing.T) {
		assert.Empty(t, ParseRows(""))
		assert.Empty(t, ParseRows("   \n  "))
	})

	t.Run("Apenas cabeçalho produz lista vazia", func(t *testing.T) {
		assert.Empty(t, ParseRows("Department,Month,Revenue"))
	})
}
