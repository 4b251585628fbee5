package ledgering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// Colunas da exportação, em ordem fixa
var exportHeaders = []string{
	"department",
	"month",
	"revenue",
	"expenses",
	"budget",
	"utilization",
	"profit",
	"growth",
	"risk",
}

// ExportCSV serializa a lista filtrada de snapshots de volta para texto
// delimitado: linha de cabeçalho mais uma linha por snapshot, campos unidos
// por vírgula e sem aspas, a mesma limitação do parser, intencionalmente
// simétrica. Valores contendo o delimitador não sobrevivem a uma viagem de
// ida e volta.
func ExportCSV(snapshots []domain.FinancialSnapshot) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, Delimiter))

	for _, s := range snapshots {
		fields := []string{
			s.Department,
			s.MonthLabel,
			formatNumber(s.Revenue),
			formatNumber(s.Expenses),
			formatNumber(s.Budget),
			strconv.Itoa(s.UtilizationPercent),
			formatNumber(s.Profit),
			formatNumber(s.GrowthPercent),
			string(s.Risk),
		}

		b.WriteString("\n")
		b.WriteString(strings.Join(fields, Delimiter))
	}

	return []byte(b.String())
}

// ExportFilename codifica o filtro de departamento ativo no nome do arquivo
func ExportFilename(department string) string {
	if department == "" {
		department = AllDepartments
	}
	return fmt.Sprintf("starkledger_export_%s.csv", department)
}

// formatNumber serializa sem zeros à direita, como o dado chegou
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
