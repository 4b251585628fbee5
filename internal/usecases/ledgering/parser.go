// Package ledgering implementa o pipeline de agregação financeira do Stark
// Ledger: parse do CSV, redução por departamento, agregação de tendência,
// derivação de alertas e exportação.
package ledgering

import (
	"strings"

	"github.com/marvelhub/marvel-hub-api/internal/domain"
)

// Delimiter é o separador de campos do CSV de origem
const Delimiter = ","

// ParseRows transforma texto delimitado com linha de cabeçalho em registros
// indexados por coluna. O split é feito apenas pelo delimitador, sem suporte a
// aspas ou escape: células contendo o próprio delimitador não são suportadas
// (limitação documentada, simétrica à exportação). Linhas em branco são
// ignoradas e células faltantes no fim da linha resolvem para string vazia.
func ParseRows(text string) []domain.RawRecord {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}

	headers := splitCells(strings.TrimSuffix(lines[0], "\r"))

	records := make([]domain.RawRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := splitCells(line)

		record := make(domain.RawRecord, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				record[header] = cells[i]
			} else {
				record[header] = ""
			}
		}

		records = append(records, record)
	}

	return records
}

func splitCells(line string) []string {
	cells := strings.Split(line, Delimiter)
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}
