package ledgering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveMonthLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "Formato Mon-YY resolve para o primeiro dia do mês",
			label:    "Jul-24",
			expected: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Mon-YY é case-insensitive",
			label:    "jul-24",
			expected: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Data completa é truncada para o mês",
			label:    "2024-07-15",
			expected: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Nome do mês com ano de quatro dígitos",
			label:    "January 2025",
			expected: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Nome do mês resolve por prefixo de três letras",
			label:    "decembro 2024",
			expected: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Formato numérico YYYY-MM",
			label:    "2024-07",
			expected: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "YYYY-MM com mês de um dígito",
			label:    "2024-7",
			expected: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "Mês numérico fora de 1..12 não resolve",
			label: "2024-13",
			ok:    false,
		},
		{
			name:  "Rótulo arbitrário não resolve",
			label: "not-a-month",
			ok:    false,
		},
		{
			name:  "Rótulo vazio não resolve",
			label: "",
			ok:    false,
		},
		{
			name:     "Espaços ao redor são ignorados",
			label:    "  Feb-24  ",
			expected: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, ok := ResolveMonthLabel(tt.label)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, resolved.Equal(tt.expected), "esperado %s, obtido %s", tt.expected, resolved)
			}
		})
	}
}

func TestResolveMonthLabel_Ordering(t *testing.T) {
	earlier, ok := ResolveMonthLabel("Jan-24")
	assert.True(t, ok)

	later, ok := ResolveMonthLabel("Feb-24")
	assert.True(t, ok)

	assert.True(t, earlier.Before(later))
}
