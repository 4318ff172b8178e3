package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"usd range", "Salary: $50,000 - $70,000 per year", "$50,000 - $70,000", true},
		{"usd single", "earn $85,000.00 annually", "$85,000.00", true},
		{"eur range", "Gehalt: €45,000 - €60,000", "€45,000 - €60,000", true},
		{"currency code", "up to 50,000 EUR plus bonus", "50,000 EUR", true},
		{"currency code lowercase", "around 72,000 usd", "72,000 usd", true},
		{"dollar beats code", "$40,000 or 38,000 GBP", "$40,000", true},
		{"no info", "no info", "", false},
		{"empty", "", "", false},
		{"plain number", "team of 50,000 people", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSalary(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
