package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "<1"},
		{"0.999", "<1"},
		{"1234.56", "1,235"},
		{"-42", "-42"},
		{"0", "0"},
		{"1", "1"},
		{"1000000", "1,000,000"},
		{"-1234.5", "-1,235"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(d(tt.in)))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name         string
		value, total string
		want         string
	}{
		{"under half a percent", "1", "1000", "<1%"},
		{"zero total", "0", "0", "0%"},
		{"half", "50", "100", "50%"},
		{"zero value", "0", "100", "0%"},
		{"everything", "100", "100", "100%"},
		{"third", "1", "3", "33%"},
		{"rounds up", "2", "3", "67%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(d(tt.value), d(tt.total)))
		})
	}
}

func TestFixRTL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single hebrew word", "שלום", "םולש"},
		{"two hebrew words swap and reverse", "סופר זול", "לוז רפוס"},
		{"hyphenated token counts as hebrew", "סופר-פארם", "םראפ-רפוס"},
		{"quoted token counts as hebrew", `חומוס בע"מ`, `מ"עב סומוח`},
		{"mixed text untouched", "Cafe שלום", "Cafe שלום"},
		{"latin untouched", "Acme Corp", "Acme Corp"},
		{"empty untouched", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixRTL(tt.in))
		})
	}
}
