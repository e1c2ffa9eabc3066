package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerit/statement/bank"
)

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  UPI   payment  ", "UPI payment"},
		{"28-APR- 2024", "28-APR-2024"},
		{"28- APR-2024", "28-APR-2024"},
		{"APR- 2024", "APR-2024"},
		{"₹1,234.56", "-1,234.56"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanCell(tt.in), tt.in)
	}
}

func TestCleanBorderlessFillsEmpties(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Narration", "Amount", "Balance"},
		[]string{"01/04/2024", "", "500.00", ""},
	)

	Clean(l, bank.LayoutBorderless)

	assert.Equal(t, "-", l.Cell(0, 1))
	assert.Equal(t, "-", l.Cell(0, 3))
}

func TestCleanBorderedKeepsEmpties(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Particulars", "Debit", "Credit", "Balance"},
		[]string{"01/04/2024", "UPI", "", "500.00", "10000.00"},
	)

	Clean(l, bank.LayoutBordered)

	assert.Equal(t, "", l.Cell(0, 2))
}
