package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indianPage = `INDIAN BANK
OPENING BALANCE 5,000.00
01/04/2024 UPI/P2M/grocery
mart chennai 750.00 4,250.00
02/04/2024 NEFT inward salary 40,000.00 44,250.00
03/04/2024 charges
sms alert fee 25.00 44,225.00
`

func TestIndianParser(t *testing.T) {
	p, err := Lookup("indian")
	require.NoError(t, err)

	res, err := p.Parse([]string{indianPage})
	require.NoError(t, err)

	require.Equal(t, 3, res.Ledger.RowCount())

	require.NotNil(t, res.Opening)
	assert.Equal(t, "5000.00", res.Opening.Amount)

	// Wrapped narration joins, the trailing pair splits into amount and
	// running balance.
	assert.Equal(t, "01/04/2024", res.Ledger.Cell(0, 0))
	assert.Contains(t, res.Ledger.Cell(0, 1), "UPI/P2M/grocery")
	assert.Contains(t, res.Ledger.Cell(0, 1), "mart chennai")
	assert.Equal(t, "750.00", res.Ledger.Cell(0, 2), "balance fell: debit")
	assert.Equal(t, "4250.00", res.Ledger.Cell(0, 4))

	assert.Equal(t, "40000.00", res.Ledger.Cell(1, 3), "balance rose: credit")

	require.NotNil(t, res.Closing)
	assert.Equal(t, "44225.00", res.Closing.Amount)
}

func TestIndianParserIgnoresSummaryFooter(t *testing.T) {
	// The footer's trailing figures look like an amount-balance pair;
	// they must not finalize the open transaction or set the closing.
	page := "01/04/2024 UPI/P2M/grocery\n" +
		"INDIAN BANK\n" +
		"TOTAL DEBIT TOTAL CREDIT 750.00 4,250.00\n"

	p, _ := Lookup("indian")
	res, err := p.Parse([]string{page})
	require.NoError(t, err)

	require.Equal(t, 1, res.Ledger.RowCount())
	assert.Equal(t, "01/04/2024", res.Ledger.Cell(0, 0))
	assert.Empty(t, res.Ledger.Cell(0, 2))
	assert.Empty(t, res.Ledger.Cell(0, 4))
	assert.NotContains(t, res.Ledger.Cell(0, 1), "TOTAL DEBIT")
	assert.Nil(t, res.Closing)
}

func TestIndianParserSkipsPageHeaders(t *testing.T) {
	page := "STATEMENT OF ACCOUNT\n" +
		"01/04/2024 NEFT inward salary 40,000.00 44,250.00\n" +
		"Branch: Chennai Main\n"

	p, _ := Lookup("indian")
	res, err := p.Parse([]string{page})
	require.NoError(t, err)

	require.Equal(t, 1, res.Ledger.RowCount())
	assert.NotContains(t, res.Ledger.Cell(0, 1), "STATEMENT")
	assert.NotContains(t, res.Ledger.Cell(0, 1), "Branch")
}

func TestIndianParserNoTransactions(t *testing.T) {
	p, _ := Lookup("indian")

	res, err := p.Parse([]string{"INDIAN BANK\nno transactions this period\n"})
	require.NoError(t, err)
	assert.Zero(t, res.Ledger.RowCount())
}
