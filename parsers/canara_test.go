package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerit/statement/model"
)

const canaraPage = `UPI/DR/409912/grocery mart
01-04-2024 1,500.00 8,500.00
Chq: -
NEFT/CR/salary April
02-04-2024 40,000.00 48,500.00
Chq: -
`

func TestCanaraParser(t *testing.T) {
	p, err := Lookup("canara")
	require.NoError(t, err)

	res, err := p.Parse([]string{canaraPage})
	require.NoError(t, err)

	require.Equal(t, 2, res.Ledger.RowCount())

	// Narration printed above the dated line attaches to it.
	assert.Equal(t, "01-04-2024", res.Ledger.Cell(0, 0))
	assert.Contains(t, res.Ledger.Cell(0, 1), "UPI/DR/409912/grocery mart")
	assert.Equal(t, "1500.00", res.Ledger.Cell(0, 2), "UPI/DR keyword marks the first txn a debit")
	assert.Equal(t, "8500.00", res.Ledger.Cell(0, 4))

	assert.Equal(t, "40000.00", res.Ledger.Cell(1, 3), "balance rose: credit")

	// No balance-forward line exists; opening is reconstructed from the
	// first transaction.
	require.NotNil(t, res.Opening)
	assert.Equal(t, "10000.00", res.Opening.Amount)
	assert.Equal(t, model.SourceCalculated, res.Opening.Source)

	require.NotNil(t, res.Closing)
	assert.Equal(t, "48500.00", res.Closing.Amount)
}

func TestCanaraParserSeedsOpeningFromLine(t *testing.T) {
	page := "Page 1\n" +
		"Date Particulars Deposits Withdrawals Balance\n" +
		"Opening Balance 8,000.00\n" +
		"INTEREST CAPITALISED\n" +
		"01-04-2024 500.00 8,500.00\n" +
		"Chq: -\n"

	p, _ := Lookup("canara")
	res, err := p.Parse([]string{page})
	require.NoError(t, err)

	require.Equal(t, 1, res.Ledger.RowCount())

	// Seeded balance makes the delta decide: 8000 -> 8500 is a credit,
	// even though the narration has no credit keyword.
	assert.Equal(t, "500.00", res.Ledger.Cell(0, 3))
	assert.Empty(t, res.Ledger.Cell(0, 2))

	require.NotNil(t, res.Opening)
	assert.Equal(t, "8000.00", res.Opening.Amount)
	assert.Equal(t, model.SourceTable, res.Opening.Source)

	// Page furniture stays out of the narration.
	desc := res.Ledger.Cell(0, 1)
	assert.Contains(t, desc, "INTEREST CAPITALISED")
	assert.NotContains(t, desc, "Page 1")
	assert.NotContains(t, desc, "Particulars")
	assert.NotContains(t, desc, "Opening Balance")
}

func TestCanaraParserDebitHints(t *testing.T) {
	// Without a seeded balance, "ATM" and "DEBIT" each mark the first
	// transaction a debit on their own.
	for _, narration := range []string{"ATM CASH 409912", "POS DEBIT 881200"} {
		page := narration + "\n01-04-2024 1,500.00 8,500.00\nChq: -\n"

		p, _ := Lookup("canara")
		res, err := p.Parse([]string{page})
		require.NoError(t, err)

		require.Equal(t, 1, res.Ledger.RowCount(), narration)
		assert.Equal(t, "1500.00", res.Ledger.Cell(0, 2), narration)
		assert.Empty(t, res.Ledger.Cell(0, 3), narration)
	}
}

func TestCanaraParserEmpty(t *testing.T) {
	p, _ := Lookup("canara")

	res, err := p.Parse([]string{"CANARA BANK\nAccount Statement\n"})
	require.NoError(t, err)
	assert.Zero(t, res.Ledger.RowCount())
	assert.Nil(t, res.Opening)
}
