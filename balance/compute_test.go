package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerit/statement/model"
)

func TestComputeOpeningDebitCredit(t *testing.T) {
	// Balance after a 500 credit is 10500; undoing it recovers 10000.
	l := ledgerOf(
		[]string{"Date", "Particulars", "Debit", "Credit", "Balance"},
		[]string{"01/04/2024", "NEFT credit", "", "500.00", "10,500.00"},
		[]string{"02/04/2024", "UPI/pay", "200.00", "", "10300.00"},
	)

	rec := ComputeOpening(l, false)

	require.NotNil(t, rec)
	assert.Equal(t, "10000.00", rec.Amount)
	assert.Equal(t, model.SourceCalculated, rec.Source)
}

func TestComputeOpeningDebit(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Particulars", "Withdrawal", "Deposit", "Balance"},
		[]string{"01/04/2024", "ATM withdrawal", "1,000.00", "-", "9000.00"},
	)

	rec := ComputeOpening(l, false)

	require.NotNil(t, rec)
	assert.Equal(t, "10000.00", rec.Amount)
}

func TestComputeOpeningAmountWithMarker(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Particulars", "Amount", "Dr/Cr", "Balance"},
		[]string{"01/04/2024", "POS purchase", "250.00", "Dr", "9750.00"},
	)

	rec := ComputeOpening(l, false)

	require.NotNil(t, rec)
	assert.Equal(t, "10000.00", rec.Amount)
}

func TestComputeOpeningReverseChrono(t *testing.T) {
	// Newest-first: the chronologically first transaction is the last row.
	l := ledgerOf(
		[]string{"Date", "Particulars", "Debit", "Credit", "Balance"},
		[]string{"02/04/2024", "UPI/pay", "200.00", "", "10300.00"},
		[]string{"01/04/2024", "NEFT credit", "", "500.00", "10500.00"},
	)

	rec := ComputeOpening(l, true)

	require.NotNil(t, rec)
	assert.Equal(t, "10000.00", rec.Amount)
}

func TestComputeOpeningNeedsBalanceColumn(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Particulars", "Debit", "Credit"},
		[]string{"01/04/2024", "UPI/pay", "200.00", ""},
	)

	assert.Nil(t, ComputeOpening(l, false))
}

func TestComputeOpeningUnparseableCell(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Particulars", "Debit", "Credit", "Balance"},
		[]string{"01/04/2024", "UPI/pay", "200.00", "", "not a number"},
	)

	assert.Nil(t, ComputeOpening(l, false))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1,234.56", "1234.56", true},
		{"INR 2,000.00", "2000", true},
		{"500.00Cr", "500", true},
		{"", "0", true},
		{"-", "0", true},
		{"garbage", "0", false},
	}
	for _, tt := range tests {
		d, ok := parseAmount(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, d.String(), tt.in)
		}
	}
}
