package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerit/statement/bank"
)

var (
	borderedHeader   = []string{"Txn Date", "Particulars", "Cheque No", "Debit", "Credit", "Balance"}
	borderedTxn      = []string{"01/04/2024", "UPI/pay/grocery", "", "500.00", "", "10000.00"}
	borderlessHeader = []string{"Date", "Narration", "Amount", "Balance"}
)

func TestIsHeaderRow(t *testing.T) {
	c := NewClassifier(bank.LayoutBordered)

	assert.True(t, c.IsHeaderRow(borderedHeader))
	assert.False(t, c.IsHeaderRow(borderedTxn))
	assert.False(t, c.IsHeaderRow([]string{"Date", "Narration"}), "two keywords are below the ruled threshold")
}

func TestHeaderRowWithExcludedPhraseIsRejected(t *testing.T) {
	c := NewClassifier(bank.LayoutBordered)

	// Lexically header-like, but it is a summary row.
	row := []string{"Opening Balance", "Debit Count", "Credit Count", "Balance"}
	assert.True(t, c.headerMatches(row) >= c.HeaderThreshold)
	assert.False(t, c.IsHeaderRow(row))
}

func TestIsTransactionRow(t *testing.T) {
	c := NewClassifier(bank.LayoutBordered)

	assert.True(t, c.IsTransactionRow(borderedTxn))
	assert.False(t, c.IsTransactionRow([]string{"Branch Address", "Main Street", "", "", "", ""}))
}

func TestBorderlessThresholdsAreLooser(t *testing.T) {
	c := NewClassifier(bank.LayoutBorderless)

	assert.True(t, c.IsHeaderRow(borderlessHeader[:2]), "two keywords suffice for borderless")
	assert.True(t, c.IsTransactionRow([]string{"01/04/2024", "NEFT transfer", "", ""}))
}

func TestBestHeaderRow(t *testing.T) {
	c := NewClassifier(bank.LayoutBordered)

	rows := [][]string{
		{"Account Statement", "", "", "", "", ""},
		{"Opening Balance", "Debit", "Credit", "Balance", "", ""},
		borderedHeader,
		borderedTxn,
	}
	assert.Equal(t, 2, c.BestHeaderRow(rows), "excluded summary row must not win")

	assert.Equal(t, -1, c.BestHeaderRow([][]string{borderedTxn}))
}

func TestIsContinuationRow(t *testing.T) {
	c := NewClassifier(bank.LayoutBorderless)

	cont := []string{"", "continuation of narration", "", ""}
	assert.True(t, c.IsContinuationRow(cont, 4))
	assert.False(t, c.IsContinuationRow(cont, 5), "wrong width is not a continuation")
	assert.False(t, c.IsContinuationRow([]string{"", "", "", ""}, 4), "empty rows carry nothing")
}

func TestChequeColumn(t *testing.T) {
	assert.Equal(t, 2, ChequeColumn(borderedHeader))
	assert.Equal(t, -1, ChequeColumn(borderlessHeader))
}

func TestHasExcludedHeaders(t *testing.T) {
	summary := []string{"Customer ID", "Account Type", "Currency", "Holding Status"}
	assert.True(t, HasExcludedHeaders(summary))
	assert.False(t, HasExcludedHeaders(borderedHeader))
}
