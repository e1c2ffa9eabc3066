package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerit/statement/bank"
	"github.com/ledgerit/statement/model"
)

func TestReconcileStitchesPages(t *testing.T) {
	r := NewReconciler(bank.LayoutBordered)

	pages := map[int][]*model.RawTable{
		1: {{Page: 1, Rows: [][]string{
			borderedHeader,
			{"01/04/2024", "UPI/pay/grocery", "", "500.00", "", "10000.00"},
		}}},
		2: {{Page: 2, Rows: [][]string{
			borderedHeader, // per-page header repeat
			{"02/04/2024", "NEFT/salary/credit", "", "", "45000.00", "55000.00"},
		}}},
	}

	l := r.Reconcile(pages)

	require.Equal(t, 2, l.RowCount())
	assert.Equal(t, "Txn Date", l.Columns[0])
	for i := range l.Rows {
		assert.Len(t, l.Rows[i], l.ColCount(), "row %d", i)
	}
	assert.Equal(t, "01/04/2024", l.Cell(0, 0))
	assert.Equal(t, "02/04/2024", l.Cell(1, 0))
}

func TestReconcileRepairsDroppedChequeColumn(t *testing.T) {
	r := NewReconciler(bank.LayoutBordered)

	pages := map[int][]*model.RawTable{
		1: {{Page: 1, Rows: [][]string{
			borderedHeader,
			{"01/04/2024", "UPI/pay/grocery", "", "500.00", "", "10000.00"},
		}}},
		// Page 2 came back one column short: the empty cheque column
		// was swallowed by detection.
		2: {{Page: 2, Rows: [][]string{
			{"02/04/2024", "ATM withdrawal", "1000.00", "", "9000.00"},
		}}},
	}

	l := r.Reconcile(pages)

	require.Equal(t, 2, l.RowCount())
	assert.Equal(t, 6, l.ColCount())
	assert.Equal(t, "", l.Cell(1, 2), "cheque cell restored empty")
	assert.Equal(t, "1000.00", l.Cell(1, 3))
}

func TestReconcileSkipsNonTransactionTables(t *testing.T) {
	r := NewReconciler(bank.LayoutBordered)

	pages := map[int][]*model.RawTable{
		1: {
			{Page: 1, Rows: [][]string{{"Registered Office", "Mumbai"}}},
			{Page: 1, Rows: [][]string{
				borderedHeader,
				{"01/04/2024", "UPI/pay/grocery", "", "500.00", "", "10000.00"},
			}},
		},
	}

	l := r.Reconcile(pages)
	assert.Equal(t, 1, l.RowCount())
}

func TestReconcileBorderlessRejectsSummaryTable(t *testing.T) {
	r := NewReconciler(bank.LayoutBorderless)

	pages := map[int][]*model.RawTable{
		1: {
			{Page: 1, Rows: [][]string{
				{"Customer ID", "Account Type", "Currency", "Holding Status"},
				{"12345", "Savings", "INR", "Single"},
			}},
			{Page: 1, Rows: [][]string{
				{"Date", "Narration", "Amount", "Balance"},
				{"01/04/2024", "NEFT transfer", "500.00", "10000.00"},
			}},
		},
	}

	l := r.Reconcile(pages)

	require.Equal(t, 1, l.RowCount())
	assert.Equal(t, "Date", l.Columns[0])
}

func TestReconcileWithoutHeaderUsesNumericColumns(t *testing.T) {
	r := NewReconciler(bank.LayoutBordered)

	pages := map[int][]*model.RawTable{
		1: {{Page: 1, Rows: [][]string{
			{"01/04/2024", "UPI/pay/grocery", "500.00", "10000.00"},
			{"02/04/2024", "POS purchase", "250.00", "9750.00"},
		}}},
	}

	l := r.Reconcile(pages)

	require.Equal(t, 2, l.RowCount())
	assert.Equal(t, []string{"0", "1", "2", "3"}, l.Columns)
}

func TestReconcileEmpty(t *testing.T) {
	r := NewReconciler(bank.LayoutBordered)
	l := r.Reconcile(nil)
	assert.Zero(t, l.RowCount())
}
