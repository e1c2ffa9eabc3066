package tables

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ledgerit/statement/bank"
	"github.com/ledgerit/statement/model"
)

// Reconciler stitches the candidate tables of all pages into one ledger
// with a uniform column schema.
type Reconciler struct {
	Layout     bank.Layout
	Classifier *Classifier
	Logger     *slog.Logger
}

// NewReconciler creates a reconciler for the given layout.
func NewReconciler(layout bank.Layout) *Reconciler {
	return &Reconciler{
		Layout:     layout,
		Classifier: NewClassifier(layout),
		Logger:     slog.Default(),
	}
}

// Reconcile folds the detected tables, in document order, into a single
// ledger. Tables are admitted by their first row (header or transaction
// evidence); the first admitted table establishes the canonical column
// count and, when it starts with a header, the cheque-column index used to
// repair pages where the detector dropped a sparse column. After
// concatenation the best header row is promoted to the schema and duplicate
// header rows are removed.
func (r *Reconciler) Reconcile(pages map[int][]*model.RawTable) *model.Ledger {
	pageNums := make([]int, 0, len(pages))
	for p := range pages {
		pageNums = append(pageNums, p)
	}
	sort.Ints(pageNums)

	var rows [][]string
	canonicalCols := 0
	chequeIdx := -1
	admitted := 0

	for _, p := range pageNums {
		for _, table := range pages[p] {
			include, patched := r.admit(table, canonicalCols, chequeIdx)
			if !include {
				continue
			}
			if admitted == 0 {
				canonicalCols = patched.ColCount()
				if header := patched.FirstRow(); header != nil && r.Classifier.IsHeaderRow(header) {
					chequeIdx = ChequeColumn(header)
				}
			}
			rows = append(rows, padRows(patched.Rows, canonicalCols)...)
			admitted++
		}
	}

	r.Logger.Debug("tables reconciled", "layout", r.Layout, "tables", admitted, "rows", len(rows))
	if len(rows) == 0 {
		return &model.Ledger{}
	}

	return r.promoteHeader(rows, canonicalCols)
}

// admit decides whether a table belongs to the transaction ledger and
// applies the cheque-column repair to later pages that come up one column
// short of the canonical schema.
func (r *Reconciler) admit(table *model.RawTable, canonicalCols, chequeIdx int) (bool, *model.RawTable) {
	first := table.FirstRow()
	if first == nil {
		return false, nil
	}

	header := r.Classifier.IsHeaderRow(first)
	txn := r.Classifier.IsTransactionRow(first)

	switch r.Layout {
	case bank.LayoutBorderless:
		if (header || txn) && !HasExcludedHeaders(first) {
			return true, table
		}
		if r.Classifier.IsContinuationRow(first, canonicalCols) {
			return true, table
		}
		return false, nil
	default:
		if !header && !txn {
			return false, nil
		}
		if canonicalCols > 0 && table.ColCount() == canonicalCols-1 && chequeIdx >= 0 {
			return true, table.InsertColumn(chequeIdx)
		}
		return true, table
	}
}

// promoteHeader finds the best header row across the stitched rows, makes
// it the column schema, and drops it along with any other row that looks
// like a repeated per-page header. Rows preceding the first header-like row
// are garbled lead-in noise in borderless layouts and are discarded.
func (r *Reconciler) promoteHeader(rows [][]string, cols int) *model.Ledger {
	ledger := &model.Ledger{}

	headerIdx := r.Classifier.BestHeaderRow(rows)
	if headerIdx < 0 {
		ledger.SetColumns(numericColumns(cols))
		ledger.Rows = rows
		return ledger
	}

	if r.Layout == bank.LayoutBorderless {
		if all := r.Classifier.AllHeaderRows(rows, 2); len(all) > 0 && headerIdx == all[0] && headerIdx > 0 {
			rows = rows[headerIdx:]
			headerIdx = 0
		}
	}

	ledger.SetColumns(rows[headerIdx])

	for i, row := range rows {
		if i == headerIdx {
			continue
		}
		if duplicateHeader(row) {
			continue
		}
		ledger.Append(row)
	}
	return ledger
}

// duplicateHeader flags per-page repeats of the column header. The strict
// threshold keeps transaction rows that merely mention a keyword.
func duplicateHeader(row []string) bool {
	matches := 0
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell == "" {
			continue
		}
		if headerPattern.MatchString(cell) {
			matches++
		}
	}
	return matches >= 3
}

func padRows(rows [][]string, cols int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= cols {
			out[i] = append([]string(nil), row...)
			continue
		}
		padded := make([]string, cols)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

func numericColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("%d", i)
	}
	return cols
}
