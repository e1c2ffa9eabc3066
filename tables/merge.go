package tables

import (
	"strings"

	"github.com/ledgerit/statement/bank"
	"github.com/ledgerit/statement/model"
)

// MergeMultiline collapses wrapped-text fragment rows into the transaction
// they belong to and returns a new ledger.
//
// Ruled layouts wrap long descriptions into rows that are mostly empty;
// fragments are folded into the last sufficiently filled row above them.
// Alignment-inferred layouts produce fragments directly beneath their
// transaction, so those fold into the immediately preceding row.
func MergeMultiline(l *model.Ledger, layout bank.Layout) *model.Ledger {
	if layout == bank.LayoutBorderless {
		return mergeIntoPrevious(l)
	}
	return mergeIntoBase(l)
}

// mergeIntoBase treats any row with at most two empty cells as a new base
// transaction; sparser rows are folded into the current base.
func mergeIntoBase(l *model.Ledger) *model.Ledger {
	const maxEmpty = 2

	out := l.Clone()
	base := -1
	var drop []int

	for i := 0; i < len(out.Rows); i++ {
		if emptyCells(out.Rows[i]) <= maxEmpty {
			base = i
			continue
		}
		if base < 0 {
			continue
		}
		foldRow(out.Rows[base], out.Rows[i])
		drop = append(drop, i)
	}

	return dropRows(out, drop)
}

// mergeIntoPrevious folds rows having at most two non-empty cells into the
// row directly above them.
func mergeIntoPrevious(l *model.Ledger) *model.Ledger {
	out := l.Clone()
	var drop []int
	dropped := make(map[int]bool)

	for i := 1; i < len(out.Rows); i++ {
		row := out.Rows[i]
		if emptyCells(row) < len(row)-2 {
			continue
		}

		// Walk past rows already merged away so chains collapse upward.
		target := i - 1
		for target >= 0 && dropped[target] {
			target--
		}
		if target < 0 {
			continue
		}

		if foldRow(out.Rows[target], row) {
			drop = append(drop, i)
			dropped[i] = true
		}
	}

	return dropRows(out, drop)
}

// foldRow merges the non-empty cells of src into dst, appending with a
// space where dst already has content. Reports whether anything moved.
func foldRow(dst, src []string) bool {
	moved := false
	for j, cell := range src {
		cell = strings.TrimSpace(cell)
		if cell == "" || j >= len(dst) {
			continue
		}
		if existing := strings.TrimSpace(dst[j]); existing == "" {
			dst[j] = cell
		} else {
			dst[j] = existing + " " + cell
		}
		moved = true
	}
	return moved
}

func emptyCells(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) == "" {
			n++
		}
	}
	return n
}

func dropRows(l *model.Ledger, indexes []int) *model.Ledger {
	if len(indexes) == 0 {
		return l
	}
	skip := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		skip[i] = true
	}
	kept := make([][]string, 0, len(l.Rows)-len(indexes))
	for i, row := range l.Rows {
		if !skip[i] {
			kept = append(kept, row)
		}
	}
	l.Rows = kept
	return l
}
