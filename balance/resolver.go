// Package balance extracts or computes a statement's opening and closing
// balances and its transaction totals.
//
// Precedence for both ends of the ledger: an explicit balance row in the
// table beats a figure regexed out of the PDF text, which beats an
// algebraic calculation from the first transaction. Balance rows are
// consumed: once recorded they are removed from the ledger so they never
// surface as transactions.
package balance

import (
	"regexp"
	"strings"

	"github.com/ledgerit/statement/model"
)

var (
	openingPattern = regexp.MustCompile(`(?i)\b(opening\s*balance|b/f|brought\s*forward|balance\s*b/f|opening\s*bal|prev\s*balance)\b`)
	closingPattern = regexp.MustCompile(`(?i)\b(closing\s*balance|c/f|carried\s*forward|balance\s*c/f|closing\s*bal|final\s*balance)\b`)
	totalPattern   = regexp.MustCompile(`(?i)\b(total\s*transactions?|transaction\s*total|total\s*amount|grand\s*total|sum\s*total|total\s*debit|total\s*credit|net\s*total)\b`)

	// Two decimal places are required so dates and reference numbers on
	// the same row never pass for an amount.
	amountPattern = regexp.MustCompile(`([0-9,]+\.\d{2})\s*(Cr|Dr)?`)

	// pdfOpeningPatterns find an opening balance in the document's full
	// text when no balance row made it into a table.
	pdfOpeningPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Opening\s+Balance[:\s]+(?:INR|₹|Rs\.?|USD|\$)?\s*([0-9,]+\.\d{2})\s*(Cr|Dr)?`),
		regexp.MustCompile(`(?i)Opening\s+Bal\.?[:\s]+(?:INR|₹|Rs\.?|USD|\$)?\s*([0-9,]+\.\d{2})\s*(Cr|Dr)?`),
		regexp.MustCompile(`(?i)B/?F[:\s]+(?:INR|₹|Rs\.?|USD|\$)?\s*([0-9,]+\.\d{2})\s*(Cr|Dr)?`),
	}
)

// windowSize bounds how far from the ledger's ends a balance marker row is
// searched for.
const windowSize = 3

// ExtractOpening scans the first rows of the ledger for an opening-balance
// marker. On a hit it records the first amount on that row that is not the
// marker text itself, removes the row (and any garbled rows above it) from
// the ledger, and returns the record. Returns nil when no marker is found.
func ExtractOpening(l *model.Ledger) *model.BalanceRecord {
	limit := windowSize
	if limit > len(l.Rows) {
		limit = len(l.Rows)
	}

	for idx := 0; idx < limit; idx++ {
		amount, ok := balanceOnRow(l.Rows[idx], openingPattern)
		if !ok {
			continue
		}
		l.Rows = l.Rows[idx+1:]
		return &model.BalanceRecord{Amount: amount, Source: model.SourceTable}
	}
	return nil
}

// ExtractClosing is the mirror of ExtractOpening over the last rows; the
// marker row and everything after it are removed.
func ExtractClosing(l *model.Ledger) *model.BalanceRecord {
	start := len(l.Rows) - windowSize
	if start < 0 {
		start = 0
	}

	for idx := start; idx < len(l.Rows); idx++ {
		amount, ok := balanceOnRow(l.Rows[idx], closingPattern)
		if !ok {
			continue
		}
		l.Rows = l.Rows[:idx]
		return &model.BalanceRecord{Amount: amount, Source: model.SourceTable}
	}
	return nil
}

// ExtractTotal strips a transaction-total summary from the ledger's last
// row, preserving the whole row as named metadata. Totals are not balances;
// the row is recorded verbatim.
func ExtractTotal(l *model.Ledger) model.TotalRow {
	if len(l.Rows) == 0 {
		return nil
	}

	last := l.Rows[len(l.Rows)-1]
	matched := false
	for _, cell := range last {
		if totalPattern.MatchString(cell) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}

	total := make(model.TotalRow, len(last))
	for j, cell := range last {
		if j < len(l.Columns) {
			total[l.Columns[j]] = cell
		}
	}
	l.Rows = l.Rows[:len(l.Rows)-1]
	return total
}

// OpeningFromText regexes an opening balance out of the document's full
// text. This is the middle rung of the precedence ladder.
func OpeningFromText(fullText string) *model.BalanceRecord {
	for _, pattern := range pdfOpeningPatterns {
		m := pattern.FindStringSubmatch(fullText)
		if m == nil {
			continue
		}
		amount := strings.ReplaceAll(m[1], ",", "")
		if len(m) > 2 {
			amount += m[2]
		}
		return &model.BalanceRecord{Amount: amount, Source: model.SourcePDF}
	}
	return nil
}

// ClosingFromTable reads the balance cell of the chronologically last row.
// The table value is more trustworthy than any earlier text-derived guess,
// so callers overwrite with it whenever it is present.
func ClosingFromTable(l *model.Ledger, reverseChrono bool) *model.BalanceRecord {
	if len(l.Rows) == 0 {
		return nil
	}

	row := l.Rows[len(l.Rows)-1]
	if reverseChrono {
		row = l.Rows[0]
	}

	for j, col := range l.Columns {
		if !strings.Contains(strings.ToLower(col), "balance") || j >= len(row) {
			continue
		}
		cell := cleanAmount(row[j])
		if cell != "" && cell != "-" {
			return &model.BalanceRecord{Amount: cell, Source: model.SourceTable}
		}
	}
	return nil
}

// balanceOnRow looks for the marker pattern in a row and, on a hit, pulls
// the first amount from a different cell of the same row.
func balanceOnRow(row []string, marker *regexp.Regexp) (string, bool) {
	markerCell := ""
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell == "" {
			continue
		}
		if marker.MatchString(cell) {
			markerCell = cell
			break
		}
	}
	if markerCell == "" {
		return "", false
	}

	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell == "" {
			continue
		}
		m := amountPattern.FindStringSubmatch(cell)
		if m == nil || m[1] == markerCell {
			continue
		}
		return strings.ReplaceAll(m[1], ",", "") + m[2], true
	}
	return "", false
}

// cleanAmount strips currency prefixes, separators and surrounding space
// from a balance cell.
func cleanAmount(s string) string {
	s = strings.ReplaceAll(s, "INR", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
