package balance

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/ledgerit/statement/model"
)

// ParseDate parses a transaction date with day-first preference; ambiguous
// day/month values are retried swapped. Indian statements write 04/05/2024
// meaning the 4th of May.
func ParseDate(s string) (time.Time, error) {
	return dateparse.ParseAny(strings.TrimSpace(s),
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true))
}

// dateColumn returns the index of the primary transaction-date column: the
// first column whose name contains "date" but not "value", so a Value Date
// column never wins over Txn Date.
func dateColumn(l *model.Ledger) int {
	for j, col := range l.Columns {
		lower := strings.ToLower(col)
		if strings.Contains(lower, "date") && !strings.Contains(lower, "value") {
			return j
		}
	}
	return -1
}

// IsReverseChrono reports whether the ledger runs newest-first, by comparing
// the parsed dates of the first and last rows. Unparseable or missing dates
// report false, which keeps the common oldest-first assumption.
func IsReverseChrono(l *model.Ledger) bool {
	if len(l.Rows) < 2 {
		return false
	}
	col := dateColumn(l)
	if col < 0 {
		return false
	}

	first, err := ParseDate(cellAt(l.Rows[0], col))
	if err != nil {
		return false
	}
	last, err := ParseDate(cellAt(l.Rows[len(l.Rows)-1], col))
	if err != nil {
		return false
	}
	return first.After(last)
}

// NormalizeDates rewrites every parseable cell of every date column to ISO
// 8601 (2006-01-02). Cells that fail to parse are left untouched.
func NormalizeDates(l *model.Ledger) {
	for j, col := range l.Columns {
		if !strings.Contains(strings.ToLower(col), "date") {
			continue
		}
		for _, row := range l.Rows {
			if j >= len(row) || strings.TrimSpace(row[j]) == "" {
				continue
			}
			if t, err := ParseDate(row[j]); err == nil {
				row[j] = t.Format("2006-01-02")
			}
		}
	}
}

func cellAt(row []string, j int) string {
	if j >= len(row) {
		return ""
	}
	return row[j]
}
