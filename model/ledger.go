package model

import "strings"

// Ledger is the normalized transaction table produced per processed
// statement: a resolved column schema plus ordered rows. After
// reconciliation every row has exactly len(Columns) cells.
type Ledger struct {
	Columns []string
	Rows    [][]string
}

// NewLedger creates an empty ledger with the given column schema.
func NewLedger(columns []string) *Ledger {
	return &Ledger{Columns: append([]string(nil), columns...)}
}

// RowCount returns the number of transaction rows.
func (l *Ledger) RowCount() int {
	return len(l.Rows)
}

// ColCount returns the number of columns in the schema.
func (l *Ledger) ColCount() int {
	return len(l.Columns)
}

// Append adds a row, padding or truncating it to the schema width.
func (l *Ledger) Append(row []string) {
	r := make([]string, len(l.Columns))
	copy(r, row)
	l.Rows = append(l.Rows, r)
}

// Cell returns the cell at row i, column j, or "" when out of range.
func (l *Ledger) Cell(i, j int) string {
	if i < 0 || i >= len(l.Rows) || j < 0 || j >= len(l.Rows[i]) {
		return ""
	}
	return l.Rows[i][j]
}

// ColumnIndex returns the index of the first column whose name contains any
// of the given substrings, compared case-insensitively with spaces removed.
// Returns -1 when no column matches.
func (l *Ledger) ColumnIndex(substrings ...string) int {
	for i, col := range l.Columns {
		name := normalizeColumnName(col)
		for _, s := range substrings {
			if strings.Contains(name, normalizeColumnName(s)) {
				return i
			}
		}
	}
	return -1
}

// ColumnIndexFunc returns the index of the first column whose normalized
// name satisfies match, or -1.
func (l *Ledger) ColumnIndexFunc(match func(name string) bool) int {
	for i, col := range l.Columns {
		if match(normalizeColumnName(col)) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	out := &Ledger{
		Columns: append([]string(nil), l.Columns...),
		Rows:    make([][]string, len(l.Rows)),
	}
	for i, row := range l.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// DropRow removes the row at index i. Out-of-range indexes are ignored.
func (l *Ledger) DropRow(i int) {
	if i < 0 || i >= len(l.Rows) {
		return
	}
	l.Rows = append(l.Rows[:i], l.Rows[i+1:]...)
}

// SetColumns replaces the schema, deduplicating repeated names with numeric
// suffixes so every column name stays addressable ("Date", "Date_1", ...).
func (l *Ledger) SetColumns(columns []string) {
	seen := make(map[string]int, len(columns))
	out := make([]string, len(columns))
	for i, col := range columns {
		col = strings.TrimSpace(col)
		if n, ok := seen[col]; ok {
			seen[col] = n + 1
			out[i] = col + "_" + itoa(n+1)
		} else {
			seen[col] = 0
			out[i] = col
		}
	}
	l.Columns = out
}

// RowText joins the non-empty cells of row i with single spaces.
func (l *Ledger) RowText(i int) string {
	if i < 0 || i >= len(l.Rows) {
		return ""
	}
	parts := make([]string, 0, len(l.Rows[i]))
	for _, cell := range l.Rows[i] {
		if s := strings.TrimSpace(cell); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func normalizeColumnName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
