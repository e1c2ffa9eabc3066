package model

import "strings"

// RawTable is one candidate table reported by the table-detection engine:
// an ordered grid of text cells, the 1-indexed page it was found on, and the
// detector's confidence score (0-100). RawTables are never mutated in place;
// transformations work on copies.
type RawTable struct {
	Rows       [][]string
	Page       int
	Confidence float64
}

// RowCount returns the number of rows in the table.
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the widest row.
func (t *RawTable) ColCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// FirstRow returns the first row, or nil for an empty table.
func (t *RawTable) FirstRow() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Clone returns a deep copy of the table.
func (t *RawTable) Clone() *RawTable {
	out := &RawTable{
		Rows:       make([][]string, len(t.Rows)),
		Page:       t.Page,
		Confidence: t.Confidence,
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// InsertColumn returns a copy of the table with an empty cell inserted at
// index idx in every row. Used to repair pages where the detector silently
// dropped a sparsely populated column.
func (t *RawTable) InsertColumn(idx int) *RawTable {
	out := t.Clone()
	for i, row := range out.Rows {
		at := idx
		if at > len(row) {
			at = len(row)
		}
		row = append(row, "")
		copy(row[at+1:], row[at:])
		row[at] = ""
		out.Rows[i] = row
	}
	return out
}

// Text flattens the table into tab-separated rows, mostly for logging.
func (t *RawTable) Text() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
