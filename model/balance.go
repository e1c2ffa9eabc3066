package model

// Source records where a balance figure came from. Explicit table and PDF
// values are preferred over calculated ones.
type Source string

const (
	SourceTable      Source = "Table"
	SourcePDF        Source = "PDF"
	SourceCalculated Source = "Calculated"
)

// BalanceRecord is an opening or closing balance with its provenance.
// Amount keeps the original textual form (possibly carrying a Cr/Dr suffix)
// so the caller decides presentation.
type BalanceRecord struct {
	Amount string
	Source Source
}

// TotalRow preserves a statement's transaction-total summary row as named
// metadata once it has been stripped from the ledger.
type TotalRow map[string]string
