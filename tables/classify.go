// Package tables turns raw per-page candidate tables into one normalized
// ledger: row classification, multi-page stitching, duplicate-header
// removal, multiline-transaction merging and OCR text cleanup.
//
// Everything here is heuristic. Absence of a match is a valid, expected
// outcome; no classifier raises on malformed input.
package tables

import (
	"regexp"
	"strings"

	"github.com/ledgerit/statement/bank"
)

// headerPattern matches the column-name vocabulary used across bank
// statements: date, transaction id, serial number, debit/credit,
// amount/balance and narration variants.
var headerPattern = regexp.MustCompile(`(?i)\b(txn\s*date|transaction\s*date|date|transaction\s*id|txn\s*id|ref\s*no|serial\s*no|s\.?\s*no|sr\s*no|debit|credit|amount|balance|particulars|description|remarks|narration)\b`)

// chequePattern locates a cheque/instrument-number column in a header row.
var chequePattern = regexp.MustCompile(`(?i)\b(cheque\s*no|cheque\s*number|chq\s*no|chq\s*number|check\s*no|check\s*number|cheque\s*details|chq\s*details|check\s*details|instrument\s*id)\b`)

// txnBorderedPattern collects transaction evidence in ruled layouts: date
// tokens, payment-rail keywords, reference codes, decimal amounts and Cr/Dr
// markers.
var txnBorderedPattern = regexp.MustCompile(`(?i)(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}-[A-Za-z]{3}-\d{4}|\b(upi|neft|imps|rtgs|atm|pos|cheque|transfer|payment|deposit|withdrawal|ifn|tfr)\b|[A-Z]{3}/[A-Z0-9]+|\bS\d+\b|\d+\.\d{2}|\b(cr|dr)\b)`)

// txnBorderlessPattern is the looser evidence set for unruled layouts.
var txnBorderlessPattern = regexp.MustCompile(`(?i)(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}\s+[A-Za-z]{3}\s+\d{4}|\b(upi|neft|imps|rtgs|atm|pos|cheque|transfer|payment|deposit|withdrawal)\b|\b\d{1,10}\.\d{2}\b)`)

// excludedPhrases look like headers lexically but are summary rows; a row
// containing any of them must never be promoted to a column schema.
var excludedPhrases = []string{
	"opening balance",
	"closing balance",
	"total debit amount",
	"total credit amount",
	"debit count",
	"credit count",
}

// excludedHeaderPattern marks borderless first rows that belong to account
// summary boxes rather than the transaction table.
var excludedHeaderPattern = regexp.MustCompile(`(?i)\b(holding\s*status|customer\s*id|currency|account\s*type|account\s*number|opening\s*balance|closing\s*bal|drcount|crcount|total\s*debit\s*amount|total\s*credit\s*amount)\b`)

// Classifier applies the per-row heuristics for one table layout. The
// thresholds are deliberately exported: the right values vary between bank
// variants and should be validated against real statements.
type Classifier struct {
	// HeaderThreshold is the minimum number of header-keyword cells for a
	// row to qualify as a header.
	HeaderThreshold int

	// TransactionThreshold is the minimum number of evidence cells for a
	// row to qualify as a transaction.
	TransactionThreshold int

	txnPattern *regexp.Regexp
}

// NewClassifier returns the classifier tuned for the given layout: strict
// thresholds for ruled tables, loose ones for alignment-inferred tables.
func NewClassifier(layout bank.Layout) *Classifier {
	if layout == bank.LayoutBorderless {
		return &Classifier{HeaderThreshold: 2, TransactionThreshold: 2, txnPattern: txnBorderlessPattern}
	}
	return &Classifier{HeaderThreshold: 3, TransactionThreshold: 3, txnPattern: txnBorderedPattern}
}

// IsHeaderRow reports whether the row qualifies as a column-header row:
// enough header-keyword cells and none of the excluded summary phrases.
func (c *Classifier) IsHeaderRow(row []string) bool {
	if HasExcludedPhrase(row) {
		return false
	}
	return c.headerMatches(row) >= c.HeaderThreshold
}

// IsTransactionRow reports whether the row carries enough transaction
// evidence (dates, rail keywords, amounts, Cr/Dr tokens).
func (c *Classifier) IsTransactionRow(row []string) bool {
	matches := 0
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell == "" {
			continue
		}
		if c.txnPattern.MatchString(cell) {
			matches++
		}
	}
	return matches >= c.TransactionThreshold
}

// IsContinuationRow reports whether a row that is neither header nor
// transaction is a wrapped-text fragment of the preceding transaction:
// no excluded markers, the established column count, and some real content.
func (c *Classifier) IsContinuationRow(row []string, expectedCols int) bool {
	if c.IsHeaderRow(row) || HasExcludedHeaders(row) || c.IsTransactionRow(row) {
		return false
	}
	if expectedCols > 0 && len(row) != expectedCols {
		return false
	}
	for _, cell := range row {
		if len(strings.TrimSpace(cell)) >= 2 {
			return true
		}
	}
	return false
}

// BestHeaderRow scans all rows and returns the index of the row with the
// most header-keyword matches (at least two), skipping rows with excluded
// phrases. Ties keep the first occurrence. Returns -1 when nothing
// qualifies.
func (c *Classifier) BestHeaderRow(rows [][]string) int {
	best := -1
	bestMatches := 0
	for i, row := range rows {
		if HasExcludedPhrase(row) {
			continue
		}
		if m := c.headerMatches(row); m >= 2 && m > bestMatches {
			bestMatches = m
			best = i
		}
	}
	return best
}

// AllHeaderRows returns the indexes of every row with at least threshold
// header-keyword matches.
func (c *Classifier) AllHeaderRows(rows [][]string, threshold int) []int {
	var out []int
	for i, row := range rows {
		if c.headerMatches(row) >= threshold {
			out = append(out, i)
		}
	}
	return out
}

func (c *Classifier) headerMatches(row []string) int {
	matches := 0
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell == "" {
			continue
		}
		if headerPattern.MatchString(cell) {
			matches++
		}
	}
	return matches
}

// HasExcludedPhrase reports whether any cell contains a summary phrase that
// disqualifies the row from header promotion.
func HasExcludedPhrase(row []string) bool {
	for _, cell := range row {
		lower := strings.ToLower(strings.TrimSpace(cell))
		if lower == "" {
			continue
		}
		for _, phrase := range excludedPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}

// HasExcludedHeaders reports whether a row has at least two cells matching
// the account-summary vocabulary. Used to reject borderless tables whose
// first row belongs to a summary box.
func HasExcludedHeaders(row []string) bool {
	matches := 0
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell == "" {
			continue
		}
		if excludedHeaderPattern.MatchString(cell) {
			matches++
		}
	}
	return matches >= 2
}

// ChequeColumn returns the index of the header cell naming a cheque or
// instrument-number column, or -1.
func ChequeColumn(header []string) int {
	for i, cell := range header {
		if chequePattern.MatchString(cell) {
			return i
		}
	}
	return -1
}
