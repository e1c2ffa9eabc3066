// Package parsers holds line-oriented statement parsers for banks whose
// PDFs defeat table detection. Each parser walks the raw page text with a
// small state machine and emits the same ledger schema the table pipeline
// produces, so downstream balance handling is shared.
package parsers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerit/statement/model"
)

// StandardColumns is the schema every custom parser emits.
var StandardColumns = []string{"Date", "Particulars", "Debit", "Credit", "Balance"}

// Result carries a parsed ledger plus any balances the parser recovered
// along the way.
type Result struct {
	Ledger  *model.Ledger
	Opening *model.BalanceRecord
	Closing *model.BalanceRecord
}

// Parser converts the raw text of a statement's pages into a ledger.
type Parser interface {
	// Name identifies the parser in profile configuration.
	Name() string

	// Parse consumes one string per page, in document order.
	Parse(pages []string) (*Result, error)
}

var registry = map[string]func() Parser{}

func register(name string, factory func() Parser) {
	registry[name] = factory
}

// Lookup returns a fresh parser instance for the given profile name.
func Lookup(name string) (Parser, error) {
	factory, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("parsers: no parser registered for %q", name)
	}
	return factory(), nil
}

// Names lists the registered parser names.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

// transaction accumulates one ledger row while its lines are still being
// collected.
type transaction struct {
	date    string
	details []string
	debit   decimal.Decimal
	credit  decimal.Decimal
	balance decimal.Decimal
	hasBal  bool
}

func (t *transaction) describe(line string) {
	line = strings.TrimSpace(line)
	if line != "" {
		t.details = append(t.details, line)
	}
}

func (t *transaction) row() []string {
	debit, credit := "", ""
	if !t.debit.IsZero() {
		debit = t.debit.StringFixed(2)
	}
	if !t.credit.IsZero() {
		credit = t.credit.StringFixed(2)
	}
	balance := ""
	if t.hasBal {
		balance = t.balance.StringFixed(2)
	}
	return []string{t.date, strings.Join(t.details, " "), debit, credit, balance}
}

// classify splits an amount into debit or credit by comparing the new
// running balance to the previous one. With no previous balance the
// description keywords decide; an unrecognized description defaults to
// debit, the common case for the banks handled here.
func (t *transaction) classify(amount decimal.Decimal, prev *decimal.Decimal, debitHints []string) {
	if prev != nil {
		if t.balance.GreaterThan(*prev) {
			t.credit = amount
		} else {
			t.debit = amount
		}
		return
	}

	desc := strings.ToUpper(strings.Join(t.details, " "))
	for _, hint := range debitHints {
		if strings.Contains(desc, hint) {
			t.debit = amount
			return
		}
	}
	if strings.Contains(desc, "CR") || strings.Contains(desc, "DEPOSIT") || strings.Contains(desc, "CREDIT") {
		t.credit = amount
		return
	}
	t.debit = amount
}

func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimSuffix(strings.TrimSuffix(s, "Cr"), "Dr")
	return decimal.NewFromString(strings.TrimSpace(s))
}

func newLedger(rows [][]string) *model.Ledger {
	l := model.NewLedger(StandardColumns)
	for _, row := range rows {
		l.Append(row)
	}
	return l
}

func record(d decimal.Decimal) *model.BalanceRecord {
	return &model.BalanceRecord{Amount: d.StringFixed(2), Source: model.SourceTable}
}
