package balance

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerit/statement/model"
)

// ledgerShape classifies the amount-bearing columns of a ledger. A given
// column lands in exactly one role; the first listed role that matches wins.
type ledgerShape struct {
	balance int
	drcr    int
	amount  int
	debit   int
	credit  int
}

func shapeOf(l *model.Ledger) ledgerShape {
	s := ledgerShape{balance: -1, drcr: -1, amount: -1, debit: -1, credit: -1}
	for j, col := range l.Columns {
		lower := strings.ToLower(col)
		switch {
		case strings.Contains(lower, "balance"):
			if s.balance < 0 {
				s.balance = j
			}
		case strings.Contains(lower, "dr") && strings.Contains(lower, "cr"):
			if s.drcr < 0 {
				s.drcr = j
			}
		case strings.Contains(lower, "amount"):
			if s.amount < 0 {
				s.amount = j
			}
		case strings.Contains(lower, "debit") || strings.Contains(lower, "withdraw"):
			if s.debit < 0 {
				s.debit = j
			}
		case strings.Contains(lower, "credit") || strings.Contains(lower, "deposit"):
			if s.credit < 0 {
				s.credit = j
			}
		}
	}
	return s
}

// ComputeOpening derives the opening balance by undoing the chronologically
// first transaction: the running balance after it, plus its debit, minus its
// credit. Supports both the split debit/credit shape and the single
// amount-with-Dr/Cr-marker shape. Returns nil when the ledger lacks the
// needed columns or the cells don't parse.
func ComputeOpening(l *model.Ledger, reverseChrono bool) *model.BalanceRecord {
	if len(l.Rows) == 0 {
		return nil
	}

	row := l.Rows[0]
	if reverseChrono {
		row = l.Rows[len(l.Rows)-1]
	}

	s := shapeOf(l)
	if s.balance < 0 {
		return nil
	}
	bal, ok := parseAmount(cellAt(row, s.balance))
	if !ok {
		return nil
	}

	var opening decimal.Decimal
	switch {
	case s.amount >= 0 && s.drcr >= 0:
		amt, ok := parseAmount(cellAt(row, s.amount))
		if !ok {
			return nil
		}
		marker := strings.ToLower(strings.TrimSpace(cellAt(row, s.drcr)))
		if strings.Contains(marker, "dr") {
			opening = bal.Add(amt)
		} else {
			opening = bal.Sub(amt)
		}
	case s.debit >= 0 && s.credit >= 0:
		debit, ok := parseAmount(cellAt(row, s.debit))
		if !ok {
			return nil
		}
		credit, ok := parseAmount(cellAt(row, s.credit))
		if !ok {
			return nil
		}
		opening = bal.Add(debit).Sub(credit)
	default:
		return nil
	}

	return &model.BalanceRecord{Amount: opening.StringFixed(2), Source: model.SourceCalculated}
}

// parseAmount converts a statement cell to a decimal. Empty cells and the
// "-" placeholder count as zero; anything else that fails to parse reports
// false.
func parseAmount(cell string) (decimal.Decimal, bool) {
	s := cleanAmount(cell)
	if s == "" || s == "-" {
		return decimal.Zero, true
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "Cr"), "Dr")
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
