package parsers

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	register("jammu-kashmir", func() Parser { return &jammuParser{} })
}

// jammuParser handles J&K Bank statements: each transaction starts with a
// dd-mm-yyyy date and ends with a running balance suffixed Cr or Dr, with
// wrapped narration lines in between. Pages carrying total or clearing
// markers are summaries and are skipped wholesale.
type jammuParser struct{}

var (
	jkDatePattern    = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})\b`)
	jkBalancePattern = regexp.MustCompile(`([\d,]+\.\d{2})\s*(Cr|Dr)\b`)
	jkAmountPattern  = regexp.MustCompile(`([\d,]+\.\d{2})`)
	jkOpeningPattern = regexp.MustCompile(`(?i)\b(b/f|brought\s*forward|opening\s*balance)\b`)

	jkSummaryMarkers = []string{
		"PAGE TOTAL",
		"GRAND TOTAL",
		"END OF STATEMENT",
		"FUNDS IN CLEARING",
	}

	jkBoilerplate = []string{
		"statement of account",
		"account number",
		"account no",
		"branch name",
		"ifsc",
		"micr",
		"page no",
		"customer name",
		"currency",
	}
)

func (p *jammuParser) Name() string { return "jammu-kashmir" }

func (p *jammuParser) Parse(pages []string) (*Result, error) {
	var (
		rows    [][]string
		pending *transaction
		prev    *decimal.Decimal
		opening *decimal.Decimal
	)

	commit := func() {
		if pending == nil {
			return
		}
		rows = append(rows, pending.row())
		if pending.hasBal {
			b := pending.balance
			prev = &b
		}
		pending = nil
	}

	for _, page := range pages {
		// Pages carrying totals or clearing figures are summary pages;
		// their dated entries are not transactions.
		if isJKSummaryPage(page) {
			continue
		}

		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || isJKBoilerplate(line) {
				continue
			}

			if jkOpeningPattern.MatchString(line) {
				if m := jkBalancePattern.FindStringSubmatch(line); m != nil {
					if b, err := parseMoney(m[1]); err == nil {
						opening = &b
						prev = &b
					}
				}
				continue
			}

			if m := jkDatePattern.FindStringSubmatch(line); m != nil {
				commit()
				pending = &transaction{date: m[1]}
				p.consume(pending, strings.TrimSpace(line[len(m[0]):]), prev)
				continue
			}

			if pending != nil {
				p.consume(pending, line, prev)
			}
		}
	}
	commit()

	res := &Result{Ledger: newLedger(rows)}
	if opening != nil {
		res.Opening = record(*opening)
	}
	if prev != nil && len(rows) > 0 {
		res.Closing = record(*prev)
	}
	return res, nil
}

// consume feeds one line into the pending transaction. The Cr/Dr-suffixed
// token is the running balance; the remaining decimal token on the same
// transaction is its amount. Everything else is narration.
func (p *jammuParser) consume(t *transaction, line string, prev *decimal.Decimal) {
	if m := jkBalancePattern.FindStringSubmatch(line); m != nil {
		if b, err := parseMoney(m[1]); err == nil {
			t.balance = b
			t.hasBal = true
		}
		line = strings.Replace(line, m[0], "", 1)
	}

	if t.hasBal && t.debit.IsZero() && t.credit.IsZero() {
		if m := jkAmountPattern.FindStringSubmatch(line); m != nil {
			if amt, err := parseMoney(m[1]); err == nil {
				line = strings.Replace(line, m[0], "", 1)
				t.describe(line)
				t.classify(amt, prev, nil)
				return
			}
		}
	}
	t.describe(line)
}

func isJKSummaryPage(page string) bool {
	upper := strings.ToUpper(page)
	for _, marker := range jkSummaryMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

func isJKBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range jkBoilerplate {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
