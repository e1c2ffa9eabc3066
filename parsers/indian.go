package parsers

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	register("indian", func() Parser { return &indianParser{} })
}

// indianParser handles Indian Bank statements. A transaction opens with a
// dd/mm/yy date and closes on the line carrying the amount-balance pair;
// narration spills across the lines in between.
type indianParser struct{}

var (
	inDatePattern    = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})\b`)
	inPairPattern    = regexp.MustCompile(`([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`)
	inBalancePattern = regexp.MustCompile(`([\d,]+\.\d{2})\s*$`)
	inOpeningPattern = regexp.MustCompile(`(?i)\b(opening\s*balance|brought\s*forward|b/f)\b`)

	// inBoilerplate lines are headers, footers and summary totals whose
	// trailing figures would otherwise read as an amount-balance pair.
	inBoilerplate = []string{
		"statement",
		"account",
		"indian bank",
		"closing balance",
		"total debit",
		"total credit",
		"page total",
		"grand total",
		"ifsc",
		"branch",
	}
)

func isIndianBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range inBoilerplate {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func (p *indianParser) Name() string { return "indian" }

func (p *indianParser) Parse(pages []string) (*Result, error) {
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
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if inOpeningPattern.MatchString(line) {
				if m := inBalancePattern.FindStringSubmatch(line); m != nil {
					if b, err := parseMoney(m[1]); err == nil {
						opening = &b
						prev = &b
					}
				}
				continue
			}

			// Boilerplate never terminates or feeds the pending
			// transaction.
			if isIndianBoilerplate(line) {
				continue
			}

			if m := inDatePattern.FindStringSubmatch(line); m != nil {
				commit()
				pending = &transaction{date: m[1]}
				line = strings.TrimSpace(line[len(m[0]):])
				if line == "" {
					continue
				}
			} else if pending == nil {
				continue
			}

			// The amount-balance pair terminates the transaction; a
			// line without it is narration.
			if m := inPairPattern.FindStringSubmatch(line); m != nil {
				amt, errA := parseMoney(m[1])
				bal, errB := parseMoney(m[2])
				if errA == nil && errB == nil {
					pending.describe(strings.TrimSpace(strings.TrimSuffix(line, m[0])))
					pending.balance = bal
					pending.hasBal = true
					pending.classify(amt, prev, nil)
					commit()
					continue
				}
			}
			pending.describe(line)
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
