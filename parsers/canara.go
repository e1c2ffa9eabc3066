package parsers

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerit/statement/model"
)

func init() {
	register("canara", func() Parser { return &canaraParser{} })
}

// canaraParser handles Canara Bank statements, which print narration lines
// ABOVE the dated line they belong to and close each transaction with a
// "Chq:" instrument line. The dated line carries the amount and the running
// balance; an "Opening Balance" line seeds the running balance, so debit
// versus credit comes from the balance delta, with narration keywords
// breaking the tie only when no such line exists.
type canaraParser struct{}

var (
	caDatePattern    = regexp.MustCompile(`^(\d{2}-\d{2}-\d{4})\b`)
	caPairPattern    = regexp.MustCompile(`([\d,]+\.\d{2})\s+([\d,]+\.\d{2})\s*$`)
	caChqPattern     = regexp.MustCompile(`(?i)^chq\s*:`)
	caOpeningPattern = regexp.MustCompile(`(?i)\bopening\s*balance\b`)
	caAmountTail     = regexp.MustCompile(`([\d,]+\.\d{2})\s*$`)

	// Page numbers and repeated column headers would otherwise be
	// stashed as narration for the next transaction.
	caPagePattern    = regexp.MustCompile(`(?i)^page\s+\d+$`)
	caColumnsPattern = regexp.MustCompile(`(?i)\bdate\b.*\bparticulars\b`)

	caDebitHints = []string{"UPI/DR", "NACH", "WITHDRAWAL", "ATM", "DEBIT", "/DR/"}
)

func (p *canaraParser) Name() string { return "canara" }

func (p *canaraParser) Parse(pages []string) (*Result, error) {
	var (
		rows    [][]string
		pending *transaction
		lead    []string
		prev    *decimal.Decimal
		opening *model.BalanceRecord
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
			if line == "" || caPagePattern.MatchString(line) || caColumnsPattern.MatchString(line) {
				continue
			}

			// The Opening Balance line seeds the running balance so the
			// first transaction classifies by delta, not by guesswork.
			if caOpeningPattern.MatchString(line) {
				if m := caAmountTail.FindStringSubmatch(line); m != nil {
					if b, err := parseMoney(m[1]); err == nil {
						prev = &b
						opening = record(b)
					}
				}
				continue
			}

			if caChqPattern.MatchString(line) {
				if pending != nil {
					pending.describe(line)
				}
				commit()
				continue
			}

			m := caDatePattern.FindStringSubmatch(line)
			if m == nil {
				// Narration precedes its dated line; stash it until
				// the transaction materializes.
				if pending != nil {
					pending.describe(line)
				} else {
					lead = append(lead, line)
				}
				continue
			}

			commit()
			pending = &transaction{date: m[1], details: lead}
			lead = nil

			rest := strings.TrimSpace(line[len(m[0]):])
			if pm := caPairPattern.FindStringSubmatch(rest); pm != nil {
				amt, errA := parseMoney(pm[1])
				bal, errB := parseMoney(pm[2])
				if errA == nil && errB == nil {
					pending.describe(strings.TrimSpace(strings.TrimSuffix(rest, pm[0])))
					pending.balance = bal
					pending.hasBal = true
					pending.classify(amt, prev, caDebitHints)
					continue
				}
			}
			pending.describe(rest)
		}
	}
	commit()

	res := &Result{Ledger: newLedger(rows)}
	res.Opening = opening
	if res.Opening == nil {
		res.Opening = canaraOpening(rows)
	}
	if prev != nil && len(rows) > 0 {
		res.Closing = record(*prev)
	}
	return res, nil
}

// canaraOpening reconstructs the opening balance from the first
// transaction: its balance plus its debit minus its credit. Canara
// statements print no balance-forward line to read it from directly.
func canaraOpening(rows [][]string) *model.BalanceRecord {
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]
	bal, err := parseMoney(first[4])
	if err != nil {
		return nil
	}
	opening := bal
	if first[2] != "" {
		if d, err := parseMoney(first[2]); err == nil {
			opening = opening.Add(d)
		}
	}
	if first[3] != "" {
		if c, err := parseMoney(first[3]); err == nil {
			opening = opening.Sub(c)
		}
	}
	return &model.BalanceRecord{Amount: opening.StringFixed(2), Source: model.SourceCalculated}
}
