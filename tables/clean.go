package tables

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/ledgerit/statement/bank"
	"github.com/ledgerit/statement/model"
)

var (
	multiSpace = regexp.MustCompile(`\s+`)

	// OCR likes to inject spaces around the hyphens of dates like
	// "28-APR-2024"; these rejoin the pieces.
	hyphenYear  = regexp.MustCompile(`-\s+(\d{4})`)
	monthHyphen = regexp.MustCompile(`([A-Z]{3,4})-\s+`)
	hyphenMonth = regexp.MustCompile(`-\s+([A-Z]{3,4})`)
)

// asciiFold replaces every non-ASCII rune (currency signs, OCR mojibake)
// with a hyphen.
var asciiFold = runes.Map(func(r rune) rune {
	if r > unicode.MaxASCII {
		return '-'
	}
	return r
})

// Clean normalizes every cell of the ledger in place: whitespace collapsed,
// OCR-split date hyphens rejoined, non-ASCII folded to "-". Borderless
// layouts additionally mark empty cells with "-" so sparse columns stay
// visibly aligned for the caller.
func Clean(l *model.Ledger, layout bank.Layout) {
	for _, row := range l.Rows {
		for j, cell := range row {
			row[j] = cleanCell(cell)
			if layout == bank.LayoutBorderless && row[j] == "" {
				row[j] = "-"
			}
		}
	}
}

func cleanCell(cell string) string {
	s := multiSpace.ReplaceAllString(cell, " ")
	s = hyphenYear.ReplaceAllString(s, "-$1")
	s = monthHyphen.ReplaceAllString(s, "$1-")
	s = hyphenMonth.ReplaceAllString(s, "-$1")
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	return strings.TrimSpace(s)
}
