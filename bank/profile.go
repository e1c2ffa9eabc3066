package bank

import "regexp"

// Layout classifies how a bank's statement tables are drawn, which decides
// the detection configuration and reconciliation heuristics.
type Layout string

const (
	// LayoutBordered means the table cells are delimited by ruled lines.
	LayoutBordered Layout = "bordered"

	// LayoutBorderless means cells are inferred from text alignment.
	LayoutBorderless Layout = "borderless"

	// LayoutCustom means the generic pipeline is bypassed in favor of a
	// bank-specific line parser.
	LayoutCustom Layout = "custom"
)

// Profile is the processing profile a detected bank name classifies into.
type Profile struct {
	// Canonical is the normalized bank name reported to the caller.
	Canonical string

	Layout Layout

	// Parser names the dedicated line parser for LayoutCustom profiles.
	Parser string
}

// Rule maps a bank-name pattern to its profile. Adding support for a new
// bank is a data change: append a rule, not a branch.
type Rule struct {
	Pattern *regexp.Regexp
	Profile Profile
}

// ProfileSet is the classification table consulted after detection.
// Rules are evaluated in order; the first match wins.
type ProfileSet struct {
	Rules []Rule

	// DefaultLayout applies to detected banks matching no rule.
	DefaultLayout Layout
}

// Classify maps a detected bank name to its processing profile. Names that
// match no rule fall back to a profile with the default layout and the name
// as given; ok is false only for empty names.
func (ps *ProfileSet) Classify(name string) (Profile, bool) {
	if name == "" {
		return Profile{}, false
	}
	for _, rule := range ps.Rules {
		if rule.Pattern.MatchString(name) {
			return rule.Profile, true
		}
	}
	return Profile{Canonical: name, Layout: ps.DefaultLayout}, true
}

func rule(pattern string, p Profile) Rule {
	return Rule{Pattern: regexp.MustCompile(`(?i)` + pattern), Profile: p}
}

// DefaultProfiles returns the built-in classification table. Custom-parser
// banks are listed first so they never fall through to the generic pipeline.
func DefaultProfiles() *ProfileSet {
	return &ProfileSet{
		DefaultLayout: LayoutBordered,
		Rules: []Rule{
			rule(`jammu.*kashmir.*bank`, Profile{Canonical: "Jammu and Kashmir Bank", Layout: LayoutCustom, Parser: "jammu-kashmir"}),
			rule(`indian.*overseas.*bank`, Profile{Canonical: "Indian Overseas Bank", Layout: LayoutBordered}),
			rule(`indian.*bank`, Profile{Canonical: "Indian Bank", Layout: LayoutCustom, Parser: "indian"}),
			rule(`canara.*bank`, Profile{Canonical: "Canara Bank", Layout: LayoutCustom, Parser: "canara"}),

			rule(`axis.*bank`, Profile{Canonical: "Axis Bank", Layout: LayoutBordered}),
			rule(`icici.*bank`, Profile{Canonical: "ICICI Bank", Layout: LayoutBordered}),
			rule(`yes.*bank`, Profile{Canonical: "Yes Bank", Layout: LayoutBordered}),
			rule(`(state.*bank|sbi)`, Profile{Canonical: "State Bank of India", Layout: LayoutBordered}),
			rule(`union.*bank`, Profile{Canonical: "Union Bank of India", Layout: LayoutBordered}),
			rule(`central.*bank`, Profile{Canonical: "Central Bank of India", Layout: LayoutBordered}),
			rule(`federal.*bank`, Profile{Canonical: "Federal Bank", Layout: LayoutBordered}),
			rule(`idbi.*bank`, Profile{Canonical: "IDBI Bank", Layout: LayoutBordered}),
			rule(`bandhan.*bank`, Profile{Canonical: "Bandhan Bank", Layout: LayoutBordered}),
			rule(`punjab.*national.*bank`, Profile{Canonical: "Punjab National Bank", Layout: LayoutBordered}),

			rule(`kotak.*bank`, Profile{Canonical: "Kotak Bank", Layout: LayoutBorderless}),
			rule(`indusind.*bank`, Profile{Canonical: "IndusInd Bank", Layout: LayoutBorderless}),
			rule(`hdfc.*bank`, Profile{Canonical: "HDFC Bank", Layout: LayoutBorderless}),
			rule(`uco.*bank`, Profile{Canonical: "UCO Bank", Layout: LayoutBorderless}),
		},
	}
}
