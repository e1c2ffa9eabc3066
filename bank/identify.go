// Package bank identifies the issuing bank of a statement and classifies it
// into a processing profile.
//
// Detection methods run in reliability order and the first success wins:
// institution-code lookup from the top of page 1, then bank-name regex
// matching, then logo template matching as a last resort.
package bank

import (
	"image"
	"log/slog"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(
	`(?im)\b([A-Za-z\s&]+(?:bank|financial|credit\s+union|cooperative|society)(?:\s+(?:ltd|limited|inc|corporation|corp))?)\b`,
)

// priorityKeywords are bank names preferred when the name regex produces
// several candidates.
var priorityKeywords = []string{"axis", "hdfc", "icici", "kotak", "indusind", "yes", "federal"}

// genericPrefixes mark regex matches that are document furniture rather
// than a bank name.
var genericPrefixes = []string{"account", "statement", "report"}

// Identifier detects the issuing bank of a statement.
type Identifier struct {
	Profiles *ProfileSet

	// Logos are the reference logos compared against page-1 images when
	// text detection fails. Empty means logo matching is skipped.
	Logos []ReferenceLogo

	// MaxLogoCandidates bounds how many extracted images are compared.
	MaxLogoCandidates int

	Logger *slog.Logger
}

// NewIdentifier creates an identifier with the built-in profile table.
func NewIdentifier() *Identifier {
	return &Identifier{
		Profiles:          DefaultProfiles(),
		MaxLogoCandidates: 2,
		Logger:            slog.Default(),
	}
}

// Identify detects the bank from the top-region text of page 1 and the
// page's images. It returns the detected name and whether anything matched.
func (id *Identifier) Identify(topText string, pageImages []image.Image) (string, bool) {
	if name := id.identifyByCode(topText); name != "" {
		id.Logger.Debug("bank identified by institution code", "bank", name)
		return name, true
	}

	if name := id.identifyByName(topText); name != "" {
		id.Logger.Debug("bank identified by name pattern", "bank", name)
		return name, true
	}

	if name := id.identifyByLogo(pageImages); name != "" {
		id.Logger.Debug("bank identified by logo match", "bank", name)
		return name, true
	}

	return "", false
}

// Classify maps a detected name to its processing profile.
func (id *Identifier) Classify(name string) (Profile, bool) {
	return id.Profiles.Classify(name)
}

// identifyByCode is the most reliable method: an institution code admits no
// ambiguity, so a hit short-circuits the remaining methods.
func (id *Identifier) identifyByCode(text string) string {
	code := ExtractCode(text)
	if code == "" {
		return ""
	}
	return FromCode(code)
}

// identifyByName applies the bank-name regex to the top-region text.
// Candidates containing a priority bank keyword win; otherwise the first
// non-generic candidate; otherwise the longest match.
func (id *Identifier) identifyByName(text string) string {
	matches := namePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}

	for _, m := range matches {
		lower := strings.ToLower(strings.TrimSpace(m))
		for _, keyword := range priorityKeywords {
			if strings.Contains(lower, keyword) && strings.Contains(lower, "bank") {
				return strings.TrimSpace(m)
			}
		}
	}

	for _, m := range matches {
		lower := strings.ToLower(strings.TrimSpace(m))
		if len(lower) > 5 && !hasGenericPrefix(lower) {
			return strings.TrimSpace(m)
		}
	}

	longest := matches[0]
	for _, m := range matches[1:] {
		if len(m) > len(longest) {
			longest = m
		}
	}
	return strings.TrimSpace(longest)
}

// identifyByLogo compares page images against the reference logos. Only the
// first MaxLogoCandidates images are considered; logo correlation is far
// more expensive than the text methods it backs up.
func (id *Identifier) identifyByLogo(pageImages []image.Image) string {
	if len(id.Logos) == 0 || len(pageImages) == 0 {
		return ""
	}

	limit := id.MaxLogoCandidates
	if limit <= 0 {
		limit = 2
	}
	if len(pageImages) > limit {
		pageImages = pageImages[:limit]
	}

	for _, img := range pageImages {
		if name, ok := MatchLogo(img, id.Logos); ok {
			return strings.ReplaceAll(name, "_", " ")
		}
	}
	return ""
}

func hasGenericPrefix(name string) bool {
	for _, prefix := range genericPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
