package bank

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// profileFile is the YAML shape for an external profile table. Shipping the
// table as data keeps bank onboarding a configuration change.
type profileFile struct {
	DefaultLayout string            `yaml:"default_layout"`
	Codes         map[string]string `yaml:"codes,omitempty"`
	Rules         []profileRule     `yaml:"rules"`
}

type profileRule struct {
	Pattern   string `yaml:"pattern"`
	Canonical string `yaml:"canonical"`
	Layout    string `yaml:"layout"`
	Parser    string `yaml:"parser,omitempty"`
}

// LoadProfiles reads a profile table from a YAML file. Institution codes
// listed under "codes" are merged over the built-in code map.
func LoadProfiles(path string) (*ProfileSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	ps := &ProfileSet{DefaultLayout: LayoutBordered}
	if file.DefaultLayout != "" {
		layout, err := parseLayout(file.DefaultLayout)
		if err != nil {
			return nil, err
		}
		ps.DefaultLayout = layout
	}

	for _, r := range file.Rules {
		pattern, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Pattern, err)
		}
		layout, err := parseLayout(r.Layout)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Pattern, err)
		}
		if layout == LayoutCustom && r.Parser == "" {
			return nil, fmt.Errorf("rule %q: custom layout requires a parser name", r.Pattern)
		}
		ps.Rules = append(ps.Rules, Rule{
			Pattern: pattern,
			Profile: Profile{Canonical: r.Canonical, Layout: layout, Parser: r.Parser},
		})
	}

	for code, name := range file.Codes {
		institutionCodes[code] = name
	}

	return ps, nil
}

func parseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutBordered, LayoutBorderless, LayoutCustom:
		return Layout(s), nil
	}
	return "", fmt.Errorf("unknown layout %q", s)
}
