package statement

import (
	"log/slog"

	"github.com/ledgerit/statement/bank"
	"github.com/ledgerit/statement/ocr"
)

// processOptions holds the configuration accumulated by the fluent chain
// before Process runs.
type processOptions struct {
	password string
	detector ocr.Detector
	profiles *bank.ProfileSet
	logoDir  string
	logger   *slog.Logger
}

func defaultProcessOptions() processOptions {
	return processOptions{
		profiles: bank.DefaultProfiles(),
		logger:   slog.Default(),
	}
}

// Password supplies the document password. Case variants of it are tried
// automatically when the exact value is rejected.
func (p *Processor) Password(pw string) *Processor {
	p.opts.password = pw
	return p
}

// Detector supplies the table detector used for banks handled by the table
// pipeline. Without one, such banks fail with ErrNoDetector; custom-parser
// banks still work.
func (p *Processor) Detector(d ocr.Detector) *Processor {
	p.opts.detector = d
	return p
}

// Profiles replaces the built-in bank profile set, typically one loaded
// from YAML via bank.LoadProfiles.
func (p *Processor) Profiles(ps *bank.ProfileSet) *Processor {
	if ps != nil {
		p.opts.profiles = ps
	}
	return p
}

// Logos points identification at a directory of reference logo images used
// as the last-resort bank matcher. A missing directory is not an error.
func (p *Processor) Logos(dir string) *Processor {
	p.opts.logoDir = dir
	return p
}

// Logger replaces the default slog logger.
func (p *Processor) Logger(l *slog.Logger) *Processor {
	if l != nil {
		p.opts.logger = l
	}
	return p
}
