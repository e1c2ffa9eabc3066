// Package ocr defines the table-detection capability the pipeline is built
// on, and wraps the Tesseract OCR engine used to read scanned pages.
//
// The heavy lifting (segmenting a page into candidate tables) is delegated
// to an injected Detector. Loading a detector's model weights is the single
// most expensive operation in the pipeline, so a process-wide shared
// instance is available through Shared.
package ocr

import "github.com/ledgerit/statement/model"

// Config steers table detection between ruled and unruled layouts. These
// four knobs are the only ones the pipeline uses.
type Config struct {
	// Infer row boundaries from text alignment rather than ruled lines.
	ImplicitRows bool

	// Infer column boundaries from text alignment.
	ImplicitColumns bool

	// Detect tables that have no ruling at all.
	Borderless bool

	// Minimum detection confidence (0-100) for a candidate table.
	MinConfidence float64
}

// BorderedConfig returns the configuration for statements with ruled cell
// borders: the ruling is ground truth, so implicit inference is disabled.
func BorderedConfig() Config {
	return Config{MinConfidence: 50}
}

// BorderlessConfig returns the configuration for statements whose tables
// are defined by text alignment alone.
func BorderlessConfig() Config {
	return Config{
		ImplicitRows:    true,
		ImplicitColumns: true,
		Borderless:      true,
		MinConfidence:   50,
	}
}

// Detector finds candidate transaction tables in a PDF document.
// Implementations receive the whole (decrypted) document and return the
// detected tables keyed by 1-indexed page number.
//
// Detectors are not assumed safe for concurrent use; the pipeline issues
// calls sequentially.
type Detector interface {
	DetectTables(document []byte, cfg Config) (map[int][]*model.RawTable, error)
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(document []byte, cfg Config) (map[int][]*model.RawTable, error)

// DetectTables calls f.
func (f DetectorFunc) DetectTables(document []byte, cfg Config) (map[int][]*model.RawTable, error) {
	return f(document, cfg)
}
