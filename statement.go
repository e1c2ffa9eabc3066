// Package statement provides a fluent API for normalizing bank-statement
// PDFs into a transaction ledger with resolved opening and closing
// balances.
//
// Basic usage:
//
//	res, err := statement.FromFile("statement.pdf").
//	    Password("SWAT1234").
//	    Detector(myDetector).
//	    Process()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Metadata.BankName, res.Ledger.RowCount())
//
// The lower-level pdfio, bank, tables, balance and parsers packages are
// available for advanced use.
package statement

import (
	"fmt"
	"os"

	"github.com/ledgerit/statement/balance"
	"github.com/ledgerit/statement/bank"
	"github.com/ledgerit/statement/model"
	"github.com/ledgerit/statement/ocr"
	"github.com/ledgerit/statement/parsers"
	"github.com/ledgerit/statement/pdfio"
	"github.com/ledgerit/statement/tables"
)

// Processor accumulates configuration for one document and runs the
// pipeline when Process is called.
type Processor struct {
	data []byte
	err  error
	opts processOptions
}

// Metadata describes the statement around the extracted ledger.
type Metadata struct {
	// BankName is the detected issuing bank.
	BankName string

	// Canonical is the profile's canonical bank name.
	Canonical string

	// Layout is the table layout the profile selected.
	Layout bank.Layout

	PageCount        int
	TransactionCount int

	// OpeningBalance and ClosingBalance record the resolved figure and
	// where it came from. Either may be nil when nothing resolved.
	OpeningBalance *model.BalanceRecord
	ClosingBalance *model.BalanceRecord

	// TransactionTotal preserves a summary-total row stripped from the
	// ledger's tail, keyed by column name. Nil when no such row existed.
	TransactionTotal model.TotalRow
}

// Result is the outcome of processing one statement.
type Result struct {
	Ledger   *model.Ledger
	Metadata Metadata
}

// FromBytes starts a processing chain over an in-memory document.
func FromBytes(data []byte) *Processor {
	return &Processor{data: data, opts: defaultProcessOptions()}
}

// FromFile starts a processing chain over a document on disk. Read errors
// surface from Process.
func FromFile(path string) *Processor {
	data, err := os.ReadFile(path)
	return &Processor{data: data, err: err, opts: defaultProcessOptions()}
}

// Must panics on a non-nil error. Intended for scripts and tests.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Process runs the full pipeline: unlock, identify the bank, extract and
// reconcile its tables (or run its custom parser), and resolve balances.
func (p *Processor) Process() (*Result, error) {
	if p.err != nil {
		return nil, p.err
	}
	log := p.opts.logger

	data, err := p.unlock()
	if err != nil {
		return nil, err
	}

	pageCount, err := pdfio.PageCount(data)
	if err != nil {
		return nil, err
	}

	topText := pdfio.TopRegionText(data)
	images := pdfio.FirstPageImages(data)

	id := bank.NewIdentifier()
	id.Profiles = p.opts.profiles
	id.Logger = log
	if p.opts.logoDir != "" {
		id.Logos = bank.LoadReferenceLogos(p.opts.logoDir)
	}

	name, ok := id.Identify(topText, images)
	if !ok {
		return nil, ErrUnknownBank
	}
	profile, _ := id.Classify(name)
	log.Info("bank identified", "bank", name, "canonical", profile.Canonical, "layout", profile.Layout)

	meta := Metadata{
		BankName:  name,
		Canonical: profile.Canonical,
		Layout:    profile.Layout,
		PageCount: pageCount,
	}

	var ledger *model.Ledger
	if profile.Layout == bank.LayoutCustom {
		ledger, err = p.runParser(data, profile, &meta)
	} else {
		ledger, err = p.runTables(data, profile, &meta)
	}
	if err != nil {
		return nil, err
	}

	meta.TransactionCount = ledger.RowCount()
	log.Info("statement processed", "bank", profile.Canonical, "transactions", meta.TransactionCount)
	return &Result{Ledger: ledger, Metadata: meta}, nil
}

// unlock probes for encryption and decrypts when needed. An encrypted
// document with no configured password fails with ErrPasswordRequired.
func (p *Processor) unlock() ([]byte, error) {
	encrypted, err := pdfio.IsEncrypted(p.data)
	if err != nil {
		return nil, err
	}
	if !encrypted {
		return p.data, nil
	}
	return pdfio.Decrypt(p.data, p.opts.password)
}

// runTables is the pipeline for banks whose statements carry detectable
// tables: detect, reconcile across pages, pull balance rows off the ends,
// merge wrapped lines, clean, then resolve whatever balances the table
// didn't yield directly.
func (p *Processor) runTables(data []byte, profile bank.Profile, meta *Metadata) (*model.Ledger, error) {
	if p.opts.detector == nil {
		return nil, ErrNoDetector
	}

	cfg := ocr.BorderedConfig()
	if profile.Layout == bank.LayoutBorderless {
		cfg = ocr.BorderlessConfig()
	}

	pages, err := p.opts.detector.DetectTables(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("table detection: %w", err)
	}

	rec := tables.NewReconciler(profile.Layout)
	rec.Logger = p.opts.logger
	ledger := rec.Reconcile(pages)
	if ledger.RowCount() == 0 {
		return nil, ErrNoTables
	}

	// Balance rows come off before merging so they can never be folded
	// into a neighboring transaction.
	opening := balance.ExtractOpening(ledger)
	closing := balance.ExtractClosing(ledger)
	meta.TransactionTotal = balance.ExtractTotal(ledger)

	ledger = tables.MergeMultiline(ledger, profile.Layout)
	tables.Clean(ledger, profile.Layout)

	reverse := balance.IsReverseChrono(ledger)
	if opening == nil {
		opening = balance.OpeningFromText(pdfio.FullText(data))
	}
	if opening == nil {
		opening = balance.ComputeOpening(ledger, reverse)
	}

	// The last running-balance cell outranks any earlier closing guess.
	if fromTable := balance.ClosingFromTable(ledger, reverse); fromTable != nil {
		closing = fromTable
	}

	balance.NormalizeDates(ledger)

	meta.OpeningBalance = opening
	meta.ClosingBalance = closing
	return ledger, nil
}

// runParser dispatches to the bank's registered line parser and resolves
// balances the parser did not recover itself.
func (p *Processor) runParser(data []byte, profile bank.Profile, meta *Metadata) (*model.Ledger, error) {
	parser, err := parsers.Lookup(profile.Parser)
	if err != nil {
		return nil, err
	}

	pages, err := pdfio.PageTexts(data)
	if err != nil {
		return nil, err
	}

	res, err := parser.Parse(pages)
	if err != nil {
		return nil, fmt.Errorf("parser %s: %w", parser.Name(), err)
	}
	if res.Ledger.RowCount() == 0 {
		return nil, ErrNoTables
	}

	opening := res.Opening
	if opening == nil {
		opening = balance.OpeningFromText(pdfio.FullText(data))
	}
	if opening == nil {
		opening = balance.ComputeOpening(res.Ledger, false)
	}

	balance.NormalizeDates(res.Ledger)

	meta.OpeningBalance = opening
	meta.ClosingBalance = res.Closing
	return res.Ledger, nil
}
