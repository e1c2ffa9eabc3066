package statement

import (
	"errors"

	"github.com/ledgerit/statement/pdfio"
)

var (
	// ErrUnknownBank means none of the identification strategies (IFSC
	// code, name pattern, logo match) recognized the issuing bank.
	ErrUnknownBank = errors.New("statement: bank could not be identified")

	// ErrNoTables means detection found nothing that survives
	// reconciliation as a transaction ledger.
	ErrNoTables = errors.New("statement: no transaction tables found")

	// ErrNoDetector means the bank requires the table pipeline but no
	// table detector was configured.
	ErrNoDetector = errors.New("statement: no table detector configured")
)

// Re-exported document-access errors, so callers need only this package to
// distinguish credential problems from corrupt input.
var (
	ErrPasswordRequired = pdfio.ErrPasswordRequired
	ErrWrongPassword    = pdfio.ErrWrongPassword
	ErrCorruptPDF       = pdfio.ErrCorruptPDF
)
