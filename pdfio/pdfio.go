// Package pdfio provides byte-level access to statement PDFs: decryption of
// password-protected documents, page counting, and extraction of the text
// and images the bank identifier works from.
//
// Two independent engines are used. pdfcpu rewrites encrypted documents and
// handles the broader set of encryption schemes; the ledongthuc/pdf reader
// supplies positioned text and doubles as a cheap probe for encryption and
// corruption.
package pdfio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var (
	// ErrPasswordRequired means the document is encrypted and no password
	// was supplied.
	ErrPasswordRequired = errors.New("pdf is password protected")

	// ErrWrongPassword means no decryption attempt accepted the supplied
	// password or any of its case variants.
	ErrWrongPassword = errors.New("wrong pdf password")

	// ErrCorruptPDF means the document could not be parsed at all.
	ErrCorruptPDF = errors.New("pdf is corrupt or not a pdf")
)

// IsEncrypted reports whether the document requires a password. Documents
// encrypted with an empty user password open without one and report false.
func IsEncrypted(data []byte) (bool, error) {
	_, err := openReader(data, "")
	if err == nil {
		return false, nil
	}
	if errors.Is(err, pdf.ErrInvalidPassword) {
		return true, nil
	}
	return false, fmt.Errorf("%w: %v", ErrCorruptPDF, err)
}

// Decrypt unlocks an encrypted document and returns its decrypted bytes.
// Engine A (pdfcpu) is tried with the password as given; engine B retries
// with case variants of the password, validating each against the text
// reader before asking pdfcpu to rewrite with it. The first attempt that
// opens the document wins. On total failure the sentinel distinguishes a
// wrong password from a missing one.
func Decrypt(data []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	if out, err := decryptWith(data, password); err == nil {
		return out, nil
	}

	for _, variant := range passwordVariants(password) {
		if _, err := openReader(data, variant); err != nil {
			continue
		}
		if out, err := decryptWith(data, variant); err == nil {
			return out, nil
		}
		// The reader accepted the variant but pdfcpu could not rewrite
		// the document; downstream readers can still open it themselves.
		return data, nil
	}

	return nil, ErrWrongPassword
}

// PageCount returns the number of pages in a readable document.
func PageCount(data []byte) (int, error) {
	r, err := openReader(data, "")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptPDF, err)
	}
	return r.NumPage(), nil
}

// decryptWith rewrites the document without encryption using pdfcpu.
func decryptWith(data []byte, password string) ([]byte, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var buf bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(data), &buf, conf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// passwordVariants returns the password spellings retried by engine B.
// Statement producers frequently normalize case when setting passwords.
func passwordVariants(password string) []string {
	trimmed := strings.TrimSpace(password)
	variants := []string{
		password,
		trimmed,
		strings.ToUpper(trimmed),
		strings.ToLower(trimmed),
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// openReader opens a document with the text-extraction reader. The reader
// panics on some malformed inputs, so the panic is converted to an error.
func openReader(data []byte, password string) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()

	if password == "" {
		return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	}

	supplied := false
	return pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string {
		if supplied {
			return ""
		}
		supplied = true
		return password
	})
}
