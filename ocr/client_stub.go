//go:build !ocr

package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support; this
// requires Tesseract to be installed (apt-get install tesseract-ocr).
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// NewClient returns an error indicating OCR support is not enabled.
func NewClient() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Text returns an error indicating OCR support is not enabled.
func (c *Client) Text(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Lines returns an error indicating OCR support is not enabled.
func (c *Client) Lines(imageData []byte) ([]string, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
