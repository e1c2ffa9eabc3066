//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for reading scanned statement pages. It requires
// Tesseract to be installed on the system and the "ocr" build tag.
type Client struct {
	client *gosseract.Client
}

// NewClient creates a new OCR client. The client should be closed when no
// longer needed to release resources.
func NewClient() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Text performs OCR on image data (PNG, TIFF, JPEG, etc.) and returns the
// recognized text with surrounding whitespace trimmed.
func (c *Client) Text(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Lines performs OCR on image data and returns the recognized text split
// into trimmed, non-empty lines. This is the form the line-oriented bank
// parsers consume.
func (c *Client) Lines(imageData []byte) ([]string, error) {
	text, err := c.Text(imageData)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple languages
// can be specified as a "+" separated string (e.g., "eng+hin").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode, which affects how
// Tesseract analyzes the page layout.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
