package pdfio

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// topRegionFraction is the slice of page 1 where bank branding lives.
const topRegionFraction = 0.25

// TopRegionText extracts the text in the top 25% of page 1, where the bank
// name, branch details and IFSC code are printed. When positioned extraction
// fails it falls back to the first quarter of the page's plain-text lines.
func TopRegionText(data []byte) string {
	if text, err := topRegionByPosition(data); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	return topRegionByLines(data)
}

// FullText returns the plain text of the whole document, pages concatenated
// in order. Extraction failures yield an empty string; absence of text is an
// expected outcome for scanned statements.
func FullText(data []byte) string {
	r, err := openReader(data, "")
	if err != nil {
		return ""
	}

	reader, err := safePlainText(r)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, reader); err != nil {
		return ""
	}
	return sb.String()
}

// topRegionByPosition reads positioned text fragments from page 1 and keeps
// those whose baseline lies within the top quarter of the media box. PDF
// Y coordinates grow upward, so the top quarter is the highest Y band.
func topRegionByPosition(data []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("positioned extraction failed: %v", p)
		}
	}()

	r, err := openReader(data, "")
	if err != nil {
		return "", err
	}
	if r.NumPage() < 1 {
		return "", fmt.Errorf("document has no pages")
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("page 1 unavailable")
	}

	_, cutoff, ok := topBand(page)
	if !ok {
		return "", fmt.Errorf("page 1 has no media box")
	}

	content := page.Content()
	frags := make([]pdf.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.Y >= cutoff {
			frags = append(frags, t)
		}
	}
	if len(frags) == 0 {
		return "", fmt.Errorf("no text in top region")
	}

	// Order top-to-bottom, then left-to-right, and rebuild lines.
	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y
		}
		return frags[i].X < frags[j].X
	})

	var sb strings.Builder
	lastY := frags[0].Y
	for _, t := range frags {
		if t.Y != lastY {
			sb.WriteString("\n")
			lastY = t.Y
		}
		sb.WriteString(t.S)
		sb.WriteString(" ")
	}
	return sb.String(), nil
}

// PageTexts returns the plain text of each page, one string per page in
// document order. Pages whose extraction fails contribute an empty string
// rather than aborting the document.
func PageTexts(data []byte) ([]string, error) {
	r, err := openReader(data, "")
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := safePageText(page)
		if err != nil {
			text = ""
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// topRegionByLines approximates the top region as the first quarter of the
// plain-text lines of page 1.
func topRegionByLines(data []byte) string {
	r, err := openReader(data, "")
	if err != nil || r.NumPage() < 1 {
		return ""
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return ""
	}

	text, err := safePageText(page)
	if err != nil {
		return ""
	}
	return FirstQuarterLines(text)
}

// FirstQuarterLines returns the first quarter of the lines of text, or all
// of them when there are four or fewer.
func FirstQuarterLines(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 4 {
		return text
	}
	return strings.Join(lines[:len(lines)/4], "\n")
}

// topBand returns the Y range of the page and the cutoff above which a
// fragment counts as part of the top quarter.
func topBand(page pdf.Page) (low, cutoff float64, ok bool) {
	box := page.V.Key("MediaBox")
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, 0, false
	}
	lowY := box.Index(1).Float64()
	highY := box.Index(3).Float64()
	if highY <= lowY {
		return 0, 0, false
	}
	return lowY, highY - (highY-lowY)*topRegionFraction, true
}

func safePlainText(r *pdf.Reader) (out io.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("plain text extraction failed: %v", p)
		}
	}()
	return r.GetPlainText()
}

func safePageText(page pdf.Page) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("page text extraction failed: %v", p)
		}
	}()
	return page.GetPlainText(nil)
}
