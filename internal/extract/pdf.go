package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfParser struct{}

func (pdfParser) CanParse(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

func (pdfParser) FileType() string { return TypePDF }

// Parse joins the plain text of every page with newlines. The pdf reader
// panics on some malformed inputs, so panics are turned into errors.
func (pdfParser) Parse(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Failed to extract text from PDF: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("Failed to extract text from PDF: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pt, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("Failed to extract text from PDF: page %d: %w", i, err)
		}
		b.WriteString(pt)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}
