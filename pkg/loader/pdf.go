package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLoader extracts plain text from PDF files page by page.
type PDFLoader struct{}

var _ Loader = (*PDFLoader)(nil)

// NewPDFLoader creates a new PDF loader.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// Extensions returns the handled extensions.
func (l *PDFLoader) Extensions() []string {
	return []string{".pdf"}
}

// Load extracts the text of every parseable page, joined with blank lines.
func (l *PDFLoader) Load(_ context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	var content strings.Builder

	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that cannot be parsed.
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if content.Len() > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(text)
	}

	return content.String(), nil
}
