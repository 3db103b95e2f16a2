package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
)

// ReadParagraphs returns the text of the first limit paragraphs of a .docx,
// joined with newlines. Empty paragraphs count towards the limit.
func ReadParagraphs(r io.ReaderAt, size int64, limit int) (string, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	lines := make([]string, 0, limit)
	for _, item := range doc.Document.Body.Items {
		if len(lines) == limit {
			break
		}
		if p, ok := item.(*docx.Paragraph); ok {
			lines = append(lines, p.String())
		}
	}
	return strings.Join(lines, "\n"), nil
}

// WriteDocx renders text unformatted, one paragraph per line.
func WriteDocx(text string) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	for _, line := range strings.Split(text, "\n") {
		w.AddParagraph().AddText(strings.TrimSuffix(line, "\r"))
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}
