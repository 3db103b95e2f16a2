package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Arial"
	pdfFontSize   = 11
	pdfLineHeight = 10
)

// WritePDF lays text out as one multi-line cell on A4 pages using a core
// font. Characters outside Latin-1 are replaced with '?'.
func WritePDF(text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfFontSize)
	pdf.MultiCell(0, pdfLineHeight, ToLatin1(text), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ToLatin1 re-encodes s one byte per rune, the way the core PDF fonts expect.
func ToLatin1(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			out = append(out, '?')
			continue
		}
		out = append(out, byte(r))
	}
	return string(out)
}
