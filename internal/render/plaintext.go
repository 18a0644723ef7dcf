package render

import (
	"strings"

	"resume-tailor/internal/extract"
)

// PlainText returns the visible text of a DOCX document, one line per paragraph.
func PlainText(docx []byte) (string, error) {
	paragraphs, err := extract.DocxParagraphs(docx)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}
