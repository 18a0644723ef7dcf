package render

import (
	"fmt"
	"regexp"
	"strings"
)

var blankLine = regexp.MustCompile(`\n\s*\n`)

// CoverLetter renders letter text as one DOCX paragraph per blank-line block.
func CoverLetter(text string) ([]byte, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil, fmt.Errorf("%w: cover letter is empty", ErrRender)
	}

	doc := newDocument(coverLetterMargin)
	for _, block := range blankLine.Split(text, -1) {
		if block = strings.TrimSpace(block); block != "" {
			doc.paragraph(paraStyle{spaceAfter: 240}, run{text: block})
		}
	}

	out, err := doc.pack()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}
