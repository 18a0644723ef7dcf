package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

func extractDOCX(data []byte) (string, error) {
	paragraphs, err := DocxParagraphs(data)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// DocxParagraphs returns the text of every paragraph in word/document.xml,
// in document order. Tabs and line breaks inside a paragraph are kept.
func DocxParagraphs(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return paragraphsFromXML(rc)
}

// paragraphsFromXML collects paragraph text. Paragraphs nested in text boxes
// are emitted on their own, after the paragraph that holds them starts and
// without cutting it short. mc:Fallback duplicates mc:Choice and is skipped.
func paragraphsFromXML(r io.Reader) ([]string, error) {
	type openPara struct {
		idx int
		buf strings.Builder
	}
	decoder := xml.NewDecoder(r)
	var (
		out    []string
		stack  []*openPara
		inText bool
		inPPr  bool
	)
	top := func() *strings.Builder {
		if len(stack) == 0 {
			return nil
		}
		return &stack[len(stack)-1].buf
	}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Fallback":
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			case "p":
				stack = append(stack, &openPara{idx: len(out)})
				out = append(out, "")
			case "t":
				inText = true
			case "pPr":
				inPPr = true
			case "tab":
				// w:tabs inside paragraph properties are tab stops, not text
				if cur := top(); cur != nil && !inPPr {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if cur := top(); cur != nil {
					cur.WriteByte('\n')
				}
			}
		case xml.CharData:
			if cur := top(); cur != nil && inText {
				cur.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "pPr":
				inPPr = false
			case "p":
				if n := len(stack); n > 0 {
					para := stack[n-1]
					stack = stack[:n-1]
					out[para.idx] = para.buf.String()
				}
			}
		}
	}
	for _, para := range stack {
		out[para.idx] = para.buf.String()
	}
	return out, nil
}
