package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"resume-tailor/internal/llm"
	"resume-tailor/internal/shared/telemetry"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtraction        = errors.New("text extraction failed")
)

const (
	visionInstruction = "Extract ALL text from this resume image. Preserve the structure and sections. Return only the extracted text, no commentary."
	visionMaxTokens   = 4000
)

// Rasterizer renders every page of a PDF to a PNG image, in page order.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte) ([][]byte, error)
}

// Extractor converts uploaded resumes into plain text.
// PDFs are transcribed by the vision provider when one is configured,
// otherwise their embedded text layer is read.
type Extractor struct {
	vision llm.Provider
	raster Rasterizer
}

// NewExtractor builds an Extractor. A nil vision provider or rasterizer
// selects text-layer extraction for PDFs.
func NewExtractor(vision llm.Provider, raster Rasterizer) *Extractor {
	return &Extractor{vision: vision, raster: raster}
}

// ExtractText dispatches on the filename suffix and returns trimmed text.
func (e *Extractor) ExtractText(ctx context.Context, content []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		text, err = e.extractPDF(ctx, content)
	case ".docx":
		text, err = extractDOCX(content)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		if errors.Is(err, llm.ErrProvider) || errors.Is(err, ErrExtraction) || isContextErr(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s: %v", ErrExtraction, filename, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: %s: no text found", ErrExtraction, filename)
	}
	return text, nil
}

// Supported reports whether filename has an extension ExtractText accepts.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	if e.vision == nil || e.raster == nil {
		return extractPDFText(data)
	}

	pages, err := e.raster.Rasterize(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if isContextErr(err) {
			return "", err
		}
		telemetry.Warn("extract.vision_unavailable", map[string]any{
			"error": err,
		})
		return extractPDFText(data)
	}

	images := make([]llm.Image, 0, len(pages))
	for _, png := range pages {
		images = append(images, llm.Image{MimeType: "image/png", Data: png})
	}
	return e.vision.Complete(ctx, llm.Request{
		User:      visionInstruction,
		Images:    images,
		MaxTokens: visionMaxTokens,
	})
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
