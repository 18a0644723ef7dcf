package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/image"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageRasterizer renders PDF pages with ImageMagick.
type PageRasterizer struct {
	DPI int
}

// Rasterize returns one PNG per page.
func (r PageRasterizer) Rasterize(ctx context.Context, data []byte) ([][]byte, error) {
	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}
	if count == 0 {
		return nil, errors.New("pdf has no pages")
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	doc, err := document.OpenPDF(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	dpi := r.DPI
	if dpi <= 0 {
		dpi = 144
	}
	renderer, err := image.NewImageMagickRenderer(config.ImageConfig{
		Format:  string(document.PNG),
		DPI:     dpi,
		Options: make(map[string]any),
	})
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	pages := make([][]byte, 0, count)
	for pageNum := 1; pageNum <= count; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := doc.ExtractPage(pageNum)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}
		png, err := page.ToImage(renderer, nil)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", pageNum, err)
		}
		pages = append(pages, png)
	}
	return pages, nil
}

var _ Rasterizer = PageRasterizer{}
