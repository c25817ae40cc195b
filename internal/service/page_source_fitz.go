//go:build cgo

package service

import (
	"context"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// FitzPageSource extracts page text with MuPDF
type FitzPageSource struct {
	logger domain.Logger
}

func newFitzPageSource(logger domain.Logger) domain.PageSource {
	return &FitzPageSource{logger: logger}
}

// Name returns the backend name
func (s *FitzPageSource) Name() string {
	return PageSourceFitz
}

// Pages opens the document from memory and returns the text of every page.
// A page that fails on its own is kept as an empty string.
func (s *FitzPageSource) Pages(ctx context.Context, pdfBytes []byte) ([]string, error) {
	if len(pdfBytes) == 0 {
		return nil, apperrors.NewParseFailedError("PDF parsing failed", errEmptyDocument)
	}

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, apperrors.NewParseFailedError("PDF parsing failed", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, numPages)
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.logger.Debug("PDF processing page", "page", i+1, "total", numPages)
		text, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page", "page_num", i+1, "total", numPages, "error", err)
			continue
		}
		pages[i] = text
	}
	return pages, nil
}
