package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"

	"github.com/ledongthuc/pdf"
)

var errEmptyDocument = errors.New("empty PDF content")

// NativePageSource extracts page text with a pure Go parser
type NativePageSource struct {
	logger domain.Logger
}

// NewNativePageSource creates the pure Go backend
func NewNativePageSource(logger domain.Logger) *NativePageSource {
	return &NativePageSource{logger: logger}
}

// Name returns the backend name
func (s *NativePageSource) Name() string {
	return PageSourceNative
}

// Pages returns the plain text of every page in document order. Null page
// objects and pages whose content cannot be decoded yield an empty string.
func (s *NativePageSource) Pages(ctx context.Context, pdfBytes []byte) (pages []string, err error) {
	if len(pdfBytes) == 0 {
		return nil, apperrors.NewParseFailedError("PDF parsing failed", errEmptyDocument)
	}

	// the parser panics on some malformed object graphs
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = apperrors.NewParseFailedError("PDF parsing failed", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, apperrors.NewParseFailedError("PDF parsing failed", err)
	}

	numPages := reader.NumPage()
	pages = make([]string, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			s.logger.Debug("PDF page object missing", "page", i, "total", numPages)
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			s.logger.Warn("Failed to extract text from page", "page_num", i, "total", numPages, "error", err)
			continue
		}
		pages[i-1] = text
	}
	return pages, nil
}
