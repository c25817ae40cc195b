package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"
)

// MarkdownService converts PDF bytes into one Markdown document
type MarkdownService struct {
	source domain.PageSource
	logger domain.Logger
	now    func() time.Time
}

// NewMarkdownService creates a converter reading pages from source
func NewMarkdownService(source domain.PageSource, logger domain.Logger) *MarkdownService {
	return &MarkdownService{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// Convert extracts every page and assembles the Markdown document.
// Page order is preserved and pages without text keep an empty block.
func (s *MarkdownService) Convert(ctx context.Context, pdfBytes []byte, sourceName string) (*domain.MarkdownDocument, error) {
	started := s.now()

	pages, err := s.source.Pages(ctx, pdfBytes)
	if err != nil {
		if _, ok := apperrors.As(err); !ok && ctx.Err() == nil {
			err = apperrors.NewParseFailedError("PDF parsing failed", err)
		}
		s.logger.Error("PDF conversion failed", err, "backend", s.source.Name(), "source", sourceName, "size", len(pdfBytes))
		return nil, err
	}

	doc := &domain.MarkdownDocument{
		Content:    AssemblePages(pages),
		PageCount:  len(pages),
		SourceName: sourceName,
		CreatedAt:  s.now().UTC(),
	}

	s.logger.Info("PDF converted to Markdown",
		"backend", s.source.Name(),
		"source", sourceName,
		"pages", doc.PageCount,
		"chars", len(doc.Content),
		"duration_ms", s.now().Sub(started).Milliseconds(),
	)
	return doc, nil
}

// AssemblePages formats each page as "## Page N" followed by its trimmed text
// and joins the blocks with a blank line.
func AssemblePages(pages []string) string {
	blocks := make([]string, len(pages))
	for i, text := range pages {
		blocks[i] = fmt.Sprintf("## Page %d\n\n%s", i+1, strings.TrimSpace(sanitizeText(text)))
	}
	return strings.Join(blocks, "\n\n")
}

// sanitizeText drops NUL and other control characters that are not
// whitespace, and replaces invalid UTF-8 sequences.
func sanitizeText(text string) string {
	text = strings.ToValidUTF8(text, "�")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == 0x09 || r == 0x0A || r == 0x0D {
			result.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7F {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
