//go:build !cgo

package service

import (
	"context"
	"errors"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"
)

var errFitzNotBuilt = errors.New("binary built without cgo; MuPDF backend is not available")

// unavailablePageSource stands in for a backend missing from this build
type unavailablePageSource struct {
	name   string
	reason error
}

func newFitzPageSource(logger domain.Logger) domain.PageSource {
	logger.Warn("PDF backend unavailable", "backend", PageSourceFitz, "reason", errFitzNotBuilt)
	return &unavailablePageSource{name: PageSourceFitz, reason: errFitzNotBuilt}
}

func (s *unavailablePageSource) Name() string {
	return s.name
}

func (s *unavailablePageSource) Pages(ctx context.Context, pdfBytes []byte) ([]string, error) {
	return nil, apperrors.NewParseUnavailableError("PDF parser "+s.name+" is not available", s.reason)
}
