package service

import (
	"fmt"
	"strings"

	"pdf-md-translator/internal/domain"
)

const (
	PageSourceFitz   = "fitz"
	PageSourceNative = "native"
)

// NewPageSource returns the PDF backend registered under name
func NewPageSource(name string, logger domain.Logger) (domain.PageSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PageSourceFitz:
		return newFitzPageSource(logger), nil
	case PageSourceNative, "":
		return NewNativePageSource(logger), nil
	default:
		return nil, fmt.Errorf("unknown pdf backend %q (want %s or %s)", name, PageSourceFitz, PageSourceNative)
	}
}
