package domain

import (
	"context"
	"time"
)

// PageSource turns raw PDF bytes into ordered page texts (index 0 is page 1).
type PageSource interface {
	Pages(ctx context.Context, pdfBytes []byte) ([]string, error)
	Name() string
}

// Converter defines the PDF to Markdown operation
type Converter interface {
	Convert(ctx context.Context, pdfBytes []byte, sourceName string) (*MarkdownDocument, error)
}

// Translator is a single translation backend
type Translator interface {
	Translate(ctx context.Context, text string, targetLanguage string) (string, error)
}

// TranslatorFactory builds a Translator bound to one API key
type TranslatorFactory func(apiKey string) (Translator, error)

// Dispatcher selects a translation backend for a request
type Dispatcher interface {
	Translate(ctx context.Context, req TranslationRequest, credentials map[ProviderKind]string) (*TranslationResult, error)
	Providers() []ProviderKind
}

// MarkdownRenderer renders Markdown to HTML for display
type MarkdownRenderer interface {
	RenderHTML(markdown string) (string, error)
}

// SessionRepository defines the interface for session state storage
type SessionRepository interface {
	Create(seed map[ProviderKind]string) (*Session, error)
	Get(sessionID string) (*Session, error)
	Delete(sessionID string) error
	Sweep(now time.Time) int
	Count() int
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetPDFBackend() string
	GetDeepLURL() string
	GetLLMModel() string
	GetLLMBaseURL() string
	GetSessionTTL() time.Duration
	GetAllowedOrigins() []string
	GetSeedCredentials() map[ProviderKind]string
}
