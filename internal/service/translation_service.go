package service

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"

	"golang.org/x/text/cases"
)

var providerLabels = map[domain.ProviderKind]string{
	domain.ProviderDeepL: "DeepL",
	domain.ProviderLLM:   "OpenAI",
}

// TranslationService dispatches translate actions to the registered providers
type TranslationService struct {
	factories map[domain.ProviderKind]domain.TranslatorFactory
	logger    domain.Logger
}

// NewTranslationService creates a dispatcher over factories
func NewTranslationService(factories map[domain.ProviderKind]domain.TranslatorFactory, logger domain.Logger) *TranslationService {
	return &TranslationService{
		factories: factories,
		logger:    logger,
	}
}

// DefaultFactories registers the DeepL and OpenAI providers from cfg
func DefaultFactories(cfg domain.Config, client *http.Client, logger domain.Logger) map[domain.ProviderKind]domain.TranslatorFactory {
	return map[domain.ProviderKind]domain.TranslatorFactory{
		domain.ProviderDeepL: func(apiKey string) (domain.Translator, error) {
			return NewDeepLProvider(cfg.GetDeepLURL(), apiKey, client, logger), nil
		},
		domain.ProviderLLM: func(apiKey string) (domain.Translator, error) {
			provider, err := NewOpenAIProvider(apiKey, cfg.GetLLMModel(), cfg.GetLLMBaseURL(), logger)
			if err != nil {
				return nil, err
			}
			return provider, nil
		},
	}
}

// Providers lists the registered provider kinds in sorted order
func (s *TranslationService) Providers() []domain.ProviderKind {
	kinds := make([]domain.ProviderKind, 0, len(s.factories))
	for k := range s.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// NormalizeLanguage collapses whitespace in a language name. Names from the
// selectable list match case-insensitively and come back in their listed
// spelling; free-text names are returned as typed.
func NormalizeLanguage(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	fold := cases.Fold()
	key := fold.String(name)
	for _, known := range domain.SelectableLanguages() {
		if fold.String(known) == key {
			return known
		}
	}
	return name
}

// ProviderLabel returns the user-facing name of a provider
func ProviderLabel(kind domain.ProviderKind) string {
	if label, ok := providerLabels[kind]; ok {
		return label
	}
	return string(kind)
}

// Translate runs one translate action. A target equal to the source language
// returns a no-op result without contacting any provider.
func (s *TranslationService) Translate(ctx context.Context, req domain.TranslationRequest, credentials map[domain.ProviderKind]string) (*domain.TranslationResult, error) {
	if strings.TrimSpace(req.Markdown) == "" {
		return nil, apperrors.NewPreconditionError("Run analysis/conversion first.")
	}

	target := NormalizeLanguage(req.TargetLanguage)
	if target == "" {
		return nil, apperrors.NewValidationError("target_language is required")
	}
	if target == domain.SourceLanguage {
		return &domain.TranslationResult{
			TargetLanguage: target,
			Provider:       req.Provider,
			NoOp:           true,
		}, nil
	}

	factory, ok := s.factories[req.Provider]
	if !ok {
		return nil, apperrors.NewValidationError("unknown translation provider", string(req.Provider))
	}

	apiKey := credentials[req.Provider]
	if apiKey == "" {
		return nil, apperrors.NewMissingCredentialError("Add " + ProviderLabel(req.Provider) + " key for translation.")
	}

	translator, err := factory(apiKey)
	if err != nil {
		s.logger.Error("Translation provider unavailable", err, "provider", req.Provider)
		return nil, apperrors.NewProviderError(ProviderLabel(req.Provider)+" provider is unavailable", 0, "", err)
	}

	started := time.Now()
	text, err := translator.Translate(ctx, req.Markdown, target)
	if err != nil {
		s.logger.Error("Translation failed", err, "provider", req.Provider, "target", target)
		return nil, err
	}

	s.logger.Info("Markdown translated",
		"provider", req.Provider,
		"target", target,
		"source_chars", len(req.Markdown),
		"chars", len(text),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return &domain.TranslationResult{
		Text:           text,
		TargetLanguage: target,
		Provider:       req.Provider,
	}, nil
}
