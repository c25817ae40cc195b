package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"
)

// DeepLTimeout bounds one call to the dedicated translation API
const DeepLTimeout = 30 * time.Second

const maxProviderBody = 10 << 20

// DeepLProvider translates through the DeepL REST API
type DeepLProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   domain.Logger
}

// NewDeepLProvider creates a provider for endpoint. A nil client gets a
// client with DeepLTimeout.
func NewDeepLProvider(endpoint, apiKey string, client *http.Client, logger domain.Logger) *DeepLProvider {
	if client == nil {
		client = &http.Client{Timeout: DeepLTimeout}
	}
	return &DeepLProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
		logger:   logger,
	}
}

type deepLResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// Translate sends text with the two-letter code of targetLanguage and returns
// the first translation verbatim.
func (p *DeepLProvider) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	code, ok := domain.LanguageCode(targetLanguage)
	if !ok {
		return "", apperrors.NewUnsupportedLanguageError(targetLanguage)
	}

	form := url.Values{
		"auth_key":    {p.apiKey},
		"text":        {text},
		"target_lang": {code},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.NewInternalError("failed to build DeepL request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", apperrors.NewTransportError("DeepL request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderBody))
	if err != nil {
		return "", apperrors.NewTransportError("DeepL response could not be read", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("DeepL returned non-success status", "status", resp.StatusCode, "target_lang", code)
		return "", apperrors.NewProviderError(
			fmt.Sprintf("DeepL error %d", resp.StatusCode),
			resp.StatusCode,
			strings.TrimSpace(string(body)),
			nil,
		)
	}

	var payload deepLResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", apperrors.NewProviderError("DeepL returned an invalid response", resp.StatusCode, string(body), err)
	}
	if len(payload.Translations) == 0 {
		return "", apperrors.NewProviderError("DeepL returned no translations", resp.StatusCode, string(body), nil)
	}
	return payload.Translations[0].Text, nil
}
