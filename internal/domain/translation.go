package domain

import "strings"

// ProviderKind names a translation backend
type ProviderKind string

const (
	ProviderDeepL ProviderKind = "deepl"
	ProviderLLM   ProviderKind = "llm"
)

// SourceLanguage is the language documents are assumed to be written in.
const SourceLanguage = "English"

// ParseProviderKind maps user input to a ProviderKind.
func ParseProviderKind(s string) (ProviderKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deepl":
		return ProviderDeepL, true
	case "llm", "openai", "o3-mini":
		return ProviderLLM, true
	default:
		return "", false
	}
}

// TranslationRequest is one translate action
type TranslationRequest struct {
	Markdown       string       `json:"-"`
	TargetLanguage string       `json:"target_language"`
	Provider       ProviderKind `json:"provider"`
}

// TranslationResult is the outcome of a translate action
type TranslationResult struct {
	Text           string       `json:"text"`
	TargetLanguage string       `json:"target_language"`
	Provider       ProviderKind `json:"provider"`
	NoOp           bool         `json:"no_op"`
}
