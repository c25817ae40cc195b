package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ChatModel is the part of a langchaingo model the LLM provider needs
type ChatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// LLMProvider translates by prompting a chat completion model
type LLMProvider struct {
	model     ChatModel
	modelName string
	logger    domain.Logger
}

// NewLLMProvider wraps an existing chat model
func NewLLMProvider(model ChatModel, modelName string, logger domain.Logger) *LLMProvider {
	return &LLMProvider{
		model:     model,
		modelName: modelName,
		logger:    logger,
	}
}

// NewOpenAIProvider creates an LLM provider on an OpenAI-compatible API.
// baseURL may be empty for the public endpoint.
func NewOpenAIProvider(apiKey, modelName, baseURL string, logger domain.Logger) (*LLMProvider, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
		openai.WithHTTPClient(&systemRoleDoer{next: http.DefaultClient}),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return NewLLMProvider(llm, modelName, logger), nil
}

// TranslationInstruction is the system message for a target language
func TranslationInstruction(targetLanguage string) string {
	return fmt.Sprintf(
		"Translate the following Markdown into %s, preserving all headings and formatting. "+
			"Respond ONLY with the translation, without any commentary.",
		targetLanguage,
	)
}

// Translate sends the instruction and the Markdown as two messages and
// returns the trimmed completion.
func (p *LLMProvider) Translate(ctx context.Context, text string, targetLanguage string) (string, error) {
	instruction := TranslationInstruction(targetLanguage)
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, instruction),
		llms.TextParts(llms.ChatMessageTypeHuman, text),
	}

	ctx = context.WithValue(ctx, chatTurnsKey{}, chatTurns{
		System: instruction,
		User:   text,
	})
	resp, err := p.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", apperrors.NewProviderError(fmt.Sprintf("%s translation error", p.modelName), 0, err.Error(), err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", apperrors.NewProviderError(fmt.Sprintf("%s returned no choices", p.modelName), 0, "", nil)
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

type chatTurnsKey struct{}

// chatTurns is the system/user pair one translation sends on the wire
type chatTurns struct {
	System string
	User   string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemRoleDoer rewrites chat completion bodies so the instruction always
// travels as its own system message. langchaingo folds system messages into
// the first user message for o1/o3 models.
type systemRoleDoer struct {
	next *http.Client
}

func (d *systemRoleDoer) Do(req *http.Request) (*http.Response, error) {
	turns, ok := req.Context().Value(chatTurnsKey{}).(chatTurns)
	if !ok || req.Body == nil || !strings.HasSuffix(req.URL.Path, "/chat/completions") {
		return d.next.Do(req)
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat request: %w", err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		messages, err := json.Marshal([]chatMessage{
			{Role: "system", Content: turns.System},
			{Role: "user", Content: turns.User},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode chat messages: %w", err)
		}
		payload["messages"] = messages
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("failed to encode chat request: %w", err)
		}
	}

	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return d.next.Do(req)
}
