package handler

import (
	"encoding/json"
	"net/http"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"
)

// TranslateHandler handles the translate action and language listing
type TranslateHandler struct {
	dispatcher domain.Dispatcher
	renderer   domain.MarkdownRenderer
	logger     domain.Logger
}

// NewTranslateHandler creates a new translate handler
func NewTranslateHandler(dispatcher domain.Dispatcher, renderer domain.MarkdownRenderer, logger domain.Logger) *TranslateHandler {
	return &TranslateHandler{
		dispatcher: dispatcher,
		renderer:   renderer,
		logger:     logger,
	}
}

type translateRequest struct {
	TargetLanguage string `json:"target_language"`
	Provider       string `json:"provider"`
}

type translateResponse struct {
	*domain.TranslationResult
	HTML    string              `json:"html,omitempty"`
	Message string              `json:"message,omitempty"`
	State   domain.SessionState `json:"state"`
}

type languagesResponse struct {
	Languages []string              `json:"languages"`
	Supported []string              `json:"dedicated_api_languages"`
	Providers []domain.ProviderKind `json:"providers"`
}

// Translate translates the session's Markdown. A failed translation leaves
// the Markdown and any earlier translation untouched.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	kind, ok := domain.ParseProviderKind(req.Provider)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown provider")
		return
	}

	end := session.BeginAction()
	defer end()

	doc := session.Markdown()
	if doc.IsEmpty() {
		writeAppError(w, apperrors.NewPreconditionError("Run analysis/conversion first."))
		return
	}

	result, err := h.dispatcher.Translate(r.Context(), domain.TranslationRequest{
		Markdown:       doc.Content,
		TargetLanguage: req.TargetLanguage,
		Provider:       kind,
	}, session.Credentials())
	if err != nil {
		writeAppError(w, err)
		return
	}

	if result.NoOp {
		writeJSON(w, http.StatusOK, translateResponse{
			TranslationResult: result,
			Message:           "Already in English, no translation needed.",
			State:             session.State(),
		})
		return
	}

	session.SetTranslation(result)
	html, err := h.renderer.RenderHTML(result.Text)
	if err != nil {
		h.logger.Warn("Translation preview rendering failed", "error", err, "session_id", session.ID)
	}
	writeJSON(w, http.StatusOK, translateResponse{
		TranslationResult: result,
		HTML:              html,
		State:             session.State(),
	})
}

// Languages lists the selectable target languages and providers
func (h *TranslateHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{
		Languages: domain.SelectableLanguages(),
		Supported: domain.SupportedLanguages(),
		Providers: h.dispatcher.Providers(),
	})
}
