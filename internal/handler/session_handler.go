package handler

import (
	"encoding/json"
	"net/http"

	"pdf-md-translator/internal/domain"

	"github.com/gorilla/mux"
)

// SessionHandler manages session lifecycle and credentials
type SessionHandler struct {
	sessions domain.SessionRepository
	seed     map[domain.ProviderKind]string
	logger   domain.Logger
}

// NewSessionHandler creates a new session handler. seed keys are copied into
// every new session.
func NewSessionHandler(sessions domain.SessionRepository, seed map[domain.ProviderKind]string, logger domain.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		seed:     seed,
		logger:   logger,
	}
}

type credentialRequest struct {
	APIKey string `json:"api_key"`
}

// CreateSession starts a new session and sets the session cookie
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Create(h.seed)
	if err != nil {
		h.logger.Error("Failed to create session", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	writeJSON(w, http.StatusCreated, session.View())
}

// GetSession returns the current session view
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}
	writeJSON(w, http.StatusOK, session.View())
}

// DeleteSession ends the session and discards its state
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}
	_ = h.sessions.Delete(session.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// SetCredential stores the API key of one provider
func (h *SessionHandler) SetCredential(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	kind, ok := domain.ParseProviderKind(mux.Vars(r)["provider"])
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown provider")
		return
	}

	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !session.SetCredential(kind, req.APIKey) {
		writeError(w, http.StatusBadRequest, "api_key cannot be empty")
		return
	}

	h.logger.Info("Credential saved", "session_id", session.ID, "provider", kind)
	writeJSON(w, http.StatusOK, session.View())
}

// ResetCredential forgets the API key of one provider
func (h *SessionHandler) ResetCredential(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Session not found in context")
		return
	}

	kind, ok := domain.ParseProviderKind(mux.Vars(r)["provider"])
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown provider")
		return
	}

	session.ResetCredential(kind)
	h.logger.Info("Credential reset", "session_id", session.ID, "provider", kind)
	writeJSON(w, http.StatusOK, session.View())
}
