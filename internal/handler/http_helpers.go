package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"pdf-md-translator/internal/domain"
	apperrors "pdf-md-translator/pkg/errors"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookieName is the cookie carrying the session id for browsers
const SessionCookieName = "pdfmd_session"

// SessionHeader carries the session id for API clients
const SessionHeader = "X-Session-ID"

// GetSessionFromContext extracts the resolved session from request context
func GetSessionFromContext(r *http.Request) (*domain.Session, bool) {
	session, ok := r.Context().Value(sessionContextKey).(*domain.Session)
	return session, ok
}

func withSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

type errorResponse struct {
	Error          string `json:"error"`
	Type           string `json:"type,omitempty"`
	Details        string `json:"details,omitempty"`
	ProviderStatus int    `json:"provider_status,omitempty"`
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// writeAppError renders err using its AppError type and status when present
func writeAppError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, appErr.StatusCode, errorResponse{
		Error:          appErr.Message,
		Type:           string(appErr.Type),
		Details:        appErr.Details,
		ProviderStatus: appErr.ProviderStatus,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
