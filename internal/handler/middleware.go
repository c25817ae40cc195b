package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pdf-md-translator/internal/domain"
)

// SessionMiddleware resolves the caller's session from header or cookie
type SessionMiddleware struct {
	sessions domain.SessionRepository
	logger   domain.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions domain.SessionRepository, logger domain.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// Middleware rejects requests without a live session
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := sessionIDFromRequest(r)
		if sessionID == "" {
			writeError(w, http.StatusUnauthorized, "Session required")
			return
		}

		session, err := m.sessions.Get(sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				writeError(w, http.StatusUnauthorized, "Session expired")
				return
			}
			writeError(w, http.StatusUnauthorized, "Invalid session")
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

func sessionIDFromRequest(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(started).Milliseconds(),
			)
		})
	}
}
