package domain

import (
	"strings"
	"sync"
	"time"
)

// SessionState is the position of a session in the convert/translate flow
type SessionState string

const (
	SessionIdle           SessionState = "idle"
	SessionHasMarkdown    SessionState = "has_markdown"
	SessionHasTranslation SessionState = "has_translation"
)

// Session holds the state of one interactive user session. Nothing in it is
// persisted; it lives until it is deleted or expires.
type Session struct {
	ID        string
	CreatedAt time.Time

	// action serializes convert/translate calls of one user.
	action sync.Mutex

	mu          sync.Mutex
	lastSeen    time.Time
	credentials map[ProviderKind]string
	markdown    *MarkdownDocument
	note        string
	translation *TranslationResult
}

// SessionView is the JSON-safe projection of a session. Keys are never included.
type SessionView struct {
	ID             string                `json:"session_id"`
	State          SessionState          `json:"state"`
	Credentials    map[ProviderKind]bool `json:"credentials"`
	Markdown       *MarkdownDocument     `json:"document,omitempty"`
	Note           string                `json:"note,omitempty"`
	Translation    *TranslationResult    `json:"translation,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	LastActivityAt time.Time             `json:"last_activity_at"`
}

// NewSession creates an idle session
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   now,
		lastSeen:    now,
		credentials: make(map[ProviderKind]string),
	}
}

// BeginAction blocks until no other action of this session runs and returns
// the function that ends the action.
func (s *Session) BeginAction() func() {
	s.action.Lock()
	return s.action.Unlock
}

// Touch records activity at now
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last recorded activity
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SetCredential stores a trimmed API key. Empty keys are rejected.
func (s *Session) SetCredential(kind ProviderKind, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	s.mu.Lock()
	s.credentials[kind] = key
	s.mu.Unlock()
	return true
}

// ResetCredential forgets the key of one provider
func (s *Session) ResetCredential(kind ProviderKind) {
	s.mu.Lock()
	delete(s.credentials, kind)
	s.mu.Unlock()
}

// HasCredential reports whether a key is set for the provider
func (s *Session) HasCredential(kind ProviderKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.credentials[kind]
	return ok
}

// Credentials returns a copy of the stored keys
func (s *Session) Credentials() map[ProviderKind]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[ProviderKind]string, len(s.credentials))
	for k, v := range s.credentials {
		out[k] = v
	}
	return out
}

// SetMarkdown replaces the converted document. Any earlier translation no
// longer matches the document and is dropped.
func (s *Session) SetMarkdown(doc *MarkdownDocument, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.IsEmpty() {
		s.markdown = nil
	} else {
		s.markdown = doc
	}
	s.note = note
	s.translation = nil
}

// Markdown returns the current document or nil
func (s *Session) Markdown() *MarkdownDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markdown
}

// SetTranslation records the result of the most recent translate action
func (s *Session) SetTranslation(r *TranslationResult) {
	s.mu.Lock()
	s.translation = r
	s.mu.Unlock()
}

// Translation returns the most recent translation or nil
func (s *Session) Translation() *TranslationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translation
}

// State derives the flow state from the stored results
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() SessionState {
	switch {
	case s.markdown == nil:
		return SessionIdle
	case s.translation == nil:
		return SessionHasMarkdown
	default:
		return SessionHasTranslation
	}
}

// View returns a snapshot safe to send to clients
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds := map[ProviderKind]bool{
		ProviderDeepL: false,
		ProviderLLM:   false,
	}
	for k := range s.credentials {
		creds[k] = true
	}
	return SessionView{
		ID:             s.ID,
		State:          s.stateLocked(),
		Credentials:    creds,
		Markdown:       s.markdown,
		Note:           s.note,
		Translation:    s.translation,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.lastSeen,
	}
}
