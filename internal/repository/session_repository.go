package repository

import (
	"context"
	"sync"
	"time"

	"pdf-md-translator/internal/domain"

	"github.com/google/uuid"
)

// MemorySessionRepository keeps sessions in process memory only
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time
	logger   domain.Logger
}

// NewMemorySessionRepository creates an empty store whose sessions expire
// after ttl without activity
func NewMemorySessionRepository(ttl time.Duration, logger domain.Logger) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Create starts a session, pre-seeded with the given keys
func (r *MemorySessionRepository) Create(seed map[domain.ProviderKind]string) (*domain.Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(id.String(), r.now())
	for kind, key := range seed {
		session.SetCredential(kind, key)
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	r.logger.Debug("Session created", "session_id", session.ID, "seeded", len(seed))
	return session, nil
}

// Get returns a live session and records activity on it
func (r *MemorySessionRepository) Get(sessionID string) (*domain.Session, error) {
	now := r.now()

	r.mu.Lock()
	session, ok := r.sessions[sessionID]
	if ok && r.expired(session, now) {
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return nil, domain.ErrSessionExpired
	}
	r.mu.Unlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	session.Touch(now)
	return session, nil
}

// Delete ends a session and drops all of its state
func (r *MemorySessionRepository) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

// Sweep removes every session idle for longer than the ttl and returns how
// many were removed
func (r *MemorySessionRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, session := range r.sessions {
		if r.expired(session, now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored sessions
func (r *MemorySessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done
func (r *MemorySessionRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Sweep(now); n > 0 {
				r.logger.Info("Expired sessions removed", "count", n, "remaining", r.Count())
			}
		}
	}
}

func (r *MemorySessionRepository) expired(session *domain.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(session.LastSeen()) > r.ttl
}
