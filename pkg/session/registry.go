package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pokermind/pkg/deck"
)

// Registry keeps open sessions in memory
type Registry struct {
	sessions map[uuid.UUID]*Session
	limit    int
	logger   logrus.FieldLogger

	mu sync.RWMutex
}

// NewRegistry returns a registry that holds at most limit sessions (no limit if limit <= 0)
func NewRegistry(logger logrus.FieldLogger, limit int) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		limit:    limit,
		logger:   logger,
	}
}

// Create starts a new session and stores it
func (r *Registry) Create(hole deck.Hand, opponents int) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.sessions) >= r.limit {
		return nil, ErrRegistryFull
	}

	s, err := New(r.logger, hole, opponents)
	if err != nil {
		return nil, err
	}

	r.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with the given ID
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s, nil
}

// Delete removes a session
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}

	delete(r.sessions, id)
	r.logger.WithField("session", id.String()).Debug("session deleted")
	return nil
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
