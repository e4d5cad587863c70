package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// ErrFull is returned when the registry is at capacity.
var ErrFull = errors.New("session: too many active sessions")

// Info is a point-in-time view of a registered session.
type Info struct {
	ID      ID
	User    string
	Score   int
	Lives   int
	Started time.Time
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	limit    int
	sessions map[ID]*Session
}

// NewRegistry creates a registry holding at most limit sessions.
// A limit below 1 means unlimited.
func NewRegistry(limit int) *Registry {
	return &Registry{
		limit:    limit,
		sessions: make(map[ID]*Session),
	}
}

// Register adds a session to the registry.
func (r *Registry) Register(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID()]; exists {
		return fmt.Errorf("session: %q already registered", s.ID())
	}
	if r.limit > 0 && len(r.sessions) >= r.limit {
		return ErrFull
	}
	r.sessions[s.ID()] = s
	return nil
}

// Unregister removes a session from the registry.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all sessions, oldest first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		result = append(result, Info{
			ID:      s.ID(),
			User:    s.User(),
			Score:   s.Score(),
			Lives:   s.Lives(),
			Started: s.Started(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Started.Equal(result[j].Started) {
			return result[i].ID < result[j].ID
		}
		return result[i].Started.Before(result[j].Started)
	})

	return result
}
