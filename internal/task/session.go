package task

import (
	"sync"
	"time"

	"github.com/google/uuid"

	dErrors "uxstudy/pkg/domain-errors"
)

// TimerSession scopes one task timing run. It is created explicitly on
// start, updated on stop, and cleared when the task result that references it
// is saved.
type TimerSession struct {
	ID        string     `json:"session_id"`
	StartedAt time.Time  `json:"started_at"`
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
}

// Elapsed returns the measured duration in seconds, false while the timer is
// still running.
func (s TimerSession) Elapsed() (float64, bool) {
	if s.StoppedAt == nil {
		return 0, false
	}
	return s.StoppedAt.Sub(s.StartedAt).Seconds(), true
}

// ErrSessionNotFound is returned for timer operations against unknown or
// already-consumed sessions.
var ErrSessionNotFound = dErrors.New(dErrors.CodeNotFound, "timer session not found")

// InMemorySessionStore holds active timer sessions. Sessions are transient by
// design; restarting the server discards running timers but never persisted
// rows.
type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]TimerSession
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]TimerSession)}
}

// Start creates a new session stamped with now.
func (s *InMemorySessionStore) Start(now time.Time) TimerSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := TimerSession{ID: uuid.NewString(), StartedAt: now}
	s.sessions[session.ID] = session
	return session
}

// Stop records the stop time on an existing session. Stopping again re-stops
// from the same start.
func (s *InMemorySessionStore) Stop(id string, now time.Time) (TimerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return TimerSession{}, ErrSessionNotFound
	}
	session.StoppedAt = &now
	s.sessions[id] = session
	return session, nil
}

// Get looks up a session without consuming it.
func (s *InMemorySessionStore) Get(id string) (TimerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return TimerSession{}, ErrSessionNotFound
	}
	return session, nil
}

// Clear removes a session once its task result is saved.
func (s *InMemorySessionStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
