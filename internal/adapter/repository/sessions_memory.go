package repository

import (
	"context"
	"fmt"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// SessionsMemory keeps sessions in process memory. Sessions live as long as
// the process; nothing is written to disk.
type SessionsMemory struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

func NewSessionsMemory() *SessionsMemory {
	return &SessionsMemory{sessions: map[uuid.UUID]*domain.Session{}}
}

func (m *SessionsMemory) Create(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	stored := s.Clone()
	m.sessions[s.ID] = &stored
	return nil
}

func (m *SessionsMemory) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	out := s.Clone()
	return &out, nil
}

// Update runs fn on a copy of the session under the store lock and swaps the
// copy in when fn returns nil.
func (m *SessionsMemory) Update(_ context.Context, id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	next := s.Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	m.sessions[id] = &next

	out := next.Clone()
	return &out, nil
}

func (m *SessionsMemory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are held.
func (m *SessionsMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
