package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	conv     *Conversation
	lastSeen time.Time
}

// Manager maps session ids to their conversations. Sessions idle for longer
// than the TTL are dropped by the janitor.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session's conversation, creating it on first access.
func (m *Manager) Get(id uuid.UUID) *Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		e = &entry{conv: NewConversation()}
		m.sessions[id] = e
	}
	e.lastSeen = m.now()
	return e.conv
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes idle sessions and reports how many were dropped.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Start runs the janitor until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	interval := m.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := m.Sweep(); n > 0 {
					log.Printf("Evicted %d idle sessions (%d active)", n, m.Len())
				}
			}
		}
	}()
}
