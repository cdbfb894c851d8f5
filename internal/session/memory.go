package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Entries expire lazily:
// expiry is checked at Resolve time, no background sweep runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint, userName string) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{
		session:   Session{UserID: userID, UserName: userName},
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, nil
	}

	session := entry.session
	return &session, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
