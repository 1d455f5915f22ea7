package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore is a process-local Store for single-node setups and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return 0, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// Sweep drops every expired binding and reports how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	cutoff := s.now()
	for token, entry := range s.entries {
		if cutoff.After(entry.expiresAt) {
			delete(s.entries, token)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired sessions on an interval until ctx is done.
func (s *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
