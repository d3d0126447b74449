package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session resume records in process memory. It is the
// default for local development where no Redis is running; records do not
// survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	record    *ResumeRecord
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store with the given TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		records: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get retrieves the session's resume record
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*ResumeRecord, error) {
	s.mu.RLock()
	entry, ok := s.records[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.records, sessionID)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return entry.record, nil
}

// Set stores the session's resume record, replacing any previous one
func (s *MemoryStore) Set(ctx context.Context, sessionID string, record *ResumeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = memoryEntry{
		record:    record,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Clear removes the session's resume record
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close releases the store's records
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]memoryEntry)
	return nil
}
