package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemorySessionStore keeps sessions in process memory.
// Sessions do not survive a restart and are not shared between replicas.
type MemorySessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// Ensure MemorySessionStore implements SessionStore
var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	cleanUpInterval := ttl
	if cleanUpInterval < time.Minute {
		cleanUpInterval = time.Minute
	}
	c := cache.New(ttl, cleanUpInterval)
	return &MemorySessionStore{cache: c, ttl: ttl}
}

func (s *MemorySessionStore) Load(ctx context.Context, id string, dest any) (bool, error) {
	val, found := s.cache.Get(id)
	if !found {
		return false, nil
	}

	data, ok := val.([]byte)
	if !ok {
		return false, fmt.Errorf("session %s: unexpected cached type %T", id, val)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return true, nil
}

// Save stores a JSON copy so later mutations of value are not visible to readers
func (s *MemorySessionStore) Save(ctx context.Context, id string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	s.cache.Set(id, data, s.ttl)
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Ping always succeeds for the in-memory store
func (s *MemorySessionStore) Ping(ctx context.Context) error {
	return nil
}

// Close flushes all sessions
func (s *MemorySessionStore) Close() error {
	s.cache.Flush()
	return nil
}
