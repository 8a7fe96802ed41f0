package userdata

import (
	"context"
	"sync"
)

// Store persists a single user record.
type Store interface {
	// Load returns the stored record, or nil and no error when nothing is stored.
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, r Record) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the encoded record in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, nil
	}
	return decode(s.data)
}

func (s *MemoryStore) Save(ctx context.Context, r Record) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
