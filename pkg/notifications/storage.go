package notifications

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// Storage keeps the notifications currently on screen.
type Storage interface {
	Create(ctx context.Context, n Notification) error
	Get(ctx context.Context, id string) (Notification, error)
	// List returns notifications oldest first.
	List(ctx context.Context) ([]Notification, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStorage is an in-memory Storage.
type MemoryStorage struct {
	mu    sync.RWMutex
	items []Notification
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Create(ctx context.Context, n Notification) error {
	if n.ID == "" {
		return errors.New("notification ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, n)
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, id string) (Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.items {
		if n.ID == id {
			return n, nil
		}
	}
	return Notification{}, ErrNotificationNotFound
}

func (s *MemoryStorage) List(ctx context.Context) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *MemoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return ErrNotificationNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}
