package memory

import (
	"context"
	"sync"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
)

// Storage keeps snapshots in process memory. Contents are lost on restart.
type Storage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewStorage() *Storage {
	return &Storage{items: make(map[string]string)}
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return "", domcart.ErrStorageItemNotFound
	}
	return v, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}
