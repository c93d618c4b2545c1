package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevealGrantStore recuerda qué contactos ya fueron revelados a cada usuario
// para no volver a cobrarlos dentro de la ventana de sesión.
type RevealGrantStore interface {
	Grant(userID, providerID string, ttl time.Duration) error
	IsGranted(userID, providerID string) (bool, error)
}

func grantKey(userID, providerID string) string {
	return strings.TrimSpace(userID) + "|" + strings.TrimSpace(providerID)
}

type memoryRevealGrantStore struct {
	mu    sync.Mutex
	items map[string]time.Time
}

func NewMemoryRevealGrantStore() RevealGrantStore {
	return &memoryRevealGrantStore{
		items: make(map[string]time.Time),
	}
}

func (s *memoryRevealGrantStore) Grant(userID, providerID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := grantKey(userID, providerID)
	if key == "|" {
		return nil
	}
	s.items[key] = time.Now().UTC().Add(ttl)
	return nil
}

func (s *memoryRevealGrantStore) IsGranted(userID, providerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[grantKey(userID, providerID)]
	if !ok {
		return false, nil
	}
	if time.Now().UTC().After(exp) {
		delete(s.items, grantKey(userID, providerID))
		return false, nil
	}
	return true, nil
}

type redisRevealGrantStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRevealGrantStore(client *redis.Client) RevealGrantStore {
	if client == nil {
		return nil
	}
	return &redisRevealGrantStore{
		client: client,
		prefix: "reveal:grant:",
	}
}

func (s *redisRevealGrantStore) Grant(userID, providerID string, ttl time.Duration) error {
	key := grantKey(userID, providerID)
	if key == "|" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, "1", ttl).Err()
}

func (s *redisRevealGrantStore) IsGranted(userID, providerID string) (bool, error) {
	key := grantKey(userID, providerID)
	if key == "|" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
