package session

import (
	"context"
	"sync"
)

// MemoryStore est l'implémentation en mémoire de Store, utilisée par les
// tests et en développement local sans Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Payload
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Payload)}
}

func (s *MemoryStore) Set(_ context.Context, token string, payload Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = payload
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Payload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.sessions[token]
	if !ok {
		return Payload{}, ErrNotFound
	}
	return payload, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len retourne le nombre de sessions vivantes
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
