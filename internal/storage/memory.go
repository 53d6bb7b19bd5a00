package storage

import (
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps values in process memory. It is used for tests and for
// the "memory:" config value.
type MemoryStore struct {
	mu          sync.RWMutex
	data        map[string]string
	unavailable bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Unavailable returns a provider that fails every operation.
func Unavailable() *MemoryStore {
	return &MemoryStore{data: make(map[string]string), unavailable: true}
}

func (s *MemoryStore) Init() error {
	if s.unavailable {
		return ErrUnavailable
	}
	return nil
}

func (s *MemoryStore) Load() error { return s.Init() }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(key string) (string, bool, error) {
	if s.unavailable {
		return "", false, ErrUnavailable
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if s.unavailable {
		return ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	if s.unavailable {
		return ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Keys(prefix string) ([]string, error) {
	if s.unavailable {
		return nil, ErrUnavailable
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return matchingKeys(s.data, prefix), nil
}

func (s *MemoryStore) Clear(prefix string) error {
	if s.unavailable {
		return ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range matchingKeys(s.data, prefix) {
		delete(s.data, k)
	}
	return nil
}

func (s *MemoryStore) GetConfigPath() string { return "memory:" }

func matchingKeys(data map[string]string, prefix string) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
