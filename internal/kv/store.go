// Package kv is the persistent keyed store every feature reads and writes
// through. Values are JSON documents under namespaced keys in a durable
// medium, with an in-memory copy per key that is always authoritative for the
// running process.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/storage"
)

// ErrNoMedium is reported when the store was built without a medium.
var ErrNoMedium = errors.New("no durable medium")

type Store struct {
	mu     sync.Mutex
	medium storage.Provider
	cache  map[string]any
}

// New wraps medium. A nil medium yields a store that keeps values in memory
// only.
func New(medium storage.Provider) *Store {
	return &Store{
		medium: medium,
		cache:  make(map[string]any),
	}
}

// Medium returns the underlying provider, or nil.
func (s *Store) Medium() storage.Provider {
	return s.medium
}

func namespaced(key string) string {
	return constants.KeyPrefix + key
}

// load returns the current value for key, fetching and decoding it on first
// access. Callers must hold s.mu.
func load[T any](s *Store, key string, def func() T, normalize func(T) T) T {
	if v, ok := s.cache[key]; ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}

	value := fetch(s, key, def)
	if normalize != nil {
		value = normalize(value)
	}
	s.cache[key] = value
	return value
}

func fetch[T any](s *Store, key string, def func() T) T {
	if s.medium == nil {
		return def()
	}

	raw, ok, err := s.medium.Get(namespaced(key))
	if err != nil {
		logger.StorageFault("read", key, err)
		return def()
	}
	if !ok {
		return def()
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		logger.StorageFault("decode", key, err)
		return def()
	}
	return decoded
}

// store replaces the in-memory value and then persists it. Persistence
// failures are logged; the in-memory value stands. Callers must hold s.mu.
func store[T any](s *Store, key string, value T) {
	s.cache[key] = value

	if s.medium == nil {
		logger.StorageFault("write", key, ErrNoMedium)
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.StorageFault("encode", key, err)
		return
	}
	if err := s.medium.Set(namespaced(key), string(data)); err != nil {
		logger.StorageFault("write", key, err)
	}
}

// Read returns the value stored under key, or def() when it is absent or
// unreadable. A fetched value passes through normalize when it is non-nil.
// Nothing is written on a miss.
func Read[T any](s *Store, key string, def func() T, normalize func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, key, def, normalize)
}

// Write replaces the value under key and returns it.
func Write[T any](s *Store, key string, value T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	store(s, key, value)
	return value
}

// Update computes a new value from the latest in-memory one and stores it.
// fn must not mutate its argument in place; it returns the replacement.
func Update[T any](s *Store, key string, def func() T, normalize func(T) T, fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(load(s, key, def, normalize))
	store(s, key, next)
	return next
}

// Wipe removes every namespaced key from the medium and drops all in-memory
// values, so the next read of any key starts from the medium again.
func (s *Store) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = make(map[string]any)
	if s.medium == nil {
		return nil
	}
	if err := s.medium.Clear(constants.KeyPrefix); err != nil {
		logger.StorageFault("clear", constants.KeyPrefix+"*", err)
		return fmt.Errorf("failed to clear stored data: %w", err)
	}
	return nil
}

// Reload drops the in-memory values without touching the medium.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]any)
}

// StoredKeys lists the logical keys currently present in the medium.
func (s *Store) StoredKeys() ([]string, error) {
	if s.medium == nil {
		return nil, ErrNoMedium
	}
	keys, err := s.medium.Keys(constants.KeyPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k[len(constants.KeyPrefix):])
	}
	return out, nil
}
