package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/julianstephens/lifeos/internal/storage"
)

const (
	opTimeout = 3 * time.Second
	scanCount = 100
)

// IsConnString reports whether s is a Redis URL.
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "redis://") || strings.HasPrefix(s, "rediss://")
}

// HasEmbeddedPassword reports whether a Redis URL carries a password.
func HasEmbeddedPassword(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.User == nil {
		return false
	}
	_, ok := u.User.Password()
	return ok
}

// Store keeps one Redis string per key.
type Store struct {
	url    string
	opts   *goredis.Options
	client *goredis.Client
}

func New(url string) *Store {
	return &Store{url: url}
}

// NewWithOptions builds a store from explicit client options.
func NewWithOptions(opts *goredis.Options) *Store {
	return &Store{opts: opts}
}

func (s *Store) connect() error {
	if s.client != nil {
		return nil
	}
	opts := s.opts
	if opts == nil {
		parsed, err := goredis.ParseURL(s.url)
		if err != nil {
			return fmt.Errorf("invalid redis connection string: %w", err)
		}
		opts = parsed
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = opTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = opTimeout
	}

	client := goredis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	s.client = client
	return nil
}

// Init and Load both only connect; Redis needs no schema.
func (s *Store) Init() error { return s.connect() }

func (s *Store) Load() error { return s.connect() }

func (s *Store) Close() error {
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

func (s *Store) ctx() (context.Context, context.CancelFunc, error) {
	if s.client == nil {
		return nil, nil, fmt.Errorf("storage not loaded")
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	return ctx, cancel, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	ctx, cancel, err := s.ctx()
	if err != nil {
		return "", false, err
	}
	defer cancel()

	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Set(key, value string) error {
	ctx, cancel, err := s.ctx()
	if err != nil {
		return err
	}
	defer cancel()
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *Store) Delete(key string) error {
	ctx, cancel, err := s.ctx()
	if err != nil {
		return err
	}
	defer cancel()
	return s.client.Del(ctx, key).Err()
}

// Keys walks the keyspace with SCAN so large databases are never blocked.
func (s *Store) Keys(prefix string) ([]string, error) {
	ctx, cancel, err := s.ctx()
	if err != nil {
		return nil, err
	}
	defer cancel()

	match := escapeGlob(prefix) + "*"
	seen := make(map[string]struct{})
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, scanCount).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			seen[k] = struct{}{}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) Clear(prefix string) error {
	keys, err := s.Keys(prefix)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel, err := s.ctx()
	if err != nil {
		return err
	}
	defer cancel()
	return s.client.Del(ctx, keys...).Err()
}

func (s *Store) GetConfigPath() string {
	return "redis"
}

func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

var _ storage.Provider = (*Store)(nil)
