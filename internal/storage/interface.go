package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/constants"
)

// ErrNotInitialized is returned by Load when the medium has never been created.
var ErrNotInitialized = fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)

// ErrUnavailable is returned by every call on a medium that cannot be used in
// the current context.
var ErrUnavailable = errors.New("durable medium unavailable")

// Provider is a durable string-keyed medium. Values are opaque strings; the
// keyed store layered above it owns serialization.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists every key starting with prefix, sorted.
	Keys(prefix string) ([]string, error)
	// Clear removes every key starting with prefix.
	Clear(prefix string) error

	// Utils
	GetConfigPath() string
}

// LikePrefix returns a LIKE pattern matching every string that starts with
// prefix. The pattern uses '\' as its escape character.
func LikePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
