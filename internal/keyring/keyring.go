// Package keyring keeps remote-medium connection strings in the OS keyring so
// they never appear on the command line or in shell history.
package keyring

import (
	"errors"
	"fmt"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/lifeos/internal/constants"
)

var (
	// ErrNotFound is returned when nothing is stored under the entry.
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable wraps any other backend failure.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Entry addresses one secret in the OS keyring.
type Entry struct {
	Service string
	User    string
}

// ConnectionEntry holds the durable medium connection string.
var ConnectionEntry = Entry{Service: constants.AppName, User: constants.DefaultKeyringUser}

func (e Entry) Get() (string, error) {
	v, err := gokeyring.Get(e.Service, e.User)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func (e Entry) Set(secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := gokeyring.Set(e.Service, e.User, secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (e Entry) Delete() error {
	err := gokeyring.Delete(e.Service, e.User)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetConnectionString returns the stored medium connection string.
func GetConnectionString() (string, error) { return ConnectionEntry.Get() }

func SetConnectionString(connStr string) error { return ConnectionEntry.Set(connStr) }

func DeleteConnectionString() error { return ConnectionEntry.Delete() }

// IsAvailable probes the backend with a read of an unused entry.
func IsAvailable() bool {
	_, err := Entry{Service: constants.AppName, User: "availability-probe"}.Get()
	return err == nil || errors.Is(err, ErrNotFound)
}
