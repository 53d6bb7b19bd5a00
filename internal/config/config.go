// Package config decides which durable medium LifeOS opens. A --config flag
// wins; otherwise LIFEOS_DB_CONNECTION from the environment or the .env file
// in the config directory; otherwise the OS keyring; otherwise the default
// SQLite file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/keyring"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/storage"
	"github.com/julianstephens/lifeos/internal/storage/postgres"
	"github.com/julianstephens/lifeos/internal/storage/redis"
	"github.com/julianstephens/lifeos/internal/storage/sqlite"
)

// MemoryConfig selects a throwaway in-process medium.
const MemoryConfig = "memory:"

var ErrInlineCredentials = errors.New("connection strings passed with --config must not embed a password")

type Source int

const (
	SourceDefault Source = iota
	SourceFlag
	SourceEnv
	SourceEnvFile
	SourceKeyring
)

func (s Source) String() string {
	switch s {
	case SourceFlag:
		return "--config flag"
	case SourceEnv:
		return constants.ConnectionEnvVar
	case SourceEnvFile:
		return constants.EnvFileName + " file"
	case SourceKeyring:
		return "OS keyring"
	default:
		return "default"
	}
}

// Resolved is the chosen medium description and where it came from.
type Resolved struct {
	Value  string
	Source Source
}

// Resolver looks up the medium. Zero-valued fields fall back to the process
// environment and the OS keyring.
type Resolver struct {
	ConfigDir string
	Getenv    func(string) string
	Keyring   func() (string, error)
}

// Resolve applies the lookup order to the --config flag value.
func (r Resolver) Resolve(flag string) Resolved {
	if flag != "" && flag != constants.DefaultConfigPath {
		return Resolved{Value: flag, Source: SourceFlag}
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(constants.ConnectionEnvVar)); v != "" {
		return Resolved{Value: v, Source: SourceEnv}
	}
	if v := r.fromEnvFile(); v != "" {
		return Resolved{Value: v, Source: SourceEnvFile}
	}

	lookup := r.Keyring
	if lookup == nil {
		lookup = keyring.GetConnectionString
	}
	if v, err := lookup(); err == nil && v != "" {
		return Resolved{Value: v, Source: SourceKeyring}
	} else if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup skipped", "error", err)
	}

	return Resolved{Value: constants.DefaultConfigPath, Source: SourceDefault}
}

func (r Resolver) fromEnvFile() string {
	dir := r.ConfigDir
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, constants.EnvFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		logger.Warn("Failed to read env file", "path", path, "error", err)
		return ""
	}
	return strings.TrimSpace(vals[constants.ConnectionEnvVar])
}

// DefaultConfigDir is the directory holding logs and the .env file.
func DefaultConfigDir() string {
	return filepath.Dir(ExpandPath(constants.DefaultConfigPath))
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// OpenProvider builds the medium described by r. Nothing is opened yet; the
// caller runs Init or Load.
func OpenProvider(r Resolved) (storage.Provider, error) {
	v := strings.TrimSpace(r.Value)
	switch {
	case postgres.IsConnString(v) || strings.Contains(v, "host="):
		if _, err := postgres.ValidateConnString(v); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) && r.Source != SourceFlag {
				logger.Debug("Using PostgreSQL credentials from secure source", "source", r.Source.String())
			} else if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store it with '%s config set connection-string' or %s", ErrInlineCredentials, constants.AppName, constants.ConnectionEnvVar)
			} else {
				return nil, err
			}
		}
		return postgres.New(v), nil
	case redis.IsConnString(v):
		if r.Source == SourceFlag && redis.HasEmbeddedPassword(v) {
			return nil, fmt.Errorf("%w; store it with '%s config set connection-string' or %s", ErrInlineCredentials, constants.AppName, constants.ConnectionEnvVar)
		}
		return redis.New(v), nil
	case v == MemoryConfig:
		return storage.NewMemoryStore(), nil
	case strings.HasSuffix(strings.ToLower(v), ".json"):
		return storage.NewJSONStore(ExpandPath(v)), nil
	case v == "":
		return nil, errors.New("empty storage configuration")
	default:
		return sqlite.NewStore(ExpandPath(v)), nil
	}
}
