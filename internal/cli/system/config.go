package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/keyring"
	"github.com/julianstephens/lifeos/internal/storage/postgres"
	"github.com/julianstephens/lifeos/internal/storage/redis"
)

type ConfigCmd struct {
	Set    ConfigSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
	Get    ConfigGetCmd    `cmd:"" help:"Show the stored connection string with its password masked."`
	Delete ConfigDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status ConfigStatusCmd `cmd:"" help:"Report keyring availability and where storage is resolved from."`
}

type ConfigSetCmd struct {
	Key   string `arg:"" enum:"connection-string" help:"Setting name (connection-string)."`
	Value string `arg:"" help:"PostgreSQL or Redis connection string."`
}

func (cmd *ConfigSetCmd) Run(ctx *cli.Context) error {
	v := strings.TrimSpace(cmd.Value)
	switch {
	case postgres.IsConnString(v) || strings.Contains(v, "host="):
		if _, err := postgres.ValidateConnString(v); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	case redis.IsConnString(v):
	default:
		return errors.New("connection string must be a PostgreSQL or Redis connection string")
	}

	if err := keyring.SetConnectionString(v); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	fmt.Println(cli.OK("Connection string stored in OS keyring"))
	fmt.Printf("  You can now use %s without the --config flag\n", constants.AppName)
	return nil
}

type ConfigGetCmd struct {
	Key string `arg:"" enum:"connection-string" help:"Setting name (connection-string)."`
}

func (cmd *ConfigGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no connection string found in keyring; use '%s config set connection-string' to store one", constants.AppName)
	}
	if err != nil {
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}
	fmt.Println(MaskPassword(connStr))
	return nil
}

type ConfigDeleteCmd struct {
	Key string `arg:"" enum:"connection-string" help:"Setting name (connection-string)."`
}

func (cmd *ConfigDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.New("no connection string found in keyring")
	}
	if err != nil {
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	fmt.Println(cli.OK("Connection string deleted from OS keyring"))
	return nil
}

type ConfigStatusCmd struct{}

func (cmd *ConfigStatusCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Storage resolved from: %s\n", ctx.Source.Source)
	fmt.Printf("Storage: %s\n", MaskPassword(ctx.Source.Value))
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return nil
	}
	fmt.Println(cli.OK("OS keyring is available"))
	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Println(cli.OK("Connection string is stored in keyring"))
	}
	return nil
}

// MaskPassword hides the password in URL and key=value connection strings.
func MaskPassword(connStr string) string {
	if idx := strings.Index(connStr, "://"); idx != -1 {
		rest := connStr[idx+3:]
		if at := strings.LastIndex(rest, "@"); at != -1 {
			userInfo := rest[:at]
			if colon := strings.Index(userInfo, ":"); colon != -1 {
				return connStr[:idx+3] + userInfo[:colon] + ":****" + rest[at:]
			}
		}
		return connStr
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		for i, p := range parts {
			if strings.HasPrefix(p, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}
	return connStr
}
