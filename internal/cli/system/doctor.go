package system

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/lifeos/internal/backup"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/keyring"
)

// schemaVersioner is implemented by the SQL media.
type schemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

type check struct {
	name string
	run  func(*cli.Context) error
	warn bool // failures are reported but do not fail the command
}

var checks = []check{
	{name: "Storage reachable", run: checkReachable},
	{name: "Schema version", run: checkSchema},
	{name: "Backups present", run: checkBackups, warn: true},
	{name: "Data validation", run: checkData},
	{name: "Unknown keys", run: checkKeys, warn: true},
	{name: "Clock/timezone", run: checkClock},
	{name: "OS keyring", run: checkKeyring, warn: true},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Printf("Storage: %s (from %s)\n\n", ctx.Store.GetConfigPath(), ctx.Source.Source)

	failed := runChecks(ctx)
	fmt.Println()
	if failed > 0 {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("%d health check(s) failed", failed)
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

// runChecks prints one line per check and returns the number of hard
// failures. Everything after a failed reachability check is skipped.
func runChecks(ctx *cli.Context) int {
	failed := 0
	reachable := true
	for _, c := range checks {
		if !reachable {
			fmt.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			fmt.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			fmt.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			failed++
			if c.name == "Storage reachable" {
				reachable = false
			}
		}
	}
	return failed
}

func checkReachable(ctx *cli.Context) error {
	if _, err := ctx.Store.Keys(constants.KeyPrefix); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchema(ctx *cli.Context) error {
	sv, ok := ctx.Store.(schemaVersioner)
	if !ok {
		return nil
	}
	current, latest, err := sv.SchemaVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind latest %d", current, latest)
	}
	return nil
}

func checkBackups(ctx *cli.Context) error {
	mgr, err := ctx.Backups()
	if errors.Is(err, backup.ErrUnsupported) {
		return nil
	}
	if err != nil {
		return err
	}
	list, err := mgr.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("no backups found in %s; run '%s backup create'", mgr.Dir(), constants.AppName)
	}
	if age := time.Since(list[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("newest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkData(ctx *cli.Context) error {
	res := report(ctx, "")
	if res.HasConflicts() {
		return fmt.Errorf("%d conflict(s); run '%s validate' for details", len(res.Conflicts), constants.AppName)
	}
	return nil
}

func checkKeys(ctx *cli.Context) error {
	keys, err := ctx.Repo.Store().StoredKeys()
	if err != nil {
		return err
	}
	var unknown []string
	for _, k := range keys {
		if !slices.Contains(constants.AllKeys, k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unrecognised keys: %v", unknown)
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	now := ctx.App.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if now.Location() == nil {
		return errors.New("no timezone configured")
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}
