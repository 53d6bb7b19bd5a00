package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/backup"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/constants"
	lerrors "github.com/julianstephens/lifeos/internal/errors"
	"github.com/julianstephens/lifeos/internal/kv"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/notifier"
	"github.com/julianstephens/lifeos/internal/storage"
	"github.com/julianstephens/lifeos/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Source   config.Resolved
	Location *time.Location
	Notifier *notifier.Notifier

	Repo *kv.Repository
	App  *app.App

	// Prompt hooks; tests replace them.
	Confirm func(title string) (bool, error)
	Secret  func(title string) (string, error)
}

func NewContext(store storage.Provider, source config.Resolved, loc *time.Location) *Context {
	if loc == nil {
		loc = time.Local
	}
	return &Context{
		Store:    store,
		Source:   source,
		Location: loc,
		Notifier: notifier.New(),
		Confirm:  confirmPrompt,
		Secret:   secretPrompt,
	}
}

// Attach builds the keyed store and feature layer over Store. It is called
// once the medium has been loaded or initialised.
func (c *Context) Attach(opts ...app.Option) {
	c.Repo = kv.NewRepository(kv.New(c.Store))
	c.App = app.New(c.Repo, append([]app.Option{app.WithLocation(c.Location)}, opts...)...)
}

// Date returns date, or today when empty.
func (c *Context) Date(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return c.App.Today(), nil
	}
	if !utils.ValidateDate(date) {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return date, nil
}

// Require asks for confirmation unless yes is set. A refusal returns
// errors.ErrAborted.
func (c *Context) Require(yes bool, title string) error {
	if yes {
		return nil
	}
	ok, err := c.Confirm(title)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return lerrors.ErrAborted
		}
		return fmt.Errorf("confirmation prompt: %w", err)
	}
	if !ok {
		return lerrors.ErrAborted
	}
	return nil
}

// Backups returns the backup manager for file-backed media.
func (c *Context) Backups() (*backup.Manager, error) {
	return backup.NewManager(c.Store.GetConfigPath())
}

// AutoBackup snapshots file-backed media and never fails the caller.
func (c *Context) AutoBackup() {
	mgr, err := c.Backups()
	if err != nil {
		logger.Debug("Automatic backup skipped", "reason", err)
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func confirmPrompt(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeBase()).Run()
	return ok, err
}

func secretPrompt(title string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				CharLimit(constants.PinLength).
				Value(&value),
		),
	).WithTheme(huh.ThemeBase()).Run()
	return strings.TrimSpace(value), err
}
