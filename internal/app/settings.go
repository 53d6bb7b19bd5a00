package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
	"github.com/julianstephens/lifeos/internal/validation"
	"github.com/julianstephens/lifeos/internal/vault"
)

func (a *App) Profile() models.UserProfile { return a.repo.Profile.Get() }

func (a *App) SetProfileName(name string) models.UserProfile {
	return a.repo.Profile.Update(func(p models.UserProfile) models.UserProfile {
		p.Name = strings.TrimSpace(name)
		return p
	})
}

// SetProfilePhoto reads an image file into the profile as a data URL. Files
// over the photo limit are rejected before they are read.
func (a *App) SetProfilePhoto(path string) (models.UserProfile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to read photo: %w", err)
	}
	if err := validation.Photo(info.Size()); err != nil {
		return models.UserProfile{}, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to read photo: %w", err)
	}
	if err := validation.Photo(int64(len(content))); err != nil {
		return models.UserProfile{}, err
	}

	url := utils.DataURL(content)
	return a.repo.Profile.Update(func(p models.UserProfile) models.UserProfile {
		p.Photo = &url
		return p
	}), nil
}

func (a *App) ClearProfilePhoto() models.UserProfile {
	return a.repo.Profile.Update(func(p models.UserProfile) models.UserProfile {
		p.Photo = nil
		return p
	})
}

// ChangePin replaces the vault PIN. A PIN must already exist and oldPin must
// match it.
func (a *App) ChangePin(oldPin, newPin string) error {
	stored := a.repo.Pin()
	if stored == "" {
		return vault.ErrNoPin
	}
	if oldPin != stored {
		return vault.ErrWrongPin
	}
	if err := validation.Var("new PIN", newPin, "pin"); err != nil {
		return err
	}
	a.repo.SetPin(newPin)
	return nil
}

func (a *App) Theme() models.Theme { return a.repo.Theme.Get() }

func (a *App) SetTheme(theme string) (models.Theme, error) {
	if err := validation.Var("theme", theme, "oneof=light dark"); err != nil {
		return "", err
	}
	return a.repo.Theme.Set(models.Theme(theme)), nil
}

func (a *App) ToggleTheme() models.Theme {
	return a.repo.Theme.Update(models.Theme.Toggle)
}

func (a *App) SidebarHidden() bool { return a.repo.SidebarHidden.Get() }

func (a *App) ToggleSidebar() bool {
	return a.repo.SidebarHidden.Update(func(hidden bool) bool { return !hidden })
}

// ResetAll wipes every LifeOS key from the medium.
func (a *App) ResetAll() error {
	return a.repo.Wipe()
}
