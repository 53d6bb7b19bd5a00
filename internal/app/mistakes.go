package app

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

func mistakeID(m models.MistakeEntry) string { return m.ID }

type MistakeInput struct {
	Subject    string `json:"subject" validate:"notblank"`
	Chapter    string `json:"chapter"`
	Tag        string `json:"tag" validate:"notblank"`
	Correction string `json:"correction" validate:"notblank"`
}

// Mistakes returns the graveyard filtered by query and subject.
func (a *App) Mistakes(query, subject string) []models.MistakeEntry {
	return derive.FilterMistakes(a.repo.Mistakes.Get(), query, subject)
}

func (a *App) MistakeStats() derive.MistakeStats {
	return derive.MistakeAnalytics(a.repo.Mistakes.Get())
}

// BuryMistake records a mistake at the top of the graveyard.
func (a *App) BuryMistake(in MistakeInput) (models.MistakeEntry, error) {
	in.Subject = strings.TrimSpace(in.Subject)
	in.Tag = strings.TrimSpace(in.Tag)
	in.Chapter = strings.TrimSpace(in.Chapter)
	if err := validation.Struct(in); err != nil {
		return models.MistakeEntry{}, err
	}
	if in.Chapter == "" {
		in.Chapter = constants.DefaultMistakeChapter
	}

	m := models.MistakeEntry{
		ID:         a.newID(),
		Subject:    in.Subject,
		Chapter:    in.Chapter,
		Tag:        in.Tag,
		Correction: in.Correction,
		CreatedAt:  a.millis(),
	}
	a.repo.Mistakes.Update(func(ms []models.MistakeEntry) []models.MistakeEntry {
		return append([]models.MistakeEntry{m}, ms...)
	})
	return m, nil
}

func (a *App) ToggleExorcised(id string) (models.MistakeEntry, error) {
	return change(a.repo.Mistakes, id, mistakeID, "mistake", func(m models.MistakeEntry) (models.MistakeEntry, error) {
		m.IsExorcised = !m.IsExorcised
		return m, nil
	})
}

func (a *App) DeleteMistake(id string) (models.MistakeEntry, error) {
	return remove(a.repo.Mistakes, id, mistakeID, "mistake")
}

// Haunt picks a random buried mistake. ok is false when the graveyard is empty.
func (a *App) Haunt() (models.MistakeEntry, bool) {
	return derive.Haunt(a.repo.Mistakes.Get(), a.rng)
}
