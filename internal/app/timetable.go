package app

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
	"github.com/julianstephens/lifeos/internal/validation"
)

func entryID(e models.TimetableEntry) string { return e.ID }

type EntryInput struct {
	StartTime   string `json:"startTime" validate:"hhmm"`
	EndTime     string `json:"endTime" validate:"omitempty,hhmm"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description"`
}

func (in EntryInput) clean() EntryInput {
	in.Title = strings.TrimSpace(in.Title)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	return in
}

// Timetable returns date's focus blocks ordered by start time.
func (a *App) Timetable(date string) []models.TimetableEntry {
	return derive.DaySchedule(a.repo.Timetable.Get(), a.orToday(date))
}

func (a *App) AddEntry(date string, in EntryInput) (models.TimetableEntry, error) {
	date = a.orToday(date)
	in = in.clean()
	if err := validation.Var("date", date, "isodate"); err != nil {
		return models.TimetableEntry{}, err
	}
	if err := validation.Struct(in); err != nil {
		return models.TimetableEntry{}, err
	}

	e := models.TimetableEntry{
		ID:          a.newID(),
		Date:        date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Title:       in.Title,
		Description: in.Description,
	}
	a.repo.Timetable.Update(func(es []models.TimetableEntry) []models.TimetableEntry {
		return append(append([]models.TimetableEntry(nil), es...), e)
	})
	return e, nil
}

// Entry looks up one entry by id or unique prefix.
func (a *App) Entry(id string) (models.TimetableEntry, error) {
	es := a.repo.Timetable.Get()
	i, err := findIndex(es, id, entryID, "entry")
	if err != nil {
		return models.TimetableEntry{}, err
	}
	return es[i], nil
}

// UpdateEntry replaces the editable fields of an entry. Date and id are kept.
func (a *App) UpdateEntry(id string, in EntryInput) (models.TimetableEntry, error) {
	in = in.clean()
	if err := validation.Struct(in); err != nil {
		return models.TimetableEntry{}, err
	}
	return change(a.repo.Timetable, id, entryID, "entry", func(e models.TimetableEntry) (models.TimetableEntry, error) {
		e.StartTime = in.StartTime
		e.EndTime = in.EndTime
		e.Title = in.Title
		e.Description = in.Description
		return e, nil
	})
}

func (a *App) DeleteEntry(id string) (models.TimetableEntry, error) {
	return remove(a.repo.Timetable, id, entryID, "entry")
}

// CopyPreviousDay clones the day before date onto date with fresh ids.
func (a *App) CopyPreviousDay(date string) ([]models.TimetableEntry, error) {
	date = a.orToday(date)
	if err := validation.Var("date", date, "isodate"); err != nil {
		return nil, err
	}
	prev, err := utils.PreviousDay(date)
	if err != nil {
		return nil, err
	}

	var clones []models.TimetableEntry
	a.repo.Timetable.Modify(func(es []models.TimetableEntry) ([]models.TimetableEntry, bool) {
		for _, e := range es {
			if e.Date == prev {
				e.ID = a.newID()
				e.Date = date
				clones = append(clones, e)
			}
		}
		if len(clones) == 0 {
			return es, false
		}
		return append(append([]models.TimetableEntry(nil), es...), clones...), true
	})
	if len(clones) == 0 {
		return nil, ErrNoEntriesToCopy
	}
	return clones, nil
}
