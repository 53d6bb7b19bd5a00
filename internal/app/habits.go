package app

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

func habitID(h models.Habit) string { return h.ID }

func (a *App) Habits() []models.Habit { return a.repo.Habits.Get() }

// AddHabit appends a habit with no streak.
func (a *App) AddHabit(name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if err := validation.Var("name", name, "required"); err != nil {
		return models.Habit{}, err
	}
	h := models.Habit{ID: a.newID(), Name: name}
	a.repo.Habits.Update(func(hs []models.Habit) []models.Habit {
		return append(append([]models.Habit(nil), hs...), h)
	})
	return h, nil
}

// CheckInHabit records a check-in on date (today when empty). The bool is
// false when the habit was already checked in that day.
func (a *App) CheckInHabit(id, date string) (models.Habit, bool, error) {
	date = a.orToday(date)
	if err := validation.Var("date", date, "isodate"); err != nil {
		return models.Habit{}, false, err
	}

	var changed bool
	h, err := change(a.repo.Habits, id, habitID, "habit", func(h models.Habit) (models.Habit, error) {
		h, changed = derive.CheckIn(h, date)
		return h, nil
	})
	return h, changed, err
}

func (a *App) DeleteHabit(id string) (models.Habit, error) {
	return remove(a.repo.Habits, id, habitID, "habit")
}
