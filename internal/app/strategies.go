package app

import (
	"strconv"
	"strings"

	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

func strategyID(s models.Strategy) string { return s.ID }
func dayID(d models.StrategyDay) string   { return d.ID }

type strategyInput struct {
	Name      string `json:"name" validate:"notblank"`
	TotalDays int    `json:"totalDays" validate:"gt=0"`
}

// DayPatch changes the fields that are set.
type DayPatch struct {
	Purpose       *string
	Chapters      *string
	PriorityTasks *string
	Status        *models.DayStatus
}

func (a *App) Strategies() []models.Strategy { return a.repo.Strategies.Get() }

// Strategy looks up one strategy and its completion percentage.
func (a *App) Strategy(id string) (models.Strategy, int, error) {
	ss := a.repo.Strategies.Get()
	i, err := findIndex(ss, id, strategyID, "strategy")
	if err != nil {
		return models.Strategy{}, 0, err
	}
	return ss[i], derive.StrategyCompletion(ss[i]), nil
}

// CreateStrategy appends a strategy with totalDays pending days numbered
// from 1.
func (a *App) CreateStrategy(name string, totalDays int) (models.Strategy, error) {
	in := strategyInput{Name: strings.TrimSpace(name), TotalDays: totalDays}
	if err := validation.Struct(in); err != nil {
		return models.Strategy{}, err
	}

	days := make([]models.StrategyDay, totalDays)
	for i := range days {
		days[i] = models.StrategyDay{ID: a.newID(), DayNumber: i + 1, Status: models.DayPending}
	}
	s := models.Strategy{
		ID:        a.newID(),
		Name:      in.Name,
		TotalDays: totalDays,
		CreatedAt: a.millis(),
		Days:      days,
	}
	a.repo.Strategies.Update(func(ss []models.Strategy) []models.Strategy {
		return append(append([]models.Strategy(nil), ss...), s)
	})
	return s, nil
}

// UpdateDay applies patch to one day of a strategy. day may be the day id or
// its day number.
func (a *App) UpdateDay(strategy, day string, patch DayPatch) (models.StrategyDay, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.StrategyDay{}, validation.Var("status", string(*patch.Status), "oneof=pending in-progress completed")
	}

	var updated models.StrategyDay
	_, err := change(a.repo.Strategies, strategy, strategyID, "strategy", func(s models.Strategy) (models.Strategy, error) {
		i, err := findDay(s.Days, day)
		if err != nil {
			return s, err
		}
		d := s.Days[i]
		if patch.Purpose != nil {
			d.Purpose = *patch.Purpose
		}
		if patch.Chapters != nil {
			d.Chapters = *patch.Chapters
		}
		if patch.PriorityTasks != nil {
			d.PriorityTasks = *patch.PriorityTasks
		}
		if patch.Status != nil {
			d.Status = *patch.Status
		}
		updated = d
		s.Days = replaced(s.Days, i, d)
		return s, nil
	})
	return updated, err
}

func findDay(days []models.StrategyDay, ref string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		for i, d := range days {
			if d.DayNumber == n {
				return i, nil
			}
		}
	}
	return findIndex(days, ref, dayID, "day")
}

func (a *App) DeleteStrategy(id string) (models.Strategy, error) {
	return remove(a.repo.Strategies, id, strategyID, "strategy")
}
