package app

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

func mealID(m models.MealEntry) string { return m.ID }

type MealInput struct {
	Date     string          `json:"date" validate:"isodate"`
	Type     models.MealType `json:"type" validate:"oneof=Breakfast Lunch Snack Dinner"`
	Time     string          `json:"time" validate:"omitempty,hhmm"`
	Food     string          `json:"food" validate:"notblank"`
	Calories models.Number   `json:"calories" validate:"gte=0"`
	Protein  models.Number   `json:"protein" validate:"gte=0"`
	Carbs    models.Number   `json:"carbs" validate:"gte=0"`
	Fats     models.Number   `json:"fats" validate:"gte=0"`
}

// MealDay is one date's meals grouped by type with the day's totals.
type MealDay struct {
	Date   string
	Groups []derive.MealGroup
	Totals derive.Nutrients
}

func (a *App) Meals(date string) MealDay {
	date = a.orToday(date)
	meals := a.repo.Meals.Get()
	return MealDay{
		Date:   date,
		Groups: derive.MealsByType(meals, date),
		Totals: derive.NutrientTotals(meals, date),
	}
}

// AddMeal logs a meal. Date defaults to today, type to Breakfast and time
// to 00:00.
func (a *App) AddMeal(in MealInput) (models.MealEntry, error) {
	in.Date = a.orToday(in.Date)
	in.Food = strings.TrimSpace(in.Food)
	if in.Type == "" {
		in.Type = models.MealBreakfast
	} else if t, ok := models.ParseMealType(string(in.Type)); ok {
		in.Type = t
	}
	if err := validation.Struct(in); err != nil {
		return models.MealEntry{}, err
	}
	if in.Time == "" {
		in.Time = constants.DefaultMealTime
	}

	m := models.MealEntry{
		ID:       a.newID(),
		Date:     in.Date,
		Type:     in.Type,
		Time:     in.Time,
		Food:     in.Food,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
	}
	a.repo.Meals.Update(func(ms []models.MealEntry) []models.MealEntry {
		return append(append([]models.MealEntry(nil), ms...), m)
	})
	return m, nil
}

func (a *App) DeleteMeal(id string) (models.MealEntry, error) {
	return remove(a.repo.Meals, id, mealID, "meal")
}
