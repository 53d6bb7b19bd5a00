package derive

import (
	"sort"

	"github.com/julianstephens/lifeos/internal/models"
)

type Nutrients struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (n Nutrients) add(m models.MealEntry) Nutrients {
	n.Calories += m.Calories.Float()
	n.Protein += m.Protein.Float()
	n.Carbs += m.Carbs.Float()
	n.Fats += m.Fats.Float()
	return n
}

// MealsForDate returns the meals logged on date ordered by time.
func MealsForDate(meals []models.MealEntry, date string) []models.MealEntry {
	out := []models.MealEntry{}
	for _, m := range meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func NutrientTotals(meals []models.MealEntry, date string) Nutrients {
	var n Nutrients
	for _, m := range meals {
		if m.Date == date {
			n = n.add(m)
		}
	}
	return n
}

type MealGroup struct {
	Type    models.MealType
	Entries []models.MealEntry
	Totals  Nutrients
}

// MealsByType groups a day's meals under each known type in display order.
// Every type is present even when it has no entries.
func MealsByType(meals []models.MealEntry, date string) []MealGroup {
	day := MealsForDate(meals, date)
	groups := make([]MealGroup, 0, len(models.MealTypes))
	for _, t := range models.MealTypes {
		g := MealGroup{Type: t, Entries: []models.MealEntry{}}
		for _, m := range day {
			if m.Type == t {
				g.Entries = append(g.Entries, m)
				g.Totals = g.Totals.add(m)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
