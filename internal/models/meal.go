package models

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealSnack     MealType = "Snack"
	MealDinner    MealType = "Dinner"
)

// MealTypes lists meal types in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

// ParseMealType matches a meal type case-insensitively.
func ParseMealType(s string) (MealType, bool) {
	for _, t := range MealTypes {
		if equalFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

type MealEntry struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"` // YYYY-MM-DD format
	Type     MealType `json:"type"`
	Time     string   `json:"time"` // HH:MM format
	Food     string   `json:"food"`
	Calories Number   `json:"calories"`
	Protein  Number   `json:"protein"`
	Carbs    Number   `json:"carbs"`
	Fats     Number   `json:"fats"`
}
