package models

// Habit is a daily protocol with a running streak.
type Habit struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Streak            int     `json:"streak"`
	LastCompletedDate *string `json:"lastCompletedDate"` // YYYY-MM-DD format, nil before the first check-in
}

// CheckedInOn reports whether the habit's last check-in was on day.
func (h Habit) CheckedInOn(day string) bool {
	return h.LastCompletedDate != nil && *h.LastCompletedDate == day
}
