package models

// WaterLog records one drink. Timestamp is Unix milliseconds.
type WaterLog struct {
	Amount    Number `json:"amount"` // ml
	Timestamp int64  `json:"timestamp"`
}

// WaterMilestone is a named intake target shown alongside the daily goal.
type WaterMilestone struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Amount Number `json:"amount"` // ml
}

// WaterScheduleSlot is a planned drink at a time of day.
type WaterScheduleSlot struct {
	ID             string   `json:"id"`
	Time           string   `json:"time"` // HH:MM format
	Amount         Number   `json:"amount"`
	Label          string   `json:"label"`
	CompletedDates []string `json:"completedDates"` // YYYY-MM-DD format
}

// DoneOn reports whether the slot was satisfied on day.
func (s WaterScheduleSlot) DoneOn(day string) bool {
	for _, d := range s.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// DefaultWaterMilestones returns a fresh copy of the built-in milestones.
func DefaultWaterMilestones() []WaterMilestone {
	return []WaterMilestone{
		{ID: "1", Label: "Physics Fuel", Amount: 1000},
		{ID: "2", Label: "Maths Stamina", Amount: 3000},
		{ID: "3", Label: "Elite Focus", Amount: 4000},
	}
}
