package models

type DayStatus string

const (
	DayPending    DayStatus = "pending"
	DayInProgress DayStatus = "in-progress"
	DayCompleted  DayStatus = "completed"
)

// Valid reports whether s is one of the known day statuses.
func (s DayStatus) Valid() bool {
	switch s {
	case DayPending, DayInProgress, DayCompleted:
		return true
	}
	return false
}

// Strategy is a multi-day plan. Days has TotalDays entries at creation.
type Strategy struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	TotalDays int           `json:"totalDays"`
	CreatedAt int64         `json:"createdAt"`
	Days      []StrategyDay `json:"days"`
}

type StrategyDay struct {
	ID            string    `json:"id"`
	DayNumber     int       `json:"dayNumber"`
	Purpose       string    `json:"purpose"`
	Chapters      string    `json:"chapters"`
	PriorityTasks string    `json:"priorityTasks"`
	Status        DayStatus `json:"status"`
}
