package models

// TimetableEntry is a focus block on a given date. Start and end times are
// zero-padded 24-hour strings, so lexicographic order is chronological order.
type TimetableEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date"`      // YYYY-MM-DD format
	StartTime   string `json:"startTime"` // HH:MM format
	EndTime     string `json:"endTime"`   // HH:MM format
	Title       string `json:"title"`
	Description string `json:"description"`
}
