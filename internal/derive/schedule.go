package derive

import (
	"math"
	"sort"
	"strings"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
)

// DaySchedule returns the entries on date ordered by start time.
func DaySchedule(entries []models.TimetableEntry, date string) []models.TimetableEntry {
	out := []models.TimetableEntry{}
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// UpcomingEvent is the first entry on date that starts strictly after now
// (HH:MM).
func UpcomingEvent(entries []models.TimetableEntry, date, now string) (models.TimetableEntry, bool) {
	for _, e := range DaySchedule(entries, date) {
		if e.StartTime > now {
			return e, true
		}
	}
	return models.TimetableEntry{}, false
}

// StrategyCompletion is the completed share of a strategy's days. A zero
// day count is treated as one.
func StrategyCompletion(s models.Strategy) int {
	done := 0
	for _, d := range s.Days {
		if d.Status == models.DayCompleted {
			done++
		}
	}
	total := s.TotalDays
	if total <= 0 {
		total = 1
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

func DiaryStatus(entries models.DiaryEntries, date string) string {
	if entries[date] != "" {
		return constants.DiaryReflected
	}
	return constants.DiaryPending
}

func WordCount(s string) int {
	return len(strings.Fields(s))
}
