package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
)

// ConflictType represents the type of consistency problem found in stored data
type ConflictType string

const (
	ConflictOverlappingEntries ConflictType = "overlapping_entries"
	ConflictEndBeforeStart     ConflictType = "end_before_start"
	ConflictInvalidDateTime    ConflictType = "invalid_datetime"
	ConflictDayCountMismatch   ConflictType = "day_count_mismatch"
	ConflictDuplicateDayNumber ConflictType = "duplicate_day_number"
)

// Conflict represents a detected problem in stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Titles or names involved
	TimeRange   string   // Human-readable time range (if applicable)
	IDs         []string // IDs of records involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Merge appends the conflicts of other.
func (r *Result) Merge(other Result) {
	r.Conflicts = append(r.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// ValidateDay checks the timetable and strategies together.
func ValidateDay(entries []models.TimetableEntry, strategies []models.Strategy) Result {
	result := ValidateTimetable(entries, "")
	result.Merge(ValidateStrategies(strategies))
	return result
}

// ValidateTimetable checks focus blocks for malformed values and overlaps.
// An empty date checks every date.
func ValidateTimetable(entries []models.TimetableEntry, date string) Result {
	var result Result

	byDate := make(map[string][]models.TimetableEntry)
	var dates []string
	for _, e := range entries {
		if date != "" && e.Date != date {
			continue
		}
		if !utils.ValidateDate(e.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Entry '%s' has invalid date: %q", e.Title, e.Date),
				Items:       []string{e.Title},
				IDs:         []string{e.ID},
			})
			continue
		}
		if !utils.ValidateTimeFormat(e.StartTime) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Entry '%s' on %s has invalid start time: %q", e.Title, e.Date, e.StartTime),
				Date:        e.Date,
				Items:       []string{e.Title},
				IDs:         []string{e.ID},
			})
			continue
		}
		if e.EndTime != "" {
			if !utils.ValidateTimeFormat(e.EndTime) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDateTime,
					Description: fmt.Sprintf("Entry '%s' on %s has invalid end time: %q", e.Title, e.Date, e.EndTime),
					Date:        e.Date,
					Items:       []string{e.Title},
					IDs:         []string{e.ID},
				})
				continue
			}
			if e.EndTime <= e.StartTime {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictEndBeforeStart,
					Description: fmt.Sprintf("Entry '%s' on %s ends at %s, not after its start %s", e.Title, e.Date, e.EndTime, e.StartTime),
					Date:        e.Date,
					Items:       []string{e.Title},
					TimeRange:   e.StartTime + "-" + e.EndTime,
					IDs:         []string{e.ID},
				})
				continue
			}
		}
		if _, seen := byDate[e.Date]; !seen {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	sort.Strings(dates)
	for _, d := range dates {
		day := byDate[d]
		sort.SliceStable(day, func(i, j int) bool { return day[i].StartTime < day[j].StartTime })
		for i := 0; i < len(day); i++ {
			for j := i + 1; j < len(day); j++ {
				a, b := day[i], day[j]
				if a.EndTime == "" || b.EndTime == "" {
					continue
				}
				if timesOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
					result.Conflicts = append(result.Conflicts, Conflict{
						Type: ConflictOverlappingEntries,
						Description: fmt.Sprintf("Overlapping entries on %s: '%s' (%s-%s) and '%s' (%s-%s)",
							d, a.Title, a.StartTime, a.EndTime, b.Title, b.StartTime, b.EndTime),
						Date:      d,
						Items:     []string{a.Title, b.Title},
						TimeRange: fmt.Sprintf("%s-%s", maxString(a.StartTime, b.StartTime), minString(a.EndTime, b.EndTime)),
						IDs:       []string{a.ID, b.ID},
					})
				}
			}
		}
	}

	return result
}

// ValidateStrategies checks that every strategy has one day per planned day
// and that day numbers are unique.
func ValidateStrategies(strategies []models.Strategy) Result {
	var result Result
	for _, s := range strategies {
		if len(s.Days) != s.TotalDays {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDayCountMismatch,
				Description: fmt.Sprintf("Strategy '%s' plans %d days but has %d", s.Name, s.TotalDays, len(s.Days)),
				Items:       []string{s.Name},
				IDs:         []string{s.ID},
			})
		}
		seen := make(map[int]bool, len(s.Days))
		for _, d := range s.Days {
			if seen[d.DayNumber] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateDayNumber,
					Description: fmt.Sprintf("Strategy '%s' has more than one day %d", s.Name, d.DayNumber),
					Items:       []string{s.Name},
					IDs:         []string{s.ID, d.ID},
				})
			}
			seen[d.DayNumber] = true
		}
	}
	return result
}

// ValidateRecords checks the time and date fields of water slots, meals and
// habits.
func ValidateRecords(slots []models.WaterScheduleSlot, meals []models.MealEntry, habits []models.Habit) Result {
	var result Result
	for _, s := range slots {
		if !utils.ValidateTimeFormat(s.Time) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Water slot '%s' has invalid time: %q", s.Label, s.Time),
				Items:       []string{s.Label},
				IDs:         []string{s.ID},
			})
		}
	}
	for _, m := range meals {
		if !utils.ValidateDate(m.Date) || !utils.ValidateTimeFormat(m.Time) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Meal '%s' has invalid date or time: %q %q", m.Food, m.Date, m.Time),
				Date:        m.Date,
				Items:       []string{m.Food},
				IDs:         []string{m.ID},
			})
		}
	}
	for _, h := range habits {
		if h.LastCompletedDate != nil && !utils.ValidateDate(*h.LastCompletedDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Habit '%s' has invalid last check-in date: %q", h.Name, *h.LastCompletedDate),
				Items:       []string{h.Name},
				IDs:         []string{h.ID},
			})
		}
	}
	return result
}

// timesOverlap reports whether [start1,end1) and [start2,end2) intersect.
// Inputs are validated HH:MM strings, so string order is time order.
func timesOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

func maxString(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minString(a, b string) string {
	if a < b {
		return a
	}
	return b
}
