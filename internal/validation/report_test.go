package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/lifeos/internal/models"
)

func countType(r Result, ct ConflictType) int {
	n := 0
	for _, c := range r.Conflicts {
		if c.Type == ct {
			n++
		}
	}
	return n
}

func TestValidateTimetable_Overlap(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "1", Date: "2024-05-01", StartTime: "09:00", EndTime: "10:30", Title: "Physics"},
		{ID: "2", Date: "2024-05-01", StartTime: "10:00", EndTime: "11:00", Title: "Maths"},
		{ID: "3", Date: "2024-05-01", StartTime: "11:00", EndTime: "12:00", Title: "Chemistry"},
		{ID: "4", Date: "2024-05-02", StartTime: "09:30", EndTime: "10:00", Title: "Physics"},
	}

	result := ValidateTimetable(entries, "")
	if got := countType(result, ConflictOverlappingEntries); got != 1 {
		t.Fatalf("overlaps = %d, want 1: %v", got, result.Conflicts)
	}
	c := result.Conflicts[0]
	if c.TimeRange != "10:00-10:30" {
		t.Errorf("TimeRange = %q, want 10:00-10:30", c.TimeRange)
	}
	if c.Date != "2024-05-01" {
		t.Errorf("Date = %q", c.Date)
	}
}

func TestValidateTimetable_ScopedToDate(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "1", Date: "2024-05-01", StartTime: "09:00", EndTime: "10:30", Title: "A"},
		{ID: "2", Date: "2024-05-01", StartTime: "10:00", EndTime: "11:00", Title: "B"},
	}
	result := ValidateTimetable(entries, "2024-05-02")
	if result.HasConflicts() {
		t.Errorf("expected no conflicts for another date, got %v", result.Conflicts)
	}
}

func TestValidateTimetable_OpenEndedEntriesDoNotOverlap(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "1", Date: "2024-05-01", StartTime: "09:00", Title: "A"},
		{ID: "2", Date: "2024-05-01", StartTime: "09:00", EndTime: "10:00", Title: "B"},
	}
	if result := ValidateTimetable(entries, ""); result.HasConflicts() {
		t.Errorf("unexpected conflicts: %v", result.Conflicts)
	}
}

func TestValidateTimetable_InvalidValues(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "1", Date: "05/01/2024", StartTime: "09:00", Title: "Bad date"},
		{ID: "2", Date: "2024-05-01", StartTime: "9:00", Title: "Unpadded"},
		{ID: "3", Date: "2024-05-01", StartTime: "09:00", EndTime: "24:00", Title: "Bad end"},
		{ID: "4", Date: "2024-05-01", StartTime: "12:00", EndTime: "11:00", Title: "Backwards"},
	}

	result := ValidateTimetable(entries, "")
	if got := countType(result, ConflictInvalidDateTime); got != 3 {
		t.Errorf("invalid datetime conflicts = %d, want 3", got)
	}
	if got := countType(result, ConflictEndBeforeStart); got != 1 {
		t.Errorf("end before start conflicts = %d, want 1", got)
	}
}

func TestValidateStrategies(t *testing.T) {
	strategies := []models.Strategy{
		{ID: "s1", Name: "Ok", TotalDays: 2, Days: []models.StrategyDay{{ID: "a", DayNumber: 1}, {ID: "b", DayNumber: 2}}},
		{ID: "s2", Name: "Short", TotalDays: 3, Days: []models.StrategyDay{{ID: "c", DayNumber: 1}}},
		{ID: "s3", Name: "Dupe", TotalDays: 2, Days: []models.StrategyDay{{ID: "d", DayNumber: 1}, {ID: "e", DayNumber: 1}}},
	}

	result := ValidateStrategies(strategies)
	if got := countType(result, ConflictDayCountMismatch); got != 1 {
		t.Errorf("day count mismatches = %d, want 1", got)
	}
	if got := countType(result, ConflictDuplicateDayNumber); got != 1 {
		t.Errorf("duplicate day numbers = %d, want 1", got)
	}
}

func TestValidateRecords(t *testing.T) {
	bad := "yesterday"
	good := "2024-05-01"
	result := ValidateRecords(
		[]models.WaterScheduleSlot{{ID: "w1", Time: "08:00"}, {ID: "w2", Time: "8am"}},
		[]models.MealEntry{{ID: "m1", Date: "2024-05-01", Time: "07:30"}, {ID: "m2", Date: "", Time: "07:30"}},
		[]models.Habit{{ID: "h1", LastCompletedDate: &good}, {ID: "h2", LastCompletedDate: &bad}, {ID: "h3"}},
	)
	if got := countType(result, ConflictInvalidDateTime); got != 3 {
		t.Errorf("invalid records = %d, want 3: %v", got, result.Conflicts)
	}
}

func TestFormatReport(t *testing.T) {
	var empty Result
	if got := empty.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}

	result := ValidateDay(
		[]models.TimetableEntry{{ID: "1", Date: "2024-05-01", StartTime: "10:00", EndTime: "09:00", Title: "Oops"}},
		[]models.Strategy{{ID: "s", Name: "Sprint", TotalDays: 1}},
	)
	report := result.FormatReport()
	if !strings.HasPrefix(report, "Conflicts detected:\n") {
		t.Errorf("report missing header: %q", report)
	}
	if strings.Count(report, "\n- ") != 2 {
		t.Errorf("report should list 2 conflicts: %q", report)
	}
}

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		s1, e1, s2, e2 string
		want           bool
	}{
		{"09:00", "10:00", "09:30", "10:30", true},
		{"09:00", "10:00", "10:00", "11:00", false},
		{"09:00", "12:00", "10:00", "11:00", true},
		{"13:00", "14:00", "09:00", "10:00", false},
	}
	for _, tt := range tests {
		if got := timesOverlap(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
			t.Errorf("timesOverlap(%s,%s,%s,%s) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
		}
	}
}
