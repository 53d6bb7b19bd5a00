package derive

import (
	"github.com/julianstephens/lifeos/internal/models"
)

// Snapshot is every collection the dashboard reads.
type Snapshot struct {
	Tasks      []models.Task
	Habits     []models.Habit
	WaterLogs  []models.WaterLog
	WaterGoal  models.Number
	Meals      []models.MealEntry
	Mistakes   []models.MistakeEntry
	Timetable  []models.TimetableEntry
	Strategies []models.Strategy
	Diary      models.DiaryEntries
}

type Summary struct {
	Date string

	TaskEfficiency int
	TasksDone      int
	TasksTotal     int
	UpcomingEvent  *models.TimetableEntry

	Hydration HydrationStatus
	Nutrition Nutrients

	Habits HabitSummary

	ActiveStrategy   *models.Strategy
	StrategyProgress int

	MistakeCount int
	DiaryStatus  string
}

// Summarize builds the dashboard for date. now is the current time of day as
// HH:MM and selects the upcoming timetable entry.
func Summarize(snap Snapshot, date, now string) Summary {
	sum := Summary{
		Date:           date,
		TaskEfficiency: TaskEfficiency(snap.Tasks),
		TasksDone:      CompletedCount(snap.Tasks),
		TasksTotal:     len(snap.Tasks),
		Hydration:      Hydration(snap.WaterLogs, snap.WaterGoal),
		Nutrition:      NutrientTotals(snap.Meals, date),
		Habits:         HabitStats(snap.Habits, date),
		MistakeCount:   len(snap.Mistakes),
		DiaryStatus:    DiaryStatus(snap.Diary, date),
	}
	if e, ok := UpcomingEvent(snap.Timetable, date, now); ok {
		sum.UpcomingEvent = &e
	}
	if len(snap.Strategies) > 0 {
		s := snap.Strategies[0]
		sum.ActiveStrategy = &s
		sum.StrategyProgress = StrategyCompletion(s)
	}
	return sum
}
