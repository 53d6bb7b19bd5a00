package app

import (
	"time"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
)

// Dashboard aggregates every feature for date as of now.
func (a *App) Dashboard(date string, now time.Time) derive.Summary {
	date = a.orToday(date)
	snap := derive.Snapshot{
		Tasks:      a.repo.Tasks.Get(),
		Habits:     a.repo.Habits.Get(),
		WaterLogs:  a.repo.WaterLogs.Get(),
		WaterGoal:  a.repo.WaterGoal.Get(),
		Meals:      a.repo.Meals.Get(),
		Mistakes:   a.repo.Mistakes.Get(),
		Timetable:  a.repo.Timetable.Get(),
		Strategies: a.repo.Strategies.Get(),
		Diary:      a.repo.Diary.Get(),
	}
	return derive.Summarize(snap, date, now.In(a.loc).Format(constants.TimeFormat))
}
