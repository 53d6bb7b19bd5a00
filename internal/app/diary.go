package app

import (
	"maps"

	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

// SaveDiary stores content as date's entry.
func (a *App) SaveDiary(date, content string) error {
	date = a.orToday(date)
	if err := validation.Var("date", date, "isodate"); err != nil {
		return err
	}
	a.repo.Diary.Update(func(entries models.DiaryEntries) models.DiaryEntries {
		next := make(models.DiaryEntries, len(entries)+1)
		maps.Copy(next, entries)
		next[date] = content
		return next
	})
	return nil
}

func (a *App) DiaryEntry(date string) string {
	return a.repo.Diary.Get()[a.orToday(date)]
}

// DiaryStatus reports REFLECTED or PENDING for date.
func (a *App) DiaryStatus(date string) string {
	return derive.DiaryStatus(a.repo.Diary.Get(), a.orToday(date))
}
