package kv

import (
	"github.com/julianstephens/lifeos/internal/models"
)

func emptySlice[E any]() []E { return []E{} }

func nonNil[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}

func normalizeHabits(hs []models.Habit) []models.Habit {
	hs = nonNil(hs)
	for i := range hs {
		if hs[i].Streak < 0 {
			hs[i].Streak = 0
		}
	}
	return hs
}

func normalizeSchedule(slots []models.WaterScheduleSlot) []models.WaterScheduleSlot {
	slots = nonNil(slots)
	for i := range slots {
		slots[i].CompletedDates = nonNil(slots[i].CompletedDates)
	}
	return slots
}

func normalizeStrategies(ss []models.Strategy) []models.Strategy {
	ss = nonNil(ss)
	for i := range ss {
		ss[i].Days = nonNil(ss[i].Days)
		for j := range ss[i].Days {
			if !ss[i].Days[j].Status.Valid() {
				ss[i].Days[j].Status = models.DayPending
			}
		}
	}
	return ss
}

func normalizeDiary(d models.DiaryEntries) models.DiaryEntries {
	if d == nil {
		return models.DiaryEntries{}
	}
	return d
}

func normalizeTheme(t models.Theme) models.Theme {
	if t != models.ThemeLight && t != models.ThemeDark {
		return models.ThemeDark
	}
	return t
}
