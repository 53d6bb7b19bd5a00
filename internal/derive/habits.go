package derive

import (
	"math"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
)

// CheckIn applies a check-in on date. The second result is false when the
// habit was already checked in that day and nothing changed.
//
// A check-in the day after the last one extends the streak; any other date,
// including the first ever check-in, starts a new streak of 1.
func CheckIn(h models.Habit, date string) (models.Habit, bool) {
	if h.CheckedInOn(date) {
		return h, false
	}

	next := h
	next.Streak = 1
	if h.LastCompletedDate != nil {
		if prev, err := utils.PreviousDay(date); err == nil && *h.LastCompletedDate == prev {
			next.Streak = h.Streak + 1
		}
	}
	d := date
	next.LastCompletedDate = &d
	return next, true
}

// Level is a habit's tier and its progress toward the next one.
type Level struct {
	Tier     string
	Next     int
	Progress int // percent, 0-100
}

func HabitLevel(streak int) Level {
	var l Level
	switch {
	case streak >= constants.PhoenixThreshold:
		l = Level{Tier: constants.TierPhoenix, Next: constants.PhoenixTarget}
	case streak >= constants.InfernoThreshold:
		l = Level{Tier: constants.TierInferno, Next: constants.PhoenixThreshold}
	case streak >= constants.BlazeThreshold:
		l = Level{Tier: constants.TierBlaze, Next: constants.InfernoThreshold}
	default:
		l = Level{Tier: constants.TierSpark, Next: constants.BlazeThreshold}
	}
	l.Progress = clampPercent(100 * float64(streak) / float64(l.Next))
	return l
}

type HabitSummary struct {
	Active        int
	TotalStreak   int
	AverageStreak int
	// PerfectDay is true when every habit is checked in today.
	PerfectDay bool
}

func HabitStats(habits []models.Habit, today string) HabitSummary {
	s := HabitSummary{Active: len(habits)}
	if len(habits) == 0 {
		return s
	}
	s.PerfectDay = true
	for _, h := range habits {
		s.TotalStreak += h.Streak
		if !h.CheckedInOn(today) {
			s.PerfectDay = false
		}
	}
	s.AverageStreak = int(math.Round(float64(s.TotalStreak) / float64(len(habits))))
	return s
}

func clampPercent(p float64) int {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	r := int(math.Round(p))
	if r > 100 {
		return 100
	}
	return r
}
