package derive

import (
	"math"
	"time"

	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/utils"
)

type HydrationStatus struct {
	Total     float64 // ml
	Goal      float64 // ml
	Progress  int     // percent, clamped to 0-100
	Remaining float64 // ml, never negative
}

// Hydration sums every log against goal. A goal of zero or less reports 0%.
func Hydration(logs []models.WaterLog, goal models.Number) HydrationStatus {
	var total float64
	for _, l := range logs {
		total += l.Amount.Float()
	}
	g := goal.Float()
	st := HydrationStatus{Total: total, Goal: g, Remaining: math.Max(0, g-total)}
	if g > 0 {
		st.Progress = clampPercent(100 * total / g)
	}
	return st
}

func SlotDone(slot models.WaterScheduleSlot, today string) bool {
	return slot.DoneOn(today)
}

type MilestoneStatus struct {
	Milestone models.WaterMilestone
	Reached   bool
}

func Milestones(milestones []models.WaterMilestone, total float64) []MilestoneStatus {
	out := make([]MilestoneStatus, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, MilestoneStatus{Milestone: m, Reached: total >= m.Amount.Float()})
	}
	return out
}

// LastSip labels the most recent log relative to now.
func LastSip(logs []models.WaterLog, now time.Time) string {
	if len(logs) == 0 {
		return "No sips today"
	}
	latest := logs[0].Timestamp
	for _, l := range logs[1:] {
		if l.Timestamp > latest {
			latest = l.Timestamp
		}
	}
	return utils.FormatSince(latest, now)
}
