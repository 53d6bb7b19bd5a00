package app

import (
	"errors"
	"sort"
	"strings"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

var ErrSlotDone = errors.New("slot already completed today")

func slotID(s models.WaterScheduleSlot) string   { return s.ID }
func milestoneID(m models.WaterMilestone) string { return m.ID }

// WaterView is everything the hydration screen shows.
type WaterView struct {
	Status     derive.HydrationStatus
	Logs       []models.WaterLog
	Schedule   []models.WaterScheduleSlot
	Milestones []derive.MilestoneStatus
	LastSip    string
	Today      string
}

func (a *App) Water() WaterView {
	logs := a.repo.WaterLogs.Get()
	status := derive.Hydration(logs, a.repo.WaterGoal.Get())
	return WaterView{
		Status:     status,
		Logs:       logs,
		Schedule:   a.repo.WaterSchedule.Get(),
		Milestones: derive.Milestones(a.repo.WaterMilestones.Get(), status.Total),
		LastSip:    derive.LastSip(logs, a.Now()),
		Today:      a.Today(),
	}
}

type drinkInput struct {
	Amount models.Number `json:"amount" validate:"gt=0"`
}

// Drink logs amount ml. With a slot id the slot is also marked done today;
// an unknown slot aborts before anything is logged.
func (a *App) Drink(amount float64, slot string) (models.WaterLog, error) {
	if err := validation.Struct(drinkInput{Amount: models.Number(amount)}); err != nil {
		return models.WaterLog{}, err
	}
	if slot != "" {
		if _, err := findIndex(a.repo.WaterSchedule.Get(), slot, slotID, "slot"); err != nil {
			return models.WaterLog{}, err
		}
	}

	entry := models.WaterLog{Amount: models.Number(amount), Timestamp: a.millis()}
	a.repo.WaterLogs.Update(func(ls []models.WaterLog) []models.WaterLog {
		return append(append([]models.WaterLog(nil), ls...), entry)
	})

	if slot != "" {
		today := a.Today()
		_, err := change(a.repo.WaterSchedule, slot, slotID, "slot", func(s models.WaterScheduleSlot) (models.WaterScheduleSlot, error) {
			if s.DoneOn(today) {
				return s, nil
			}
			s.CompletedDates = append(append([]string(nil), s.CompletedDates...), today)
			return s, nil
		})
		if err != nil {
			return entry, err
		}
	}
	return entry, nil
}

// CompleteSlot drinks the slot's planned amount and marks it done today.
func (a *App) CompleteSlot(id string) (models.WaterScheduleSlot, error) {
	slots := a.repo.WaterSchedule.Get()
	i, err := findIndex(slots, id, slotID, "slot")
	if err != nil {
		return models.WaterScheduleSlot{}, err
	}
	s := slots[i]
	if s.DoneOn(a.Today()) {
		return s, ErrSlotDone
	}
	if _, err := a.Drink(s.Amount.Float(), s.ID); err != nil {
		return s, err
	}
	slots = a.repo.WaterSchedule.Get()
	if i, err = findIndex(slots, s.ID, slotID, "slot"); err != nil {
		return s, err
	}
	return slots[i], nil
}

// ResetToday clears the intake log and today's slot completions.
func (a *App) ResetToday() {
	today := a.Today()
	a.repo.WaterLogs.Set([]models.WaterLog{})
	a.repo.WaterSchedule.Update(func(ss []models.WaterScheduleSlot) []models.WaterScheduleSlot {
		out := make([]models.WaterScheduleSlot, len(ss))
		for i, s := range ss {
			dates := make([]string, 0, len(s.CompletedDates))
			for _, d := range s.CompletedDates {
				if d != today {
					dates = append(dates, d)
				}
			}
			s.CompletedDates = dates
			out[i] = s
		}
		return out
	})
}

func (a *App) SetWaterGoal(ml float64) (models.Number, error) {
	if err := validation.Var("goal", ml, "gt=0"); err != nil {
		return 0, err
	}
	return a.repo.WaterGoal.Set(models.Number(ml)), nil
}

type SlotInput struct {
	Time   string  `json:"time" validate:"hhmm"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Label  string  `json:"label"`
}

// AddSlot adds a planned drink, keeping the schedule ordered by time.
func (a *App) AddSlot(in SlotInput) (models.WaterScheduleSlot, error) {
	if err := validation.Struct(in); err != nil {
		return models.WaterScheduleSlot{}, err
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		label = constants.DefaultSlotLabel
	}
	slot := models.WaterScheduleSlot{
		ID:             a.newID(),
		Time:           in.Time,
		Amount:         models.Number(in.Amount),
		Label:          label,
		CompletedDates: []string{},
	}
	a.repo.WaterSchedule.Update(func(ss []models.WaterScheduleSlot) []models.WaterScheduleSlot {
		out := append(append([]models.WaterScheduleSlot(nil), ss...), slot)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
		return out
	})
	return slot, nil
}

func (a *App) DeleteSlot(id string) (models.WaterScheduleSlot, error) {
	return remove(a.repo.WaterSchedule, id, slotID, "slot")
}

type MilestoneInput struct {
	Label  string  `json:"label" validate:"notblank"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

func (a *App) AddMilestone(in MilestoneInput) (models.WaterMilestone, error) {
	if err := validation.Struct(in); err != nil {
		return models.WaterMilestone{}, err
	}
	m := models.WaterMilestone{ID: a.newID(), Label: strings.TrimSpace(in.Label), Amount: models.Number(in.Amount)}
	a.repo.WaterMilestones.Update(func(ms []models.WaterMilestone) []models.WaterMilestone {
		return append(append([]models.WaterMilestone(nil), ms...), m)
	})
	return m, nil
}

func (a *App) DeleteMilestone(id string) (models.WaterMilestone, error) {
	return remove(a.repo.WaterMilestones, id, milestoneID, "milestone")
}

// RestoreDefaultMilestones replaces every milestone with the built-in set.
func (a *App) RestoreDefaultMilestones() []models.WaterMilestone {
	return a.repo.WaterMilestones.Set(models.DefaultWaterMilestones())
}
