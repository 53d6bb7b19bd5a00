package kv

import (
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
)

// Repository exposes one typed slot per persisted key.
type Repository struct {
	store *Store

	Tasks           Slot[[]models.Task]
	Habits          Slot[[]models.Habit]
	WaterLogs       Slot[[]models.WaterLog]
	WaterGoal       Slot[models.Number]
	WaterMilestones Slot[[]models.WaterMilestone]
	WaterSchedule   Slot[[]models.WaterScheduleSlot]
	Meals           Slot[[]models.MealEntry]
	Mistakes        Slot[[]models.MistakeEntry]
	Timetable       Slot[[]models.TimetableEntry]
	Strategies      Slot[[]models.Strategy]
	Diary           Slot[models.DiaryEntries]
	VaultPin        Slot[string]
	Profile         Slot[models.UserProfile]
	Theme           Slot[models.Theme]
	SidebarHidden   Slot[bool]
}

func NewRepository(s *Store) *Repository {
	return &Repository{
		store: s,

		Tasks:           NewSlot(s, constants.KeyTasks, emptySlice[models.Task], nonNil[models.Task]),
		Habits:          NewSlot(s, constants.KeyHabits, emptySlice[models.Habit], normalizeHabits),
		WaterLogs:       NewSlot(s, constants.KeyWaterLogs, emptySlice[models.WaterLog], nonNil[models.WaterLog]),
		WaterGoal:       NewSlot(s, constants.KeyWaterGoal, func() models.Number { return constants.DefaultWaterGoalMl }, nil),
		WaterMilestones: NewSlot(s, constants.KeyWaterMilestones, models.DefaultWaterMilestones, nonNil[models.WaterMilestone]),
		WaterSchedule:   NewSlot(s, constants.KeyWaterSchedule, emptySlice[models.WaterScheduleSlot], normalizeSchedule),
		Meals:           NewSlot(s, constants.KeyMeals, emptySlice[models.MealEntry], nonNil[models.MealEntry]),
		Mistakes:        NewSlot(s, constants.KeyMistakeGraveyard, emptySlice[models.MistakeEntry], nonNil[models.MistakeEntry]),
		Timetable:       NewSlot(s, constants.KeyTimetable, emptySlice[models.TimetableEntry], nonNil[models.TimetableEntry]),
		Strategies:      NewSlot(s, constants.KeyStrategies, emptySlice[models.Strategy], normalizeStrategies),
		Diary:           NewSlot(s, constants.KeyDiaryEntries, func() models.DiaryEntries { return models.DiaryEntries{} }, normalizeDiary),
		VaultPin:        NewSlot(s, constants.KeyVaultPin, func() string { return "" }, nil),
		Profile:         NewSlot(s, constants.KeyProfile, func() models.UserProfile { return models.UserProfile{} }, nil),
		Theme:           NewSlot(s, constants.KeyTheme, func() models.Theme { return constants.DefaultTheme }, normalizeTheme),
		SidebarHidden:   NewSlot(s, constants.KeySidebarHidden, func() bool { return constants.DefaultSidebarHidden }, nil),
	}
}

// Store returns the backing keyed store.
func (r *Repository) Store() *Store { return r.store }

// Wipe clears every persisted key. Subsequent reads return defaults.
func (r *Repository) Wipe() error { return r.store.Wipe() }

// Pin returns the stored vault PIN, or "" when none has been set.
func (r *Repository) Pin() string { return r.VaultPin.Get() }

// SetPin stores the vault PIN.
func (r *Repository) SetPin(pin string) { r.VaultPin.Set(pin) }
