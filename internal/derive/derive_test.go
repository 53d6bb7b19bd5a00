package derive

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/lifeos/internal/models"
)

func strPtr(s string) *string { return &s }

func TestEfficiency(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := Efficiency(tt.completed, tt.total); got != tt.want {
			t.Errorf("Efficiency(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestEfficiency_Bounds(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for completed := 0; completed <= total; completed++ {
			got := Efficiency(completed, total)
			if got < 0 || got > 100 {
				t.Fatalf("Efficiency(%d, %d) = %d out of range", completed, total, got)
			}
		}
	}
}

func TestTaskEfficiencyAndSplit(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3", Completed: true},
		{ID: "4"},
	}
	if got := TaskEfficiency(tasks); got != 50 {
		t.Errorf("TaskEfficiency() = %d, want 50", got)
	}
	active, done := SplitTasks(tasks)
	if len(active) != 2 || active[0].ID != "2" || active[1].ID != "4" {
		t.Errorf("active = %+v", active)
	}
	if len(done) != 2 || done[0].ID != "1" || done[1].ID != "3" {
		t.Errorf("completed = %+v", done)
	}
}

func TestCheckIn(t *testing.T) {
	base := models.Habit{ID: "h", Name: "Read", Streak: 5, LastCompletedDate: strPtr("2024-01-10")}

	t.Run("consecutive day increments", func(t *testing.T) {
		got, changed := CheckIn(base, "2024-01-11")
		if !changed || got.Streak != 6 || *got.LastCompletedDate != "2024-01-11" {
			t.Errorf("CheckIn() = %+v, %v", got, changed)
		}
	})

	t.Run("gap resets to one", func(t *testing.T) {
		got, changed := CheckIn(base, "2024-01-13")
		if !changed || got.Streak != 1 || *got.LastCompletedDate != "2024-01-13" {
			t.Errorf("CheckIn() = %+v, %v", got, changed)
		}
	})

	t.Run("first check-in", func(t *testing.T) {
		got, changed := CheckIn(models.Habit{ID: "n"}, "2024-01-01")
		if !changed || got.Streak != 1 || got.LastCompletedDate == nil {
			t.Errorf("CheckIn() = %+v, %v", got, changed)
		}
	})

	t.Run("same day is idempotent", func(t *testing.T) {
		once, _ := CheckIn(base, "2024-01-11")
		twice, changed := CheckIn(once, "2024-01-11")
		if changed {
			t.Error("second check-in reported a change")
		}
		if twice.Streak != once.Streak || *twice.LastCompletedDate != *once.LastCompletedDate {
			t.Errorf("second check-in = %+v, want %+v", twice, once)
		}
	})

	t.Run("month boundary", func(t *testing.T) {
		h := models.Habit{Streak: 2, LastCompletedDate: strPtr("2024-02-29")}
		got, _ := CheckIn(h, "2024-03-01")
		if got.Streak != 3 {
			t.Errorf("Streak = %d, want 3", got.Streak)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		CheckIn(base, "2024-01-11")
		if base.Streak != 5 || *base.LastCompletedDate != "2024-01-10" {
			t.Errorf("input mutated: %+v", base)
		}
	})
}

func TestHabitLevel(t *testing.T) {
	tests := []struct {
		streak   int
		tier     string
		next     int
		progress int
	}{
		{0, "SPARK", 7, 0},
		{3, "SPARK", 7, 43},
		{7, "BLAZE", 21, 33},
		{20, "BLAZE", 21, 95},
		{21, "INFERNO", 66, 32},
		{66, "PHOENIX", 100, 66},
		{150, "PHOENIX", 100, 100},
	}
	for _, tt := range tests {
		got := HabitLevel(tt.streak)
		if got.Tier != tt.tier || got.Next != tt.next || got.Progress != tt.progress {
			t.Errorf("HabitLevel(%d) = %+v, want {%s %d %d}", tt.streak, got, tt.tier, tt.next, tt.progress)
		}
	}
}

func TestHabitStats(t *testing.T) {
	today := "2024-06-01"
	habits := []models.Habit{
		{Streak: 4, LastCompletedDate: strPtr(today)},
		{Streak: 1, LastCompletedDate: strPtr(today)},
	}
	got := HabitStats(habits, today)
	if got.Active != 2 || got.TotalStreak != 5 || got.AverageStreak != 3 || !got.PerfectDay {
		t.Errorf("HabitStats() = %+v", got)
	}

	habits = append(habits, models.Habit{})
	if HabitStats(habits, today).PerfectDay {
		t.Error("PerfectDay with an unchecked habit")
	}
	if empty := HabitStats(nil, today); empty != (HabitSummary{}) {
		t.Errorf("HabitStats(nil) = %+v", empty)
	}
}

func TestHydration(t *testing.T) {
	logs := []models.WaterLog{{Amount: 1500}, {Amount: 1200}}
	got := Hydration(logs, 4000)
	want := HydrationStatus{Total: 2700, Goal: 4000, Progress: 68, Remaining: 1300}
	if got != want {
		t.Errorf("Hydration() = %+v, want %+v", got, want)
	}
}

func TestHydration_Clamped(t *testing.T) {
	got := Hydration([]models.WaterLog{{Amount: 5000}}, 4000)
	if got.Progress != 100 || got.Remaining != 0 {
		t.Errorf("Hydration() over goal = %+v", got)
	}
	if z := Hydration(nil, 0); z.Progress != 0 {
		t.Errorf("Hydration() zero goal = %+v", z)
	}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		goal := models.Number(r.Intn(5000) + 1)
		total := models.Number(r.Intn(10000))
		p := Hydration([]models.WaterLog{{Amount: total}}, goal).Progress
		if p < 0 || p > 100 {
			t.Fatalf("progress %d out of range for goal %v total %v", p, goal, total)
		}
	}
}

func TestMilestonesAndSlots(t *testing.T) {
	ms := Milestones(models.DefaultWaterMilestones(), 3000)
	reached := []bool{ms[0].Reached, ms[1].Reached, ms[2].Reached}
	if !reflect.DeepEqual(reached, []bool{true, true, false}) {
		t.Errorf("Milestones() reached = %v", reached)
	}

	slot := models.WaterScheduleSlot{CompletedDates: []string{"2024-06-01"}}
	if !SlotDone(slot, "2024-06-01") || SlotDone(slot, "2024-06-02") {
		t.Error("SlotDone() wrong")
	}
}

func TestLastSip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := LastSip(nil, now); got != "No sips today" {
		t.Errorf("LastSip(nil) = %q", got)
	}
	logs := []models.WaterLog{
		{Timestamp: now.Add(-3 * time.Hour).UnixMilli()},
		{Timestamp: now.Add(-75 * time.Minute).UnixMilli()},
	}
	if got := LastSip(logs, now); got != "1h 15m ago" {
		t.Errorf("LastSip() = %q, want 1h 15m ago", got)
	}
}

func TestMeals(t *testing.T) {
	meals := []models.MealEntry{
		{ID: "a", Date: "2024-06-01", Type: models.MealDinner, Time: "20:00", Calories: 600, Protein: 30, Carbs: 50, Fats: 20},
		{ID: "b", Date: "2024-06-01", Type: models.MealBreakfast, Time: "07:30", Calories: 300, Protein: 15, Carbs: 40, Fats: 5},
		{ID: "c", Date: "2024-06-02", Type: models.MealLunch, Time: "13:00", Calories: 999},
		{ID: "d", Date: "2024-06-01", Type: models.MealDinner, Time: "19:00", Calories: 100},
	}

	got := NutrientTotals(meals, "2024-06-01")
	want := Nutrients{Calories: 1000, Protein: 45, Carbs: 90, Fats: 25}
	if got != want {
		t.Errorf("NutrientTotals() = %+v, want %+v", got, want)
	}

	day := MealsForDate(meals, "2024-06-01")
	ids := []string{day[0].ID, day[1].ID, day[2].ID}
	if !reflect.DeepEqual(ids, []string{"b", "d", "a"}) {
		t.Errorf("MealsForDate() order = %v", ids)
	}

	groups := MealsByType(meals, "2024-06-01")
	if len(groups) != 4 {
		t.Fatalf("MealsByType() returned %d groups", len(groups))
	}
	if groups[0].Type != models.MealBreakfast || len(groups[0].Entries) != 1 {
		t.Errorf("breakfast group = %+v", groups[0])
	}
	if len(groups[1].Entries) != 0 || groups[1].Entries == nil {
		t.Errorf("lunch group = %+v", groups[1])
	}
	if groups[3].Totals.Calories != 700 {
		t.Errorf("dinner calories = %v, want 700", groups[3].Totals.Calories)
	}
}

func TestMistakeAnalytics(t *testing.T) {
	mistakes := []models.MistakeEntry{
		{Subject: "Physics", Tag: "Time Pressure"},
		{Subject: "Physics", Tag: "Calculation Error", IsExorcised: true},
		{Subject: "Chemistry", Tag: "Calculation Error"},
	}
	got := MistakeAnalytics(mistakes)
	if got.DeadliestSubject != (Count{"Physics", 2}) {
		t.Errorf("DeadliestSubject = %+v", got.DeadliestSubject)
	}
	if got.CommonCause != (Count{"Calculation Error", 2}) {
		t.Errorf("CommonCause = %+v", got.CommonCause)
	}
	if got.Total != 3 || got.Exorcised != 1 {
		t.Errorf("totals = %+v", got)
	}
}

func TestMistakeAnalytics_TiesAndEmpty(t *testing.T) {
	tie := []models.MistakeEntry{
		{Subject: "Maths", Tag: "A"},
		{Subject: "Physics", Tag: "B"},
		{Subject: "Physics", Tag: "A"},
		{Subject: "Maths", Tag: "B"},
	}
	got := MistakeAnalytics(tie)
	if got.DeadliestSubject.Label != "Maths" || got.CommonCause.Label != "A" {
		t.Errorf("tie break = %+v", got)
	}

	empty := MistakeAnalytics(nil)
	if empty.DeadliestSubject != (Count{"None", 0}) || empty.CommonCause != (Count{"None", 0}) {
		t.Errorf("empty = %+v", empty)
	}
}

type fixedIntn int

func (f fixedIntn) Intn(n int) int { return int(f) % n }

func TestHaunt(t *testing.T) {
	if _, ok := Haunt(nil, fixedIntn(0)); ok {
		t.Error("Haunt(nil) reported a pick")
	}
	ms := []models.MistakeEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got, ok := Haunt(ms, fixedIntn(4))
	if !ok || got.ID != "b" {
		t.Errorf("Haunt() = %+v, %v", got, ok)
	}
}

func TestFilterMistakes(t *testing.T) {
	ms := []models.MistakeEntry{
		{ID: "1", Subject: "Physics", Chapter: "Optics", Tag: "Time Pressure", Correction: "Use sign convention"},
		{ID: "2", Subject: "Chemistry", Chapter: "Mole Concept", Tag: "Calculation Error", Correction: "Check units"},
		{ID: "3", Subject: "Physics", Chapter: "Kinematics", Tag: "Question Misread", Correction: "Read twice"},
	}
	tests := []struct {
		query, subject string
		want           []string
	}{
		{"", "All", []string{"1", "2", "3"}},
		{"", "Physics", []string{"1", "3"}},
		{"OPTICS", "All", []string{"1"}},
		{"units", "", []string{"2"}},
		{"misread", "Chemistry", []string{}},
		{"physics", "All", []string{"1", "3"}},
	}
	for _, tt := range tests {
		got := FilterMistakes(ms, tt.query, tt.subject)
		ids := []string{}
		for _, m := range got {
			ids = append(ids, m.ID)
		}
		if !reflect.DeepEqual(ids, tt.want) {
			t.Errorf("FilterMistakes(%q, %q) = %v, want %v", tt.query, tt.subject, ids, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	ms := []models.MistakeEntry{
		{Subject: "Biology", Tag: "Calculation Error", Chapter: "Cells"},
		{Subject: "Physics", Tag: "Silly Slip", Chapter: ""},
		{Subject: "Biology", Tag: "Silly Slip", Chapter: "Cells"},
	}
	if got := SubjectOptions(ms); !reflect.DeepEqual(got, []string{"Physics", "Chemistry", "Maths", "Biology"}) {
		t.Errorf("SubjectOptions() = %v", got)
	}
	tags := TagOptions(ms)
	if tags[len(tags)-1] != "Silly Slip" || len(tags) != 6 {
		t.Errorf("TagOptions() = %v", tags)
	}
	if got := ChapterOptions(ms); !reflect.DeepEqual(got, []string{"Cells"}) {
		t.Errorf("ChapterOptions() = %v", got)
	}
}

func TestScheduleAndUpcoming(t *testing.T) {
	entries := []models.TimetableEntry{
		{ID: "c", Date: "2024-06-01", StartTime: "14:00", Title: "Chem"},
		{ID: "a", Date: "2024-06-01", StartTime: "08:00", Title: "Maths"},
		{ID: "x", Date: "2024-06-02", StartTime: "09:00", Title: "Other day"},
		{ID: "b", Date: "2024-06-01", StartTime: "10:30", Title: "Physics"},
	}
	day := DaySchedule(entries, "2024-06-01")
	if len(day) != 3 || day[0].ID != "a" || day[1].ID != "b" || day[2].ID != "c" {
		t.Errorf("DaySchedule() = %+v", day)
	}

	if e, ok := UpcomingEvent(entries, "2024-06-01", "10:30"); !ok || e.ID != "c" {
		t.Errorf("UpcomingEvent(10:30) = %+v, %v", e, ok)
	}
	if _, ok := UpcomingEvent(entries, "2024-06-01", "15:00"); ok {
		t.Error("UpcomingEvent(15:00) found an entry")
	}
}

func TestStrategyCompletion(t *testing.T) {
	s := models.Strategy{TotalDays: 3, Days: []models.StrategyDay{
		{Status: models.DayCompleted},
		{Status: models.DayInProgress},
		{Status: models.DayPending},
	}}
	if got := StrategyCompletion(s); got != 33 {
		t.Errorf("StrategyCompletion() = %d, want 33", got)
	}
	if got := StrategyCompletion(models.Strategy{}); got != 0 {
		t.Errorf("StrategyCompletion(empty) = %d", got)
	}
}

func TestDiary(t *testing.T) {
	entries := models.DiaryEntries{"2024-06-01": "Solved twenty problems today"}
	if DiaryStatus(entries, "2024-06-01") != "REFLECTED" || DiaryStatus(entries, "2024-06-02") != "PENDING" {
		t.Error("DiaryStatus() wrong")
	}
	if DiaryStatus(nil, "2024-06-01") != "PENDING" {
		t.Error("DiaryStatus(nil) wrong")
	}
	if got := WordCount("  Solved twenty\nproblems  "); got != 3 {
		t.Errorf("WordCount() = %d", got)
	}
}

func TestSummarize(t *testing.T) {
	date := "2024-06-01"
	snap := Snapshot{
		Tasks:     []models.Task{{Completed: true}, {}, {}},
		Habits:    []models.Habit{{Streak: 5}, {Streak: 2}},
		WaterLogs: []models.WaterLog{{Amount: 1000}},
		WaterGoal: 4000,
		Meals:     []models.MealEntry{{Date: date, Calories: 500, Protein: 25}},
		Mistakes:  []models.MistakeEntry{{}, {}},
		Timetable: []models.TimetableEntry{{Date: date, StartTime: "18:00", Title: "Revision"}},
		Strategies: []models.Strategy{
			{Name: "First", TotalDays: 2, Days: []models.StrategyDay{{Status: models.DayCompleted}, {Status: models.DayPending}}},
			{Name: "Second", TotalDays: 1},
		},
		Diary: models.DiaryEntries{date: "done"},
	}

	got := Summarize(snap, date, "12:00")
	if got.TaskEfficiency != 33 || got.TasksDone != 1 || got.TasksTotal != 3 {
		t.Errorf("tasks = %d %d/%d", got.TaskEfficiency, got.TasksDone, got.TasksTotal)
	}
	if got.UpcomingEvent == nil || got.UpcomingEvent.Title != "Revision" {
		t.Errorf("UpcomingEvent = %+v", got.UpcomingEvent)
	}
	if got.Hydration.Progress != 25 {
		t.Errorf("Hydration = %+v", got.Hydration)
	}
	if got.Nutrition.Calories != 500 || got.Nutrition.Protein != 25 {
		t.Errorf("Nutrition = %+v", got.Nutrition)
	}
	if got.Habits.AverageStreak != 4 {
		t.Errorf("AverageStreak = %d, want 4", got.Habits.AverageStreak)
	}
	if got.ActiveStrategy == nil || got.ActiveStrategy.Name != "First" || got.StrategyProgress != 50 {
		t.Errorf("strategy = %+v %d", got.ActiveStrategy, got.StrategyProgress)
	}
	if got.MistakeCount != 2 || got.DiaryStatus != "REFLECTED" {
		t.Errorf("analysis = %d %s", got.MistakeCount, got.DiaryStatus)
	}

	empty := Summarize(Snapshot{}, date, "12:00")
	if empty.TaskEfficiency != 0 || empty.ActiveStrategy != nil || empty.UpcomingEvent != nil || empty.DiaryStatus != "PENDING" {
		t.Errorf("empty summary = %+v", empty)
	}
}
