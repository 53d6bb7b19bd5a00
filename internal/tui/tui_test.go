package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/kv"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/storage"
	"github.com/julianstephens/lifeos/internal/tui/components/habits"
	"github.com/julianstephens/lifeos/internal/tui/components/tasklist"
	"github.com/julianstephens/lifeos/internal/vault"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	medium := storage.NewMemoryStore()
	if err := medium.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return app.New(kv.NewRepository(kv.New(medium)),
		app.WithClock(func() time.Time { return testNow }),
		app.WithLocation(time.UTC),
	)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	m := New(newTestApp(t), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != TabTasks {
		t.Errorf("after tab: %v, want Tasks", m.tab)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != TabDiary {
		t.Errorf("after wrapping back: %v, want Diary", m.tab)
	}
}

func TestThemeAndSidebarToggles(t *testing.T) {
	a := newTestApp(t)
	m := New(a, nil)

	if !strings.Contains(m.View(), "Water") {
		t.Fatal("tab bar should be visible by default")
	}

	m = update(t, m, runes("t"))
	if a.Theme() != models.ThemeLight {
		t.Errorf("theme = %q, want light", a.Theme())
	}

	m = update(t, m, runes("s"))
	if !a.SidebarHidden() {
		t.Fatal("sidebar should be hidden")
	}
	if strings.Contains(m.View(), "Water") {
		t.Error("tab bar rendered while hidden")
	}
}

func TestTasks(t *testing.T) {
	a := newTestApp(t)
	m := New(a, nil)
	m.tab = TabTasks

	m = update(t, m, tasklist.AddTaskMsg{})
	if m.form == nil {
		t.Fatal("add should open a form")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.form != nil || m.status != "Cancelled" {
		t.Fatalf("esc should cancel the form, status %q", m.status)
	}

	m = update(t, m, tasklist.AddTaskMsg{})
	*m.draft = "  Write report  "
	m.submitForm()
	m.form = nil

	tasks := a.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Write report" {
		t.Fatalf("tasks = %+v", tasks)
	}

	m = update(t, m, tasklist.ToggleTaskMsg{ID: tasks[0].ID})
	if !a.Tasks()[0].Completed {
		t.Error("task should be completed")
	}
	if m.status != "Write report marked done" {
		t.Errorf("status = %q", m.status)
	}

	m = update(t, m, tasklist.DeleteTaskMsg{ID: tasks[0].ID})
	if len(a.Tasks()) != 0 {
		t.Error("task should be deleted")
	}
	if m.err != nil {
		t.Errorf("err = %v", m.err)
	}
}

func TestTaskListKeys(t *testing.T) {
	l := tasklist.New([]models.Task{{ID: "t1", Text: "Read"}}, 40, 10)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"add", runes("a"), tasklist.AddTaskMsg{}},
		{"toggle", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, tasklist.ToggleTaskMsg{ID: "t1"}},
		{"delete", runes("d"), tasklist.DeleteTaskMsg{ID: "t1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := l.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestHabits(t *testing.T) {
	a := newTestApp(t)
	h, err := a.AddHabit("Read")
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	m := New(a, nil)
	m.tab = TabHabits

	m = update(t, m, habits.CheckInMsg{ID: h.ID})
	if m.status != "Read: 1 day streak" {
		t.Errorf("status = %q", m.status)
	}
	m = update(t, m, habits.CheckInMsg{ID: h.ID})
	if m.status != "Read is already checked in today" {
		t.Errorf("status = %q", m.status)
	}

	m = update(t, m, habits.DeleteHabitMsg{ID: h.ID, Name: h.Name})
	if m.confirm == nil {
		t.Fatal("delete should ask for confirmation")
	}
	m = update(t, m, runes("n"))
	if len(a.Habits()) != 1 {
		t.Fatal("declined delete removed the habit")
	}

	m = update(t, m, habits.DeleteHabitMsg{ID: h.ID, Name: h.Name})
	m = update(t, m, runes("y"))
	if len(a.Habits()) != 0 {
		t.Error("confirmed delete kept the habit")
	}
	if m.confirm != nil {
		t.Error("confirmation should be cleared")
	}
}

func TestWater(t *testing.T) {
	a := newTestApp(t)
	m := New(a, nil)
	m.tab = TabWater

	m = update(t, m, runes("+"))
	m = update(t, m, runes("+"))
	if got := a.Water().Status.Total; got != 2*constants.QuickSipMl {
		t.Errorf("total = %v, want %d", got, 2*constants.QuickSipMl)
	}

	m = update(t, m, runes("r"))
	if m.confirm == nil {
		t.Fatal("reset should ask for confirmation")
	}
	m = update(t, m, runes("y"))
	if got := a.Water().Status.Total; got != 0 {
		t.Errorf("total after reset = %v", got)
	}
	if m.status != "Water log cleared" {
		t.Errorf("status = %q", m.status)
	}
}

func TestFocus(t *testing.T) {
	m := New(newTestApp(t), nil)
	m.tab = TabFocus

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.timer.Running {
		t.Fatal("space should start the timer")
	}

	m.timer.Remaining = 2
	m = update(t, m, tickMsg(testNow))
	if m.timer.Remaining != 1 || !m.timer.Running {
		t.Fatalf("after one tick: %+v", *m.timer)
	}
	m = update(t, m, tickMsg(testNow))
	if m.timer.Running || m.status != "Focus session complete" {
		t.Errorf("session should finish, running=%v status=%q", m.timer.Running, m.status)
	}

	m = update(t, m, runes("m"))
	if m.timer.Remaining != constants.DefaultBreakMinutes*60 {
		t.Errorf("break remaining = %d", m.timer.Remaining)
	}
}

func TestDiaryKeypad(t *testing.T) {
	a := newTestApp(t)
	sched := vault.NewManualScheduler()
	m := newModel(a, nil, vault.WithScheduler(sched))
	m.tab = TabDiary

	m = update(t, m, runes("1234"))
	sched.Advance(constants.PinCheckDelay)
	if snap := m.vault.Snapshot(); !snap.Confirming {
		t.Fatalf("expected the confirm step, got %+v", snap)
	}

	m = update(t, m, runes("1234"))
	sched.Advance(constants.PinCheckDelay)
	sched.Advance(constants.PinSuccessDelay)
	if m.vault.State() != vault.Unlocked {
		t.Fatal("matching PINs should unlock")
	}
	if got := a.Repository().Pin(); got != "1234" {
		t.Errorf("stored PIN = %q", got)
	}

	m = update(t, m, runes("e"))
	if !m.editing {
		t.Fatal("e should open the editor")
	}
	m.editor.SetValue("Good day")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := a.DiaryEntry(""); got != "Good day" {
		t.Errorf("entry = %q", got)
	}
	if a.DiaryStatus("") != "REFLECTED" {
		t.Errorf("status = %q", a.DiaryStatus(""))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.vault.State() != vault.Locked {
		t.Error("leaving the diary should lock it")
	}
}

func TestDiaryWrongPin(t *testing.T) {
	a := newTestApp(t)
	a.Repository().SetPin("4321")
	sched := vault.NewManualScheduler()
	m := newModel(a, nil, vault.WithScheduler(sched))
	m.tab = TabDiary

	m = update(t, m, runes("1111"))
	sched.Advance(constants.PinCheckDelay)
	if !strings.Contains(m.View(), "wrong PIN") {
		t.Error("keypad should show the error")
	}
	sched.Advance(constants.PinErrorDelay)
	if snap := m.vault.Snapshot(); snap.Error || snap.Input != 0 {
		t.Errorf("error should clear, got %+v", snap)
	}
	if m.vault.State() != vault.Locked {
		t.Error("wrong PIN must not unlock")
	}
}
