// Package tui is the interactive LifeOS shell.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/focus"
	"github.com/julianstephens/lifeos/internal/notifier"
	"github.com/julianstephens/lifeos/internal/tui/components/habits"
	"github.com/julianstephens/lifeos/internal/tui/components/tasklist"
	"github.com/julianstephens/lifeos/internal/vault"
)

type Tab int

const (
	TabDashboard Tab = iota
	TabTasks
	TabHabits
	TabWater
	TabFocus
	TabDiary
	tabCount
)

var tabTitles = [tabCount]string{"Dashboard", "Tasks", "Habits", "Water", "Focus", "Diary"}

func (t Tab) String() string { return tabTitles[t] }

type formKind int

const (
	formTask formKind = iota + 1
	formHabit
)

// confirmation guards a destructive action behind y/n.
type confirmation struct {
	prompt string
	action func() (string, error)
}

type (
	tickMsg  time.Time
	vaultMsg struct{}
)

type Model struct {
	app      *app.App
	notifier *notifier.Notifier
	vault    *vault.Vault
	vaultCh  chan struct{}

	tab      Tab
	today    string
	keys     KeyMap
	help     help.Model
	styles   styles
	progress progress.Model

	tasks   tasklist.Model
	habits  habits.Model
	timer   *focus.Timer
	editor  textarea.Model
	editing bool

	form     *huh.Form
	formKind formKind
	draft    *string
	confirm  *confirmation

	status   string
	err      error
	width    int
	height   int
	quitting bool
}

// New builds the shell over a. n may be nil, in which case finished focus
// sessions are not announced.
func New(a *app.App, n *notifier.Notifier) Model {
	return newModel(a, n)
}

func newModel(a *app.App, n *notifier.Notifier, opts ...vault.Option) Model {
	ch := make(chan struct{}, 1)
	today := a.Today()
	vopts := append([]vault.Option{
		vault.WithDate(today),
		vault.WithNotify(func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		}),
	}, opts...)

	editor := textarea.New()
	editor.Placeholder = "How did today go?"
	editor.ShowLineNumbers = false

	return Model{
		app:      a,
		notifier: n,
		vault:    vault.New(a.Repository(), vopts...),
		vaultCh:  ch,
		today:    today,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   newStyles(a.Theme()),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		tasks:    tasklist.New(a.Tasks(), 0, 0),
		habits:   habits.New(a.Habits(), today, 0, 0),
		timer:    focus.New(),
		editor:   editor,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitVault(m.vaultCh))
}

func tick() tea.Cmd {
	return tea.Tick(constants.ClockTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitVault turns vault timer transitions into messages so the keypad
// re-renders without input.
func waitVault(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return vaultMsg{}
	}
}

// refresh reloads list state after a mutation.
func (m *Model) refresh() {
	m.tasks.SetTasks(m.app.Tasks())
	m.habits.SetHabits(m.app.Habits(), m.today)
	m.styles = newStyles(m.app.Theme())
}

func (m *Model) report(err error, ok string) {
	m.err = err
	if err != nil {
		m.status = ""
	} else {
		m.status = ok
	}
	m.refresh()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	return append(keys, m.tabKeys()...)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Theme, m.keys.Sidebar, m.keys.Quit, m.keys.Help}
	return [][]key.Binding{global, m.tabKeys()}
}

func (m Model) tabKeys() []key.Binding {
	switch {
	case m.confirm != nil:
		return []key.Binding{m.keys.Yes, m.keys.No}
	case m.form != nil:
		return []key.Binding{m.keys.Cancel}
	case m.editing:
		return []key.Binding{m.keys.Save, m.keys.Cancel}
	}
	switch m.tab {
	case TabTasks:
		k := tasklist.DefaultKeyMap()
		return []key.Binding{k.Add, k.Toggle, k.Delete}
	case TabHabits:
		k := habits.DefaultKeyMap()
		return []key.Binding{k.Add, k.CheckIn, k.Delete}
	case TabWater:
		return []key.Binding{m.keys.Drink, m.keys.Reset}
	case TabFocus:
		return []key.Binding{m.keys.Start, m.keys.Reset, m.keys.Mode}
	case TabDiary:
		if m.vault.State() == vault.Unlocked {
			return []key.Binding{m.keys.Edit, m.keys.Lock}
		}
	}
	return nil
}
