package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/focus"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/tui/components/habits"
	"github.com/julianstephens/lifeos/internal/tui/components/tasklist"
	"github.com/julianstephens/lifeos/internal/vault"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		return m, m.onTick()
	case vaultMsg:
		return m, waitVault(m.vaultCh)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.editing {
		return m.updateEditor(msg)
	}

	switch msg := msg.(type) {
	case tasklist.AddTaskMsg:
		return m, m.openForm(formTask, "New task")
	case tasklist.ToggleTaskMsg:
		t, err := m.app.ToggleTask(msg.ID)
		state := "pending"
		if t.Completed {
			state = "done"
		}
		m.report(err, fmt.Sprintf("%s marked %s", t.Text, state))
	case tasklist.DeleteTaskMsg:
		t, err := m.app.DeleteTask(msg.ID)
		m.report(err, "Deleted "+t.Text)
	case habits.AddHabitMsg:
		return m, m.openForm(formHabit, "New habit")
	case habits.CheckInMsg:
		h, changed, err := m.app.CheckInHabit(msg.ID, m.today)
		status := fmt.Sprintf("%s: %d day streak", h.Name, h.Streak)
		if err == nil && !changed {
			status = h.Name + " is already checked in today"
		}
		m.report(err, status)
	case habits.DeleteHabitMsg:
		a, id := m.app, msg.ID
		m.confirm = &confirmation{
			prompt: fmt.Sprintf("Delete habit %q and its streak?", msg.Name),
			action: func() (string, error) {
				h, err := a.DeleteHabit(id)
				return "Deleted " + h.Name, err
			},
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	body := max(height-8, 4)
	m.tasks.SetSize(width-4, body)
	m.habits.SetSize(width-4, body)
	m.editor.SetWidth(max(width-6, 20))
	m.editor.SetHeight(max(body-4, 3))
	m.progress.Width = min(max(width-30, 10), 50)
}

// onTick drives the clock, the focus countdown and the day rollover.
func (m *Model) onTick() tea.Cmd {
	cmds := []tea.Cmd{tick()}

	if m.timer.Tick() {
		mode := string(m.timer.Mode)
		m.status = "Focus session complete"
		if m.timer.Mode == focus.ModeBreak {
			m.status = "Break is over"
		}
		if n := m.notifier; n != nil {
			cmds = append(cmds, func() tea.Msg {
				n.FocusFinished(context.Background(), mode)
				return nil
			})
		}
	}

	if today := m.app.Today(); today != m.today {
		logger.Debug("Day rolled over", "from", m.today, "to", today)
		m.today = today
		m.vault.SelectDate(today)
		m.refresh()
	}
	return tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, m.keys.Yes):
			c := m.confirm
			m.confirm = nil
			status, err := c.action()
			m.report(err, status)
		case key.Matches(msg, m.keys.No):
			m.confirm = nil
			m.status = "Cancelled"
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.vault.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.switchTab((m.tab + 1) % tabCount)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		theme := m.app.ToggleTheme()
		m.report(nil, "Theme: "+string(theme))
		return m, nil
	case key.Matches(msg, m.keys.Sidebar):
		m.app.ToggleSidebar()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case TabHabits:
		m.habits, cmd = m.habits.Update(msg)
	case TabWater:
		m.waterKey(msg)
	case TabFocus:
		m.focusKey(msg)
	case TabDiary:
		cmd = m.diaryKey(msg)
	}
	return m, cmd
}

// switchTab moves to t. Leaving the diary locks it again.
func (m *Model) switchTab(t Tab) {
	if m.tab == TabDiary && t != TabDiary {
		m.vault.Lock()
	}
	m.tab = t
	m.status, m.err = "", nil
}

func (m *Model) waterKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Drink):
		_, err := m.app.Drink(constants.QuickSipMl, "")
		m.report(err, fmt.Sprintf("+%d ml", constants.QuickSipMl))
	case key.Matches(msg, m.keys.Reset):
		a := m.app
		m.confirm = &confirmation{
			prompt: "Clear today's water log?",
			action: func() (string, error) {
				a.ResetToday()
				return "Water log cleared", nil
			},
		}
	}
}

func (m *Model) focusKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.timer.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Mode):
		next := focus.ModeBreak
		if m.timer.Mode == focus.ModeBreak {
			next = focus.ModeWork
		}
		m.timer.SwitchMode(next)
	}
}

func (m *Model) diaryKey(msg tea.KeyMsg) tea.Cmd {
	if m.vault.State() == vault.Locked {
		switch msg.Type {
		case tea.KeyBackspace:
			m.vault.Backspace()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.vault.Press(r)
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Lock):
		m.vault.Lock()
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.editor.SetValue(m.app.DiaryEntry(m.today))
		return m.editor.Focus()
	}
	return nil
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Save):
			err := m.app.SaveDiary(m.today, m.editor.Value())
			m.closeEditor()
			m.report(err, "Diary saved")
			return m, nil
		case key.Matches(k, m.keys.Cancel):
			m.closeEditor()
			m.status = "Discarded changes"
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) closeEditor() {
	m.editing = false
	m.editor.Blur()
	m.editor.Reset()
}

func (m *Model) openForm(kind formKind, title string) tea.Cmd {
	m.draft = new(string)
	m.formKind = kind
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(m.draft).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeBase()).WithShowHelp(false)
	return m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Cancel) {
		m.form = nil
		m.status = "Cancelled"
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitForm() {
	text := strings.TrimSpace(*m.draft)
	switch m.formKind {
	case formTask:
		t, err := m.app.AddTask(text)
		m.report(err, "Added "+t.Text)
	case formHabit:
		h, err := m.app.AddHabit(text)
		m.report(err, "Added "+h.Name)
	}
}
