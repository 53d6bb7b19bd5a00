package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/focus"
	"github.com/julianstephens/lifeos/internal/vault"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.form != nil:
		content = m.form.View()
	case m.confirm != nil:
		content = m.viewConfirm()
	default:
		switch m.tab {
		case TabDashboard:
			content = m.viewDashboard()
		case TabTasks:
			content = m.tasks.View()
		case TabHabits:
			content = m.habits.View()
		case TabWater:
			content = m.viewWater()
		case TabFocus:
			content = m.viewFocus()
		case TabDiary:
			content = m.viewDiary()
		}
	}

	var parts []string
	if !m.app.SidebarHidden() {
		parts = append(parts, m.viewTabs())
	}
	parts = append(parts, m.styles.doc.Render(content), m.viewStatus(), m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if m.tab == Tab(i) {
			tabs = append(tabs, m.styles.activeTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.inactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return m.styles.danger.Render("  " + m.err.Error())
	}
	if m.status != "" {
		return m.styles.ok.Render("  " + m.status)
	}
	return ""
}

func (m Model) viewConfirm() string {
	return fmt.Sprintf("%s\n\n%s",
		m.styles.danger.Render(m.confirm.prompt),
		m.styles.muted.Render("y to confirm, n to cancel"))
}

func (m Model) bar(percent int) string {
	return m.progress.ViewAs(float64(percent) / 100)
}

func (m Model) viewDashboard() string {
	now := m.app.Now()
	s := m.app.Dashboard(m.today, now)
	name := m.app.Profile().Name
	if name == "" {
		name = "there"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.styles.heading.Render("Hello, "+name))
	fmt.Fprintf(&b, "%s\n\n", m.styles.muted.Render(now.Format("Monday 02 January · 15:04:05")))

	fmt.Fprintf(&b, "Tasks       %s  %d/%d done\n", m.bar(s.TaskEfficiency), s.TasksDone, s.TasksTotal)
	fmt.Fprintf(&b, "Hydration   %s  %g of %g ml\n", m.bar(s.Hydration.Progress), s.Hydration.Total, s.Hydration.Goal)
	habitLine := fmt.Sprintf("%d active, avg streak %d", s.Habits.Active, s.Habits.AverageStreak)
	if s.Habits.PerfectDay {
		habitLine += m.styles.ok.Render("  perfect day")
	}
	fmt.Fprintf(&b, "Habits      %s\n", habitLine)
	fmt.Fprintf(&b, "Nutrition   %.0f kcal  P %.0fg  C %.0fg  F %.0fg\n",
		s.Nutrition.Calories, s.Nutrition.Protein, s.Nutrition.Carbs, s.Nutrition.Fats)

	if s.UpcomingEvent != nil {
		fmt.Fprintf(&b, "Up next     %s %s\n", s.UpcomingEvent.StartTime, s.UpcomingEvent.Title)
	} else {
		fmt.Fprintf(&b, "Up next     %s\n", m.styles.muted.Render("nothing scheduled"))
	}
	if s.ActiveStrategy != nil {
		fmt.Fprintf(&b, "Strategy    %s  %s\n", m.bar(s.StrategyProgress), s.ActiveStrategy.Name)
	}
	fmt.Fprintf(&b, "Mistakes    %d buried\n", s.MistakeCount)
	fmt.Fprintf(&b, "Diary       %s", s.DiaryStatus)
	return b.String()
}

func (m Model) viewWater() string {
	v := m.app.Water()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.styles.heading.Render("Hydration"))
	fmt.Fprintf(&b, "%s\n", m.bar(v.Status.Progress))
	fmt.Fprintf(&b, "%g of %g ml · %g ml to go\n", v.Status.Total, v.Status.Goal, v.Status.Remaining)
	fmt.Fprintf(&b, "%s\n", m.styles.muted.Render("Last sip: "+v.LastSip))

	if len(v.Schedule) > 0 {
		fmt.Fprintf(&b, "\n%s\n", m.styles.heading.Render("Schedule"))
		for _, slot := range v.Schedule {
			mark := "○"
			if derive.SlotDone(slot, v.Today) {
				mark = m.styles.ok.Render("✓")
			}
			fmt.Fprintf(&b, "%s %s  %-20s %g ml\n", mark, slot.Time, slot.Label, slot.Amount.Float())
		}
	}
	if len(v.Milestones) > 0 {
		fmt.Fprintf(&b, "\n%s\n", m.styles.heading.Render("Milestones"))
		for _, ms := range v.Milestones {
			mark := "○"
			if ms.Reached {
				mark = m.styles.ok.Render("★")
			}
			fmt.Fprintf(&b, "%s %-20s %g ml\n", mark, ms.Milestone.Label, ms.Milestone.Amount.Float())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewFocus() string {
	title := "Focus"
	if m.timer.Mode == focus.ModeBreak {
		title = "Break"
	}
	state := "paused"
	if m.timer.Running {
		state = "running"
	}
	elapsed := 1 - m.timer.Progress()
	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s",
		m.styles.heading.Render(title),
		lipgloss.NewStyle().Bold(true).Render(m.timer.Format()),
		m.progress.ViewAs(elapsed),
		m.styles.muted.Render(fmt.Sprintf("%s · %d min work / %d min break", state, m.timer.WorkMin, m.timer.BreakMin)))
}

func (m Model) viewDiary() string {
	snap := m.vault.Snapshot()
	if snap.State == vault.Locked {
		return m.viewKeypad(snap)
	}

	header := m.styles.heading.Render(fmt.Sprintf("Diary · %s · %s", m.today, m.app.DiaryStatus(m.today)))
	if m.editing {
		return header + "\n\n" + m.editor.View()
	}
	entry := m.app.DiaryEntry(m.today)
	if entry == "" {
		entry = m.styles.muted.Render("Nothing written yet. Press e to write.")
	}
	return header + "\n\n" + entry
}

func (m Model) viewKeypad(snap vault.Snapshot) string {
	title := "Diary locked"
	switch {
	case snap.Setup && snap.Confirming:
		title = "Repeat your new PIN"
	case snap.Setup:
		title = "Choose a PIN"
	}

	dots := make([]string, constants.PinLength)
	for i := range dots {
		dots[i] = "○"
		if i < snap.Input {
			dots[i] = "●"
		}
	}

	var note string
	switch {
	case snap.Checking:
		note = m.styles.muted.Render("checking…")
	case snap.Success:
		note = m.styles.ok.Render("unlocked")
	case snap.Error && snap.Setup:
		note = m.styles.danger.Render("PINs did not match")
	case snap.Error:
		note = m.styles.danger.Render("wrong PIN")
	default:
		note = m.styles.muted.Render("type digits, backspace to erase")
	}

	return m.styles.keypad.Render(fmt.Sprintf("%s\n\n%s\n\n%s",
		m.styles.heading.Render(title), strings.Join(dots, " "), note))
}
