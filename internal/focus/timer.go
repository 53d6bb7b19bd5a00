package focus

import (
	"context"
	"time"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/utils"
)

// TickInterval is how often a running timer counts down one second.
const TickInterval = constants.ClockTickInterval

type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// ParseMode accepts "work" or "break".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeWork, ModeBreak:
		return Mode(s), true
	}
	return "", false
}

// Timer is a pomodoro countdown. The zero value is not useful; use New.
type Timer struct {
	Mode      Mode
	WorkMin   int
	BreakMin  int
	Remaining int // seconds
	Running   bool
}

// New returns a paused work timer with the default durations.
func New() *Timer {
	t := &Timer{
		Mode:     ModeWork,
		WorkMin:  constants.DefaultWorkMinutes,
		BreakMin: constants.DefaultBreakMinutes,
	}
	t.Remaining = t.total()
	return t
}

func (t *Timer) total() int {
	if t.Mode == ModeBreak {
		return t.BreakMin * 60
	}
	return t.WorkMin * 60
}

// Toggle starts or pauses the countdown.
func (t *Timer) Toggle() {
	t.Running = !t.Running
}

// Reset pauses and refills the current mode.
func (t *Timer) Reset() {
	t.Running = false
	t.Remaining = t.total()
}

// SwitchMode pauses and starts the given mode from full.
func (t *Timer) SwitchMode(m Mode) {
	t.Mode = m
	t.Reset()
}

// SetDurations changes the work and break lengths in minutes. Negative values
// become zero. The current mode's countdown restarts at the new length.
func (t *Timer) SetDurations(workMin, breakMin int) {
	t.WorkMin = max(workMin, 0)
	t.BreakMin = max(breakMin, 0)
	t.Remaining = t.total()
}

// Tick counts down one second while running. It returns true when this tick
// finished the session, which also stops the timer.
func (t *Timer) Tick() bool {
	if !t.Running || t.Remaining <= 0 {
		return false
	}
	if t.Remaining <= 1 {
		t.Remaining = 0
		t.Running = false
		return true
	}
	t.Remaining--
	return false
}

// Progress is the fraction of the session still remaining, in [0,1].
func (t *Timer) Progress() float64 {
	total := t.total()
	if total <= 0 {
		return 0
	}
	p := float64(t.Remaining) / float64(total)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Format renders the remaining time as MM:SS.
func (t *Timer) Format() string {
	return utils.FormatClock(t.Remaining)
}

// Run starts t and ticks it every TickInterval until the session finishes or
// ctx is cancelled. onTick sees every tick; onDone runs once on completion,
// immediately when nothing remains. It returns ctx.Err() when cancelled.
func Run(ctx context.Context, t *Timer, onTick func(*Timer), onDone func(*Timer)) error {
	return run(ctx, t, TickInterval, onTick, onDone)
}

func run(ctx context.Context, t *Timer, interval time.Duration, onTick, onDone func(*Timer)) error {
	// An empty session is already over.
	if t.Remaining <= 0 {
		t.Running = false
		if onDone != nil {
			onDone(t)
		}
		return nil
	}

	t.Running = true
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Running = false
			return ctx.Err()
		case <-ticker.C:
			finished := t.Tick()
			if onTick != nil {
				onTick(t)
			}
			if finished {
				if onDone != nil {
					onDone(t)
				}
				return nil
			}
			if !t.Running {
				return nil
			}
		}
	}
}
