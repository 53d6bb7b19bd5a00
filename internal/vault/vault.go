// Package vault implements the diary lock. A four digit PIN gates the diary;
// with no PIN stored the keypad runs a setup flow that asks for the new PIN
// twice. Feedback delays run on cancelable timers owned by the Vault.
package vault

import (
	"errors"
	"sync"
	"time"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/logger"
)

var (
	ErrWrongPin = errors.New("incorrect PIN")
	ErrNoPin    = errors.New("no vault PIN set")
	ErrLocked   = errors.New("diary is locked")
	ErrBusy     = errors.New("PIN check in progress")
)

// PinStore persists the vault PIN. An empty string means no PIN is set.
type PinStore interface {
	Pin() string
	SetPin(pin string)
}

// State is the lock state of the diary.
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Snapshot is a consistent view of the keypad for rendering.
type Snapshot struct {
	State      State
	Setup      bool
	Confirming bool // setup: first entry accepted, waiting for the repeat
	Input      int  // digits entered
	Checking   bool
	Success    bool
	Error      bool
	Date       string
}

type Option func(*Vault)

// WithScheduler replaces the time.AfterFunc scheduler.
func WithScheduler(s Scheduler) Option {
	return func(v *Vault) { v.sched = s }
}

// WithNotify registers a callback run after every timer-driven transition.
func WithNotify(fn func()) Option {
	return func(v *Vault) { v.notify = fn }
}

// WithDate sets the initially selected diary date.
func WithDate(date string) Option {
	return func(v *Vault) { v.date = date }
}

type Vault struct {
	mu     sync.Mutex
	pins   PinStore
	sched  Scheduler
	notify func()

	state     State
	input     string
	candidate string
	checking  bool
	success   bool
	failed    bool
	date      string

	nextID int
	timers map[int]Timer
}

// New returns a locked vault.
func New(pins PinStore, opts ...Option) *Vault {
	v := &Vault{
		pins:   pins,
		sched:  realScheduler{},
		timers: make(map[int]Timer),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Snapshot returns the current keypad state.
func (v *Vault) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		State:      v.state,
		Setup:      v.pins.Pin() == "",
		Confirming: v.candidate != "",
		Input:      len(v.input),
		Checking:   v.checking,
		Success:    v.success,
		Error:      v.failed,
		Date:       v.date,
	}
}

func (v *Vault) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Setup reports whether no PIN has been created yet.
func (v *Vault) Setup() bool {
	return v.pins.Pin() == ""
}

// Press enters one digit. It reports whether the digit was accepted.
func (v *Vault) Press(digit rune) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if digit < '0' || digit > '9' {
		return false
	}
	if v.state == Unlocked || v.checking || v.success || len(v.input) >= constants.PinLength {
		return false
	}
	v.input += string(digit)
	if len(v.input) == constants.PinLength {
		v.checking = true
		v.schedule(constants.PinCheckDelay, v.check)
	}
	return true
}

// Backspace removes the last digit unless a check is pending.
func (v *Vault) Backspace() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.checking || v.success || v.input == "" {
		return
	}
	v.input = v.input[:len(v.input)-1]
}

// Lock relocks the diary and discards partial input.
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lockLocked()
}

// SelectDate switches the diary date. Changing date relocks when a PIN exists.
func (v *Vault) SelectDate(date string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if date == v.date {
		return
	}
	v.date = date
	if v.pins.Pin() != "" {
		v.lockLocked()
	}
}

// Unlock checks pin synchronously for non-interactive callers.
func (v *Vault) Unlock(pin string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.checking || v.success {
		return ErrBusy
	}
	stored := v.pins.Pin()
	if stored == "" {
		return ErrNoPin
	}
	if pin != stored {
		logger.Debug("Vault unlock rejected", "date", v.date)
		return ErrWrongPin
	}
	v.state = Unlocked
	v.input = ""
	return nil
}

// Close cancels every pending timer. The vault stays usable but any
// in-flight check is dropped.
func (v *Vault) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelTimers()
	v.checking = false
	v.success = false
	v.failed = false
	v.input = ""
}

func (v *Vault) lockLocked() {
	v.cancelTimers()
	v.state = Locked
	v.input = ""
	v.candidate = ""
	v.checking = false
	v.success = false
	v.failed = false
}

func (v *Vault) cancelTimers() {
	for id, t := range v.timers {
		t.Stop()
		delete(v.timers, id)
	}
}

// schedule runs fn under the vault lock after d. Callers hold mu.
func (v *Vault) schedule(d time.Duration, fn func()) {
	v.nextID++
	id := v.nextID
	v.timers[id] = v.sched.AfterFunc(d, func() {
		v.mu.Lock()
		if _, live := v.timers[id]; !live {
			v.mu.Unlock()
			return
		}
		delete(v.timers, id)
		fn()
		notify := v.notify
		v.mu.Unlock()

		if notify != nil {
			notify()
		}
	})
}

// check resolves a full four digit entry. Runs under mu.
func (v *Vault) check() {
	v.checking = false
	entered := v.input
	stored := v.pins.Pin()

	switch {
	case stored == "" && v.candidate == "":
		v.candidate = entered
		v.input = ""
	case stored == "" && entered == v.candidate:
		v.pins.SetPin(entered)
		v.candidate = ""
		v.grant()
	case stored == "":
		v.candidate = ""
		v.reject()
	case entered == stored:
		v.grant()
	default:
		v.reject()
	}
}

func (v *Vault) grant() {
	v.success = true
	v.schedule(constants.PinSuccessDelay, func() {
		v.success = false
		v.state = Unlocked
		v.input = ""
	})
}

func (v *Vault) reject() {
	v.input = ""
	v.failed = true
	v.schedule(constants.PinErrorDelay, func() {
		v.failed = false
	})
}
