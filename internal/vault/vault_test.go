package vault

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/lifeos/internal/constants"
)

type memPins struct {
	mu  sync.Mutex
	pin string
}

func (m *memPins) Pin() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pin
}

func (m *memPins) SetPin(pin string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pin = pin
}

func enter(v *Vault, pin string) {
	for _, r := range pin {
		v.Press(r)
	}
}

func newVault(pin string) (*Vault, *ManualScheduler, *memPins) {
	pins := &memPins{pin: pin}
	sched := NewManualScheduler()
	return New(pins, WithScheduler(sched), WithDate("2024-05-01")), sched, pins
}

func TestSetup_TwoMatchingEntries(t *testing.T) {
	v, sched, pins := newVault("")

	if !v.Setup() {
		t.Fatal("vault without a pin should be in setup mode")
	}

	enter(v, "1234")
	if snap := v.Snapshot(); !snap.Checking || snap.Input != 4 {
		t.Fatalf("after 4 digits: %+v", snap)
	}
	sched.Advance(constants.PinCheckDelay)

	snap := v.Snapshot()
	if !snap.Confirming || snap.Input != 0 {
		t.Fatalf("first entry should be held for confirmation: %+v", snap)
	}
	if pins.Pin() != "" {
		t.Fatal("pin must not be stored before confirmation")
	}

	enter(v, "1234")
	sched.Advance(constants.PinCheckDelay)
	if pins.Pin() != "1234" {
		t.Fatalf("pin = %q, want 1234", pins.Pin())
	}
	if snap := v.Snapshot(); !snap.Success || snap.State != Locked {
		t.Fatalf("expected success animation before unlock: %+v", snap)
	}

	sched.Advance(constants.PinSuccessDelay)
	if v.State() != Unlocked {
		t.Fatalf("state = %v, want unlocked", v.State())
	}
}

func TestSetup_MismatchRestarts(t *testing.T) {
	v, sched, pins := newVault("")

	enter(v, "1234")
	sched.Advance(constants.PinCheckDelay)
	enter(v, "4321")
	sched.Advance(constants.PinCheckDelay)

	snap := v.Snapshot()
	if !snap.Error || snap.Confirming || snap.Input != 0 {
		t.Fatalf("mismatch should flash error and restart: %+v", snap)
	}
	if pins.Pin() != "" {
		t.Fatalf("pin = %q, want empty", pins.Pin())
	}
	sched.Advance(constants.PinErrorDelay)
	if v.Snapshot().Error {
		t.Error("error flag should clear after the error delay")
	}
}

func TestUnlock_CorrectPin(t *testing.T) {
	v, sched, _ := newVault("1234")

	enter(v, "1234")
	sched.Advance(constants.PinCheckDelay - time.Millisecond)
	if v.Snapshot().Success {
		t.Fatal("check must wait for the check delay")
	}
	sched.Advance(time.Millisecond)
	if !v.Snapshot().Success {
		t.Fatal("expected success after the check delay")
	}
	sched.Advance(constants.PinSuccessDelay)
	if v.State() != Unlocked {
		t.Fatalf("state = %v, want unlocked", v.State())
	}
}

func TestUnlock_WrongPinFlashesError(t *testing.T) {
	v, sched, _ := newVault("1234")

	enter(v, "0000")
	sched.Advance(constants.PinCheckDelay)

	snap := v.Snapshot()
	if snap.State != Locked || !snap.Error || snap.Input != 0 {
		t.Fatalf("wrong pin: %+v", snap)
	}
	sched.Advance(constants.PinErrorDelay)
	if v.Snapshot().Error {
		t.Error("error should clear after the error delay")
	}

	// No lockout: the right pin still works.
	enter(v, "1234")
	sched.Advance(constants.PinCheckDelay + constants.PinSuccessDelay)
	if v.State() != Unlocked {
		t.Fatalf("state = %v, want unlocked", v.State())
	}
}

func TestPress_IgnoredWhilePending(t *testing.T) {
	v, sched, _ := newVault("1234")

	enter(v, "1234")
	if v.Press('5') {
		t.Error("fifth digit should be ignored")
	}
	if v.Press('x') {
		t.Error("non-digit should be ignored")
	}
	sched.Advance(constants.PinCheckDelay)
	if v.Press('1') {
		t.Error("digits should be ignored during the success animation")
	}
}

func TestBackspace(t *testing.T) {
	v, _, _ := newVault("1234")

	enter(v, "12")
	v.Backspace()
	if got := v.Snapshot().Input; got != 1 {
		t.Errorf("Input = %d, want 1", got)
	}
	v.Backspace()
	v.Backspace()
	if got := v.Snapshot().Input; got != 0 {
		t.Errorf("Input = %d, want 0", got)
	}
}

func TestSelectDate_LocksWhenPinExists(t *testing.T) {
	v, _, _ := newVault("1234")

	if err := v.Unlock("1234"); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	v.SelectDate("2024-05-01")
	if v.State() != Unlocked {
		t.Fatal("same date should not relock")
	}
	v.SelectDate("2024-05-02")
	if v.State() != Locked {
		t.Fatal("changing date should relock")
	}
}

func TestSelectDate_DuringCheckCancelsTimers(t *testing.T) {
	v, sched, _ := newVault("1234")

	enter(v, "1234")
	v.SelectDate("2024-05-02")
	if sched.Pending() != 0 {
		t.Fatalf("pending timers = %d, want 0", sched.Pending())
	}
	sched.Advance(time.Second)
	if v.State() != Locked {
		t.Fatal("cancelled check must not unlock")
	}
}

func TestLock(t *testing.T) {
	v, _, _ := newVault("1234")
	_ = v.Unlock("1234")
	v.Lock()
	if v.State() != Locked {
		t.Fatal("Lock() should lock")
	}
}

func TestUnlock_Errors(t *testing.T) {
	v, _, _ := newVault("")
	if err := v.Unlock("1234"); !errors.Is(err, ErrNoPin) {
		t.Errorf("Unlock() without pin = %v, want ErrNoPin", err)
	}

	v, _, _ = newVault("1234")
	if err := v.Unlock("9999"); !errors.Is(err, ErrWrongPin) {
		t.Errorf("Unlock(wrong) = %v, want ErrWrongPin", err)
	}
	enter(v, "1234")
	if err := v.Unlock("1234"); !errors.Is(err, ErrBusy) {
		t.Errorf("Unlock() while checking = %v, want ErrBusy", err)
	}
}

func TestClose_CancelsPending(t *testing.T) {
	v, sched, _ := newVault("1234")
	notified := 0
	v.notify = func() { notified++ }

	enter(v, "1234")
	v.Close()
	sched.Advance(time.Second)
	if v.State() != Locked || notified != 0 {
		t.Fatalf("closed vault changed state: %v, notified %d", v.State(), notified)
	}
}

func TestNotify_CalledOnTimerTransitions(t *testing.T) {
	pins := &memPins{pin: "1234"}
	sched := NewManualScheduler()
	notified := 0
	v := New(pins, WithScheduler(sched), WithNotify(func() { notified++ }))

	enter(v, "1234")
	sched.Advance(constants.PinCheckDelay + constants.PinSuccessDelay)
	if notified != 2 {
		t.Errorf("notified = %d, want 2", notified)
	}
}

func TestRealScheduler(t *testing.T) {
	pins := &memPins{pin: "1234"}
	done := make(chan struct{}, 4)
	v := New(pins, WithNotify(func() { done <- struct{}{} }))
	defer v.Close()

	enter(v, "1234")
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for vault timers")
		}
	}
	if v.State() != Unlocked {
		t.Fatalf("state = %v, want unlocked", v.State())
	}
}
