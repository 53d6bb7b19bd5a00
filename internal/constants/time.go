package constants

import "time"

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"
)

// Vault delays. The check delay lets the fourth dot render before the PIN is
// compared; success and error delays hold the feedback animation.
const (
	PinCheckDelay   = 300 * time.Millisecond
	PinSuccessDelay = 800 * time.Millisecond
	PinErrorDelay   = 500 * time.Millisecond
)

const (
	// ClockTickInterval drives clocks and running countdowns.
	ClockTickInterval = time.Second
	// SipRefreshInterval refreshes the "last sip" label.
	SipRefreshInterval = time.Minute

	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)
