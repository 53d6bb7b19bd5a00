package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifeos/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks that the string is a zero-padded 24-hour HH:MM time.
// Padding matters: times are ordered by plain string comparison.
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != len(constants.TimeFormat) {
		return false
	}
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDate checks that the string is a YYYY-MM-DD calendar date.
func ValidateDate(dateStr string) bool {
	if len(dateStr) != len(constants.DateFormat) {
		return false
	}
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %w", err)
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// PreviousDay returns the calendar day before dateStr.
func PreviousDay(dateStr string) (string, error) {
	return AddDays(dateStr, -1)
}

// NowMillis returns t as Unix milliseconds, the timestamp unit used in stored records.
func NowMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatSince renders the elapsed time between a millisecond timestamp and now
// as "Just now", "Nm ago" or "Hh Mm ago".
func FormatSince(millis int64, now time.Time) string {
	diff := now.Sub(time.UnixMilli(millis))
	mins := int(diff / time.Minute)
	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	default:
		return fmt.Sprintf("%dh %dm ago", mins/60, mins%60)
	}
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
