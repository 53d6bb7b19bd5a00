package models

import "strings"

// UserProfile is the singleton profile record. Photo holds a data URL.
type UserProfile struct {
	Name  string  `json:"name"`
	Photo *string `json:"photo"`
}

// DiaryEntries maps a YYYY-MM-DD date to that day's free text.
type DiaryEntries map[string]string

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme. Anything other than dark becomes dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
