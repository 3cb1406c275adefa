// Package identity handles the stored display name and the time-of-day
// greeting shown on the About panel.
package identity

import (
	"fmt"
	"strings"
	"time"

	"vitrine/internal/prefs"
)

// Greeting returns the salutation for the given time: morning before
// 12:00, afternoon before 18:00, evening otherwise. A stored name is
// appended as ", {name}"; otherwise the greeting ends with "!".
func Greeting(now time.Time, name string) string {
	var part string
	switch h := now.Hour(); {
	case h < 12:
		part = "Good morning"
	case h < 18:
		part = "Good afternoon"
	default:
		part = "Good evening"
	}
	if name != "" {
		return fmt.Sprintf("%s, %s", part, name)
	}
	return part + "!"
}

// Name returns the stored display name, or empty if none is set.
func Name(store *prefs.Store) string {
	return store.GetString(prefs.KeyName, "")
}

// SetName trims and persists the display name. Blank input is ignored so
// an accidental empty submit never clears an existing name.
func SetName(store *prefs.Store, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return store.Set(prefs.KeyName, name)
}

// ClearName removes the stored display name.
func ClearName(store *prefs.Store) error {
	return store.Delete(prefs.KeyName)
}
