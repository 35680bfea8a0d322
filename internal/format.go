package internal

import (
	"fmt"
	"time"
)

// DisplayTimeFormat is the standard time format used across the application
const DisplayTimeFormat = "2006-01-02 15:04:05"

// FormatLocal formats the given time in the standard display format (local time)
func FormatLocal(t time.Time) string {
	return t.Local().Format(DisplayTimeFormat)
}

// FormatRemaining renders the time left until expiry, "2h30m" style.
// Returns "expired" once the instant has passed.
func FormatRemaining(expires time.Time) string {
	remaining := time.Until(expires)
	if remaining <= 0 {
		return "expired"
	}

	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
