package k8s

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as a kubectl-style age using the
// largest whole unit: "45s", "30m", "2h", "5d". Units are never combined.
// Zero and negative durations render as "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

// FormatAge renders the elapsed time since t as an age string.
func FormatAge(t time.Time) string {
	return FormatDuration(time.Since(t))
}
