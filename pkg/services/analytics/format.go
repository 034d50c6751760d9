package analytics

import (
	"fmt"
	"time"
)

// FormatDuration renders a work duration as "3h 25m". Negative durations
// clamp to zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "0h 0m"
	}
	totalMinutes := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
