package presence

import (
	"fmt"
	"time"
)

// Status derives the bot's short status line. A non-empty override bypasses
// the table.
func Status(weekday time.Weekday, hour, weekNumber int, override string) string {
	if override != "" {
		return override
	}

	label := fmt.Sprintf("Week %d", weekNumber)

	switch {
	case weekday == time.Monday:
		return label + " · LIVE"
	case weekday == time.Tuesday && hour >= 18:
		return label + " · Quiz Time"
	case weekday == time.Wednesday && hour >= 12 && hour < 18:
		return label + " · Spotlight"
	case weekday == time.Thursday && hour < 19:
		return label + " · Closing Soon"
	case weekday == time.Thursday:
		return label + " · Locked"
	}
	return label
}

// At is Status evaluated for an instant already expressed in the bot's timezone.
func At(t time.Time, weekNumber int, override string) string {
	return Status(t.Weekday(), t.Hour(), weekNumber, override)
}
