// Package week converts instants to the bot's fixed timezone and derives
// ISO-8601 week numbers and dedupe keys from them.
package week

import (
	"fmt"
	"time"
)

// NowIn returns the current instant expressed in loc, independent of the
// host's local timezone.
func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// Number returns the ISO-8601 week of t in [1,53]. The week holding the
// year's first Thursday is week 1, so early January days can belong to the
// last week of the previous year.
func Number(t time.Time) int {
	_, w := t.ISOWeek()
	return w
}

// Key returns the "{year}-W{week}" token used to detect an event that already
// fired this week. The year is the ISO week-year so the key never splits a
// week that straddles New Year.
func Key(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", y, w)
}

// DisplayNumber is the week shown on an announcement. A closing message sent
// on Sunday belongs to the week that is ending, so it shows the previous week.
func DisplayNumber(t time.Time, closing bool) int {
	if closing && t.Weekday() == time.Sunday {
		return Number(t.AddDate(0, 0, -7))
	}
	return Number(t)
}

// NextOccurrence returns the first instant at or after t falling on weekday
// at hour:minute in t's location.
func NextOccurrence(t time.Time, weekday time.Weekday, hour, minute int) time.Time {
	days := (int(weekday) - int(t.Weekday()) + 7) % 7
	candidate := time.Date(t.Year(), t.Month(), t.Day()+days, hour, minute, 0, 0, t.Location())
	if candidate.Before(t) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}

// DayKey formats t as YYYY-MM-DD for daily histograms.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
