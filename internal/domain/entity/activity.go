package entity

import "time"

// ActivityStats is the persisted analytics file
type ActivityStats struct {
	TotalPostsSent   int            `json:"totalPostsSent"`
	TotalFeedback    int            `json:"totalFeedback"`
	TotalMessages    int            `json:"totalMessages"`
	TotalCommands    int            `json:"totalCommands"`
	SpotlightsPosted int            `json:"spotlightsPosted"`
	QuizzesPlayed    int            `json:"quizzesPlayed"`
	QuizzesWon       int            `json:"quizzesWon"`
	LastPostAt       *time.Time     `json:"lastPostAt"`
	LastOpeningAt    *time.Time     `json:"lastOpeningAt"`
	LastClosingAt    *time.Time     `json:"lastClosingAt"`
	LastFeedbackAt   *time.Time     `json:"lastFeedbackAt"`
	LastOpeningWeek  int            `json:"lastOpeningWeek"`
	LastError        *ActivityError `json:"lastError"`
	DailyMessages    map[string]int `json:"dailyMessages"`
}

// ActivityError records the most recent failure
type ActivityError struct {
	Message string    `json:"message"`
	Context string    `json:"context"`
	At      time.Time `json:"at"`
}

// DefaultActivityStats returns a zero-valued stats record ready to be merged over
func DefaultActivityStats() ActivityStats {
	return ActivityStats{DailyMessages: map[string]int{}}
}
