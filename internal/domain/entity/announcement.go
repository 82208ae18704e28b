package entity

import "github.com/diegoclair/athlete-weekly-bot/internal/domain"

// AnnouncementConfig holds the editable template for one weekly announcement
type AnnouncementConfig struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	ImageName              string   `json:"imageName"`
	Color                  string   `json:"color"`
	FooterText             string   `json:"footerText"`
	PlayURL                string   `json:"playUrl"`
	LeaderboardURL         string   `json:"leaderboardUrl"`
	PlayButtonLabel        string   `json:"playButtonLabel"`
	LeaderboardButtonLabel string   `json:"leaderboardButtonLabel"`
	ShowPlayButton         bool     `json:"showPlayButton"`
	ShowLeaderboardButton  bool     `json:"showLeaderboardButton"`
	ShowFeedbackButton     bool     `json:"showFeedbackButton"`
	Reactions              []string `json:"reactions,omitempty"`
}

// AnnouncementSettings is the persisted announcement file
type AnnouncementSettings struct {
	Opening AnnouncementConfig `json:"opening"`
	Closing AnnouncementConfig `json:"closing"`
}

// Get returns the config for the given type
func (s AnnouncementSettings) Get(t domain.AnnouncementType) AnnouncementConfig {
	if t == domain.AnnouncementClosing {
		return s.Closing
	}
	return s.Opening
}

// Set replaces the config for the given type
func (s *AnnouncementSettings) Set(t domain.AnnouncementType, cfg AnnouncementConfig) {
	if t == domain.AnnouncementClosing {
		s.Closing = cfg
		return
	}
	s.Opening = cfg
}

// DefaultAnnouncementSettings returns the seed values every loaded config is merged over
func DefaultAnnouncementSettings() AnnouncementSettings {
	return AnnouncementSettings{
		Opening: AnnouncementConfig{
			Title:                  "🏁 Week {WEEK_NUMBER} is open!",
			Description:            "The week {WEEK_NUMBER} challenge is live. Make your picks before Thursday 19:00.",
			ImageName:              "opening.png",
			Color:                  "#2ECC71",
			FooterText:             "Good luck everyone!",
			PlayButtonLabel:        "Play now",
			LeaderboardButtonLabel: "Leaderboard",
			ShowPlayButton:         true,
			ShowLeaderboardButton:  true,
			ShowFeedbackButton:     true,
			Reactions:              []string{"🔥", "💪"},
		},
		Closing: AnnouncementConfig{
			Title:                  "⏰ Week {WEEK_NUMBER} closes soon",
			Description:            "Last call for week {WEEK_NUMBER}! Picks lock in a few moments.",
			ImageName:              "closing.png",
			Color:                  "#E74C3C",
			FooterText:             "See you Monday for the next round.",
			PlayButtonLabel:        "Play now",
			LeaderboardButtonLabel: "Leaderboard",
			ShowPlayButton:         true,
			ShowLeaderboardButton:  true,
			ShowFeedbackButton:     false,
			Reactions:              []string{"⏰"},
		},
	}
}
