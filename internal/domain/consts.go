package domain

import "time"

// ChannelKind names a destination role in the channel config
type ChannelKind string

const (
	ChannelAnnounce  ChannelKind = "announce"
	ChannelSpotlight ChannelKind = "spotlight"
	ChannelFeedback  ChannelKind = "feedback"
	ChannelLogs      ChannelKind = "logs"
	ChannelWelcome   ChannelKind = "welcome"
)

// ChannelKinds lists every kind in the order they are persisted
var ChannelKinds = []ChannelKind{
	ChannelAnnounce,
	ChannelSpotlight,
	ChannelFeedback,
	ChannelLogs,
	ChannelWelcome,
}

// ParseChannelKind maps user input to a known kind
func ParseChannelKind(s string) (ChannelKind, error) {
	for _, k := range ChannelKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// AnnouncementType selects which weekly announcement the composer builds
type AnnouncementType string

const (
	AnnouncementOpening AnnouncementType = "opening"
	AnnouncementClosing AnnouncementType = "closing"
)

// ParseAnnouncementType maps user input to a known announcement type
func ParseAnnouncementType(s string) (AnnouncementType, error) {
	switch AnnouncementType(s) {
	case AnnouncementOpening, AnnouncementClosing:
		return AnnouncementType(s), nil
	}
	return "", ErrUnknownAnnouncement
}

// ScheduleEvent is one of the fixed weekly triggers
type ScheduleEvent string

const (
	EventOpening         ScheduleEvent = "opening"
	EventQuiz            ScheduleEvent = "quiz"
	EventSpotlight       ScheduleEvent = "spotlight"
	EventClosing         ScheduleEvent = "closing"
	EventPresenceRefresh ScheduleEvent = "presence_refresh"
)

// EventSpecs binds every event to its cron expression (minute hour dom month dow),
// evaluated in the configured timezone
var EventSpecs = map[ScheduleEvent]string{
	EventOpening:         "0 0 * * 1",
	EventQuiz:            "0 19 * * 2",
	EventSpotlight:       "0 16 * * 3",
	EventClosing:         "59 18 * * 4",
	EventPresenceRefresh: "0 * * * *",
}

// Closing deadline shown as a countdown on the closing announcement
const (
	ClosingWeekday = time.Thursday
	ClosingHour    = 19
	ClosingMinute  = 0
)

// WeekNumberPlaceholder is replaced in announcement templates
const WeekNumberPlaceholder = "{WEEK_NUMBER}"

// DefaultTimezone is used when no timezone is configured
const DefaultTimezone = "Europe/Paris"

// Quiz listening window bounds
const (
	DefaultQuizWindow = 2 * time.Hour
	QuizMaxMatches    = 1
)

// Component custom ids
const (
	FeedbackButtonID = "feedback_open"
	FeedbackModalID  = "feedback_modal"
	FeedbackInputID  = "feedback_text"
)

// ActivityHistoryDays bounds the rolling daily message histogram
const ActivityHistoryDays = 30
