package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
)

// AnnouncementService composes and posts the weekly announcements
type AnnouncementService interface {
	Send(ctx context.Context, kind domain.AnnouncementType, isManual bool) bool
}

// SpotlightService manages the non-repeating athlete pool
type SpotlightService interface {
	DrawUnposted() (*entity.Athlete, bool)
	PreviewSample() (*entity.Athlete, bool)
	UnpostedCount() int
	Post(ctx context.Context) (bool, error)
}

// QuizService runs the weekly guess-the-athlete quiz
type QuizService interface {
	Run(ctx context.Context) (QuizResult, error)
}

// PresenceService keeps the bot's status line current
type PresenceService interface {
	Refresh() string
}

// ActivityService tracks engagement counters
type ActivityService interface {
	RecordMessage()
	RecordCommand()
	Stats() entity.ActivityStats
}

// FeedbackService stores feedback submissions
type FeedbackService interface {
	Submit(ctx context.Context, userID, userName, source, message string) (*entity.Feedback, error)
}

// QuizOutcome is the terminal state of a quiz listening window
type QuizOutcome string

const (
	QuizMatched  QuizOutcome = "matched"
	QuizTimedOut QuizOutcome = "timed_out"
	QuizSkipped  QuizOutcome = "skipped"
)

type QuizResult struct {
	Outcome  QuizOutcome
	Athlete  string
	WinnerID string
}
