package service

import (
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

// Options carries everything the services need. Random and Now are optional.
type Options struct {
	DataManager      contract.DataManager
	Discord          contract.DiscordClient
	Stores           *storage.Stores
	Metrics          *metrics.Manager
	Location         *time.Location
	AssetsDir        string
	MentionRoleID    string
	GeneralChannelID string
	QuizWindow       time.Duration
	PresenceOverride string
	Random           Random
	Now              func() time.Time
}

type Instance struct {
	Announcement contract.AnnouncementService
	Spotlight    contract.SpotlightService
	Quiz         contract.QuizService
	Presence     contract.PresenceService
	Activity     contract.ActivityService
	Feedback     contract.FeedbackService
	Scheduler    *scheduler
}

func NewInstance(opts Options) *Instance {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().In(loc) }
	}
	random := opts.Random
	if random == nil {
		random = defaultRandom{}
	}
	window := opts.QuizWindow
	if window <= 0 {
		window = domain.DefaultQuizWindow
	}

	stores := opts.Stores
	activity := newActivity(stores.Activity, opts.Metrics, now)
	audit := &auditor{
		dm:       opts.DataManager,
		discord:  opts.Discord,
		channels: stores.Channels,
	}

	presence := &presenceService{
		discord:  opts.Discord,
		override: opts.PresenceOverride,
		now:      now,
	}

	announcement := &composer{
		discord:       opts.Discord,
		channels:      stores.Channels,
		announcements: stores.Announcements,
		activity:      activity,
		audit:         audit,
		metrics:       opts.Metrics,
		assetsDir:     opts.AssetsDir,
		mentionRoleID: opts.MentionRoleID,
		now:           now,
	}

	spotlight := &spotlightService{
		catalog:  stores.Athletes,
		state:    stores.Spotlight,
		random:   random,
		discord:  opts.Discord,
		channels: stores.Channels,
		activity: activity,
		audit:    audit,
		metrics:  opts.Metrics,
	}

	quiz := &quizService{
		pool:             spotlight,
		discord:          opts.Discord,
		channels:         stores.Channels,
		presence:         presence,
		activity:         activity,
		metrics:          opts.Metrics,
		generalChannelID: opts.GeneralChannelID,
		window:           window,
	}

	feedback := &feedbackService{
		dm:       opts.DataManager,
		discord:  opts.Discord,
		channels: stores.Channels,
		activity: activity,
		metrics:  opts.Metrics,
	}

	return &Instance{
		Announcement: announcement,
		Spotlight:    spotlight,
		Quiz:         quiz,
		Presence:     presence,
		Activity:     activity,
		Feedback:     feedback,
		Scheduler:    newScheduler(loc, now, announcement, quiz, spotlight, presence, opts.Metrics),
	}
}
