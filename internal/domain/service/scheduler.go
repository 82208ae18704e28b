package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/week"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/robfig/cron/v3"
)

const stopTimeout = 10 * time.Second

// Event outcomes reported to logs and metrics
const (
	outcomeOK      = "ok"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
	outcomePanic   = "panic"
)

var errAnnouncementFailed = errors.New("announcement was not sent")

// eventOrder fixes registration order so logs are stable
var eventOrder = []domain.ScheduleEvent{
	domain.EventOpening,
	domain.EventQuiz,
	domain.EventSpotlight,
	domain.EventClosing,
	domain.EventPresenceRefresh,
}

type scheduler struct {
	cron         *cron.Cron
	now          func() time.Time
	guard        *WeekGuard
	announcement contract.AnnouncementService
	quiz         contract.QuizService
	spotlight    contract.SpotlightService
	presence     contract.PresenceService
	metrics      *metrics.Manager

	mu         sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	running    bool
	registered bool
}

func newScheduler(
	loc *time.Location,
	now func() time.Time,
	announcement contract.AnnouncementService,
	quiz contract.QuizService,
	spotlight contract.SpotlightService,
	presence contract.PresenceService,
	m *metrics.Manager,
) *scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		now:          now,
		guard:        &WeekGuard{},
		announcement: announcement,
		quiz:         quiz,
		spotlight:    spotlight,
		presence:     presence,
		metrics:      m,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start registers the five weekly triggers and starts ticking. It can be
// called again after Stop.
func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if !s.registered {
		for _, event := range eventOrder {
			event := event
			spec := domain.EventSpecs[event]
			if _, err := s.cron.AddFunc(spec, func() { s.fire(event) }); err != nil {
				return fmt.Errorf("failed to schedule %s (%s): %w", event, spec, err)
			}
			logger.Info("event scheduled", "event", event, "spec", spec)
		}
		s.registered = true
	}

	// a previous Stop cancelled the events' context
	if s.ctx.Err() != nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
	}

	s.cron.Start()
	s.running = true
	logger.Info("scheduler started", "location", s.cron.Location().String())
	return nil
}

// Stop halts the triggers, cancels in-flight events and waits briefly for
// them to return.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	logger.Info("scheduler stopping...")

	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
	case <-time.After(stopTimeout):
		logger.Warn("scheduler stop timed out waiting for running events")
	}
	s.running = false
}

// fire runs one event in isolation: a failure or panic is logged and never
// affects the other events.
func (s *scheduler) fire(event domain.ScheduleEvent) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			outcome = outcomePanic
			logger.Error("scheduled event panicked", "event", event, "panic", fmt.Sprint(r))
			s.metrics.SchedulerRun(string(event), outcome)
		}
	}()

	logger.Debug("scheduled event firing", "event", event)

	var err error
	switch event {
	case domain.EventOpening:
		outcome, err = s.runWeekly(event, domain.AnnouncementOpening)
	case domain.EventClosing:
		outcome, err = s.runWeekly(event, domain.AnnouncementClosing)
	case domain.EventQuiz:
		outcome, err = s.runQuiz()
	case domain.EventSpotlight:
		outcome, err = s.runSpotlight()
	case domain.EventPresenceRefresh:
		s.presence.Refresh()
		outcome = outcomeOK
	default:
		outcome, err = outcomeFailed, fmt.Errorf("unknown event %q", event)
	}

	if err != nil {
		logger.Error("scheduled event failed", "event", event, "error", err)
	} else {
		logger.Info("scheduled event done", "event", event, "outcome", outcome)
	}
	s.metrics.SchedulerRun(string(event), outcome)
	return outcome
}

// runWeekly sends an announcement at most once per week key.
func (s *scheduler) runWeekly(event domain.ScheduleEvent, kind domain.AnnouncementType) (string, error) {
	key := week.Key(s.now())
	if s.guard.AlreadySent(event, key) {
		logger.Info("announcement already sent this week", "event", event, "week_key", key)
		return outcomeSkipped, nil
	}

	if !s.announcement.Send(s.ctx, kind, false) {
		return outcomeFailed, errAnnouncementFailed
	}

	s.guard.MarkSent(event, key)
	s.presence.Refresh()
	return outcomeOK, nil
}

func (s *scheduler) runQuiz() (string, error) {
	result, err := s.quiz.Run(s.ctx)
	if err != nil {
		return outcomeFailed, err
	}
	if result.Outcome == contract.QuizSkipped {
		return outcomeSkipped, nil
	}
	return outcomeOK, nil
}

func (s *scheduler) runSpotlight() (string, error) {
	posted, err := s.spotlight.Post(s.ctx)
	if err != nil {
		return outcomeFailed, err
	}
	if !posted {
		return outcomeSkipped, nil
	}
	s.presence.Refresh()
	return outcomeOK, nil
}
