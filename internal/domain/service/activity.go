package service

import (
	"sync"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/week"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

type activityService struct {
	// mu serializes read-modify-write cycles issued by this process; writers
	// in other processes still race on the file.
	mu      sync.Mutex
	store   *storage.ActivityStore
	metrics *metrics.Manager
	now     func() time.Time
}

func newActivity(store *storage.ActivityStore, m *metrics.Manager, now func() time.Time) *activityService {
	return &activityService{
		store:   store,
		metrics: m,
		now:     now,
	}
}

func (s *activityService) update(fn func(stats *entity.ActivityStats)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.store.Load()
	fn(&stats)
	if err := s.store.Save(stats); err != nil {
		logger.Error("failed to save activity stats", "error", err)
	}
}

// RecordPost counts a posted announcement. weekNumber is stored only for the
// scheduled opening.
func (s *activityService) RecordPost(kind domain.AnnouncementType, weekNumber int, isManual bool) {
	now := s.now()
	s.update(func(stats *entity.ActivityStats) {
		stats.TotalPostsSent++
		stats.LastPostAt = &now
		switch kind {
		case domain.AnnouncementOpening:
			stats.LastOpeningAt = &now
			if !isManual {
				stats.LastOpeningWeek = weekNumber
			}
		case domain.AnnouncementClosing:
			stats.LastClosingAt = &now
		}
	})
}

func (s *activityService) RecordSpotlight() {
	now := s.now()
	s.update(func(stats *entity.ActivityStats) {
		stats.TotalPostsSent++
		stats.SpotlightsPosted++
		stats.LastPostAt = &now
	})
}

func (s *activityService) RecordQuiz(won bool) {
	s.update(func(stats *entity.ActivityStats) {
		stats.QuizzesPlayed++
		if won {
			stats.QuizzesWon++
		}
	})
}

func (s *activityService) RecordFeedback() {
	now := s.now()
	s.update(func(stats *entity.ActivityStats) {
		stats.TotalFeedback++
		stats.LastFeedbackAt = &now
	})
}

func (s *activityService) RecordCommand() {
	s.update(func(stats *entity.ActivityStats) {
		stats.TotalCommands++
	})
}

// RecordMessage bumps the message counters and the rolling daily histogram,
// dropping days older than the retention window.
func (s *activityService) RecordMessage() {
	now := s.now()
	today := week.DayKey(now)
	cutoff := week.DayKey(now.AddDate(0, 0, -(domain.ActivityHistoryDays - 1)))

	s.update(func(stats *entity.ActivityStats) {
		stats.TotalMessages++
		stats.DailyMessages[today]++
		for day := range stats.DailyMessages {
			if day < cutoff {
				delete(stats.DailyMessages, day)
			}
		}
	})
	s.metrics.MessageSeen()
}

func (s *activityService) RecordError(source string, err error) {
	if err == nil {
		return
	}
	now := s.now()
	s.update(func(stats *entity.ActivityStats) {
		stats.LastError = &entity.ActivityError{
			Message: err.Error(),
			Context: source,
			At:      now,
		}
	})
}

func (s *activityService) Stats() entity.ActivityStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load()
}
