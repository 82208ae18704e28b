package service

import (
	"sync"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
)

// WeekGuard remembers the last week key each weekly announcement fired for.
// It lives in memory only: a restart forgets it.
type WeekGuard struct {
	mu                sync.Mutex
	lastSentOpenWeek  string
	lastSentCloseWeek string
}

func (g *WeekGuard) slot(event domain.ScheduleEvent) *string {
	switch event {
	case domain.EventOpening:
		return &g.lastSentOpenWeek
	case domain.EventClosing:
		return &g.lastSentCloseWeek
	}
	return nil
}

// AlreadySent reports whether event already fired for key.
func (g *WeekGuard) AlreadySent(event domain.ScheduleEvent, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.slot(event)
	return s != nil && *s == key
}

// MarkSent records key as handled for event.
func (g *WeekGuard) MarkSent(event domain.ScheduleEvent, key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if s := g.slot(event); s != nil {
		*s = key
	}
}
