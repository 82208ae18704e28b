// Package metrics exposes Prometheus counters for the weekly announcement bot.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weeklybot"

// Manager owns every collector. A nil *Manager is valid and records nothing.
type Manager struct {
	announcementsSent   *prometheus.CounterVec
	announcementsFailed *prometheus.CounterVec
	schedulerRuns       *prometheus.CounterVec
	quizOutcomes        *prometheus.CounterVec
	poolRemaining       prometheus.Gauge
	feedbackSubmissions prometheus.Counter
	messagesSeen        prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Manager, error) {
	m := &Manager{
		announcementsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "announcements_sent_total",
			Help:      "Weekly announcements posted, by type and trigger.",
		}, []string{"type", "manual"}),
		announcementsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "announcements_failed_total",
			Help:      "Weekly announcements that could not be posted.",
		}, []string{"type"}),
		schedulerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_runs_total",
			Help:      "Scheduled event executions by outcome.",
		}, []string{"event", "outcome"}),
		quizOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_outcomes_total",
			Help:      "Quiz windows by terminal state.",
		}, []string{"outcome"}),
		poolRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "spotlight_pool_remaining",
			Help:      "Athletes not yet drawn for the weekly spotlight.",
		}),
		feedbackSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_submissions_total",
			Help:      "Feedback forms submitted.",
		}),
		messagesSeen: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guild_messages_total",
			Help:      "Guild messages observed by the activity tracker.",
		}),
	}

	collectors := []prometheus.Collector{
		m.announcementsSent,
		m.announcementsFailed,
		m.schedulerRuns,
		m.quizOutcomes,
		m.poolRemaining,
		m.feedbackSubmissions,
		m.messagesSeen,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Manager) AnnouncementSent(kind string, manual bool) {
	if m == nil {
		return
	}
	m.announcementsSent.WithLabelValues(kind, strconv.FormatBool(manual)).Inc()
}

func (m *Manager) AnnouncementFailed(kind string) {
	if m == nil {
		return
	}
	m.announcementsFailed.WithLabelValues(kind).Inc()
}

// SchedulerRun records one scheduled event execution; outcome is ok, skipped,
// failed or panic.
func (m *Manager) SchedulerRun(event, outcome string) {
	if m == nil {
		return
	}
	m.schedulerRuns.WithLabelValues(event, outcome).Inc()
}

func (m *Manager) QuizOutcome(outcome string) {
	if m == nil {
		return
	}
	m.quizOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Manager) SetPoolRemaining(n int) {
	if m == nil {
		return
	}
	m.poolRemaining.Set(float64(n))
}

func (m *Manager) FeedbackSubmitted() {
	if m == nil {
		return
	}
	m.feedbackSubmissions.Inc()
}

func (m *Manager) MessageSeen() {
	if m == nil {
		return
	}
	m.messagesSeen.Inc()
}
