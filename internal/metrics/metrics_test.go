package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.AnnouncementSent("opening", false)
	m.AnnouncementSent("opening", false)
	m.AnnouncementSent("closing", true)
	m.AnnouncementFailed("closing")
	m.SchedulerRun("opening", "ok")
	m.QuizOutcome("matched")
	m.SetPoolRemaining(4)
	m.FeedbackSubmitted()
	m.MessageSeen()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.announcementsSent.WithLabelValues("opening", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.announcementsSent.WithLabelValues("closing", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.announcementsFailed.WithLabelValues("closing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.schedulerRuns.WithLabelValues("opening", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quizOutcomes.WithLabelValues("matched")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.poolRemaining))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.feedbackSubmissions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.messagesSeen))
}

func TestManager_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestManager_Nil(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.AnnouncementSent("opening", true)
		m.AnnouncementFailed("opening")
		m.SchedulerRun("quiz", "ok")
		m.QuizOutcome("timed_out")
		m.SetPoolRemaining(1)
		m.FeedbackSubmitted()
		m.MessageSeen()
	})
}
