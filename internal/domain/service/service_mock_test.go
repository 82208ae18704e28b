package service

import (
	"testing"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
	"github.com/diegoclair/athlete-weekly-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockAuditRepo    *mocks.MockAuditRepo
	mockFeedbackRepo *mocks.MockFeedbackRepo
	mockDiscord      *mocks.MockDiscordClient
	stores           *storage.Stores
	dataDir          string
}

// fixedRandom always picks index n, clamped to the range
type fixedRandom struct{ n int }

func (r fixedRandom) IntN(bound int) int {
	if r.n >= bound {
		return bound - 1
	}
	return r.n
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	auditRepo := mocks.NewMockAuditRepo(ctrl)
	dm.EXPECT().Audit().Return(auditRepo).AnyTimes()

	feedbackRepo := mocks.NewMockFeedbackRepo(ctrl)
	dm.EXPECT().Feedback().Return(feedbackRepo).AnyTimes()

	dataDir := t.TempDir()

	m = allMocks{
		mockDataManager:  dm,
		mockAuditRepo:    auditRepo,
		mockFeedbackRepo: feedbackRepo,
		mockDiscord:      mocks.NewMockDiscordClient(ctrl),
		stores:           storage.New(dataDir, nil),
		dataDir:          dataDir,
	}
	return
}

// newTestInstance wires the services with a frozen clock
func newTestInstance(t *testing.T, m allMocks, now time.Time, random Random) *Instance {
	t.Helper()

	inst := NewInstance(Options{
		DataManager: m.mockDataManager,
		Discord:     m.mockDiscord,
		Stores:      m.stores,
		Location:    time.UTC,
		AssetsDir:   t.TempDir(),
		QuizWindow:  time.Minute,
		Random:      random,
		Now:         func() time.Time { return now },
	})
	require.NotNil(t, inst)
	return inst
}
