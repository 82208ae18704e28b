package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/athlete-weekly-bot/internal/handlers"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
	"github.com/diegoclair/athlete-weekly-bot/mocks"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const AdminToken = "test-admin-token"

type ServiceMocks struct {
	AnnouncementServiceMock *mocks.MockAnnouncementService
	SpotlightServiceMock    *mocks.MockSpotlightService
	ActivityServiceMock     *mocks.MockActivityService
	FeedbackServiceMock     *mocks.MockFeedbackService
	DiscordClientMock       *mocks.MockDiscordClient
	DataManagerMock         *mocks.MockDataManager
	AuditRepoMock           *mocks.MockAuditRepo
	FeedbackRepoMock        *mocks.MockFeedbackRepo
	Stores                  *storage.Stores
}

func newServiceMocks(t *testing.T) (m ServiceMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)
	auditRepo := mocks.NewMockAuditRepo(ctrl)
	dm.EXPECT().Audit().Return(auditRepo).AnyTimes()
	feedbackRepo := mocks.NewMockFeedbackRepo(ctrl)
	dm.EXPECT().Feedback().Return(feedbackRepo).AnyTimes()

	m = ServiceMocks{
		AnnouncementServiceMock: mocks.NewMockAnnouncementService(ctrl),
		SpotlightServiceMock:    mocks.NewMockSpotlightService(ctrl),
		ActivityServiceMock:     mocks.NewMockActivityService(ctrl),
		FeedbackServiceMock:     mocks.NewMockFeedbackService(ctrl),
		DiscordClientMock:       mocks.NewMockDiscordClient(ctrl),
		DataManagerMock:         dm,
		AuditRepoMock:           auditRepo,
		FeedbackRepoMock:        feedbackRepo,
		Stores:                  storage.New(t.TempDir(), nil),
	}
	return
}

func (m ServiceMocks) services() handlers.Services {
	return handlers.Services{
		Announcement: m.AnnouncementServiceMock,
		Spotlight:    m.SpotlightServiceMock,
		Activity:     m.ActivityServiceMock,
		Feedback:     m.FeedbackServiceMock,
	}
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.DiscordHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newServiceMocks(t)
	handler = handlers.New(m.DiscordClientMock, m.services(), m.Stores.Channels)
	return
}

func GetAdminTest(t *testing.T) (m ServiceMocks, router *gin.Engine, ctrl *gomock.Controller) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	m, ctrl = newServiceMocks(t)
	admin := handlers.NewAdmin(m.DataManagerMock, m.services(), m.Stores, AdminToken)
	router = admin.Router(prometheus.NewRegistry())
	return
}

// CreateAdminRequest builds an authenticated JSON request
func CreateAdminRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+AdminToken)
	return req
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
