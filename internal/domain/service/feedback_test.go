package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_feedbackService_Submit(t *testing.T) {
	type args struct {
		message string
	}
	tests := []struct {
		name       string
		args       args
		channelID  string
		buildMock  func(m allMocks, args args)
		wantErr    error
		wantStored string
	}{
		{
			name:      "Should store feedback and forward it",
			args:      args{message: "  love the quiz  "},
			channelID: "C-FEEDBACK",
			buildMock: func(m allMocks, args args) {
				m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
						return fn(m.mockDataManager)
					}).Times(1)
				m.mockFeedbackRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(fb *entity.Feedback) error {
						assert.Equal(t, "love the quiz", fb.Message)
						assert.NotEmpty(t, fb.ID)
						return nil
					}).Times(1)
				m.mockAuditRepo.EXPECT().Create(gomock.Any()).
					DoAndReturn(func(e *entity.AuditEntry) error {
						assert.Equal(t, "feedback.submitted", e.Action)
						assert.Equal(t, "U1", e.Actor)
						return nil
					}).Times(1)
				m.mockDiscord.EXPECT().SendMessage("C-FEEDBACK", gomock.Any()).
					DoAndReturn(func(_ string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
						assert.Equal(t, "love the quiz", msg.Embeds[0].Description)
						return nil, errors.New("forward failures are ignored")
					}).Times(1)
			},
			wantStored: "love the quiz",
		},
		{
			name: "Should cap long feedback",
			args: args{message: strings.Repeat("é", maxFeedbackLength+50)},
			buildMock: func(m allMocks, args args) {
				m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
						return fn(m.mockDataManager)
					}).Times(1)
				m.mockFeedbackRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
				m.mockAuditRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
			},
			wantStored: strings.Repeat("é", maxFeedbackLength),
		},
		{
			name:    "Should reject empty feedback",
			args:    args{message: "   "},
			wantErr: domain.ErrEmptyFeedback,
		},
		{
			name: "Should return error when the transaction fails",
			args: args{message: "hello"},
			buildMock: func(m allMocks, args args) {
				m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("database is locked")).Times(1)
			},
			wantErr: errors.New("failed to store feedback: database is locked"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.channelID != "" {
				require.NoError(t, m.stores.Channels.SetChannel(domain.ChannelFeedback, tt.channelID))
			}
			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			inst := newTestInstance(t, m, monday, nil)
			fb, err := inst.Feedback.Submit(context.Background(), "U1", "ana", "modal", tt.args.message)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, fb)
				assert.Zero(t, m.stores.Activity.Load().TotalFeedback)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, fb)
			assert.Equal(t, tt.wantStored, fb.Message)
			assert.Equal(t, 1, m.stores.Activity.Load().TotalFeedback)
		})
	}
}
