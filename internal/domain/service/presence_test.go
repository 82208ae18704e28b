package service

import (
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_presenceService_Refresh(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		override string
		setErr   error
		want     string
	}{
		{
			name: "Should show live on Monday",
			now:  monday.Add(9 * time.Hour),
			want: "Week 2 · LIVE",
		},
		{
			name: "Should show locked on Thursday evening",
			now:  time.Date(2024, 1, 11, 20, 0, 0, 0, time.UTC),
			want: "Week 2 · Locked",
		},
		{
			name:     "Should prefer the override",
			now:      monday,
			override: "Maintenance",
			want:     "Maintenance",
		},
		{
			name:   "Should still return the status when the update fails",
			now:    sunday,
			setErr: errors.New("gateway closed"),
			want:   "Week 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			discord := mocks.NewMockDiscordClient(ctrl)
			discord.EXPECT().SetStatus(tt.want).Return(tt.setErr).Times(1)

			p := &presenceService{
				discord:  discord,
				override: tt.override,
				now:      func() time.Time { return tt.now },
			}

			assert.Equal(t, tt.want, p.Refresh())
		})
	}
}
