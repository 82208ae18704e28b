package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAnnouncementStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, got entity.AnnouncementSettings)
	}{
		{
			name:    "Should merge a partial override over defaults",
			content: `{"opening": {"title": "X"}}`,
			check: func(t *testing.T, got entity.AnnouncementSettings) {
				defaults := entity.DefaultAnnouncementSettings()

				want := defaults.Opening
				want.Title = "X"
				assert.Equal(t, want, got.Opening)
				assert.Equal(t, defaults.Closing, got.Closing)
			},
		},
		{
			name:    "Should keep default true flags when only one flag is overridden",
			content: `{"closing": {"showPlayButton": false}}`,
			check: func(t *testing.T, got entity.AnnouncementSettings) {
				assert.False(t, got.Closing.ShowPlayButton)
				assert.True(t, got.Closing.ShowLeaderboardButton)
				assert.Equal(t, entity.DefaultAnnouncementSettings().Closing.Title, got.Closing.Title)
			},
		},
		{
			name:    "Should fall back to defaults on corrupt JSON",
			content: `{"opening": `,
			check: func(t *testing.T, got entity.AnnouncementSettings) {
				assert.Equal(t, entity.DefaultAnnouncementSettings(), got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), AnnouncementsFile)
			writeFile(t, path, tt.content)

			tt.check(t, NewAnnouncementStore(path).Load())
		})
	}
}

func TestAnnouncementStore_SeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), AnnouncementsFile)
	store := NewAnnouncementStore(path)

	got := store.Load()
	assert.Equal(t, entity.DefaultAnnouncementSettings(), got)
	assert.FileExists(t, path)
}

func TestAnnouncementStore_Update(t *testing.T) {
	store := NewAnnouncementStore(filepath.Join(t.TempDir(), AnnouncementsFile))

	cfg := entity.DefaultAnnouncementSettings().Closing
	cfg.Title = "Bye week {WEEK_NUMBER}"
	require.NoError(t, store.Update(domain.AnnouncementClosing, cfg))

	got := store.Load()
	assert.Equal(t, "Bye week {WEEK_NUMBER}", got.Closing.Title)
	assert.Equal(t, entity.DefaultAnnouncementSettings().Opening, got.Opening)
}

func TestChannelStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChannelsFile)
	store := NewChannelStore(path, map[domain.ChannelKind]string{domain.ChannelAnnounce: "env-announce"})

	id, ok := store.GetChannel(domain.ChannelAnnounce)
	assert.True(t, ok)
	assert.Equal(t, "env-announce", id)

	_, ok = store.GetChannel(domain.ChannelLogs)
	assert.False(t, ok)

	require.NoError(t, store.SetChannel(domain.ChannelAnnounce, "file-announce"))
	require.NoError(t, store.SetChannel(domain.ChannelLogs, "file-logs"))

	id, ok = store.GetChannel(domain.ChannelAnnounce)
	assert.True(t, ok)
	assert.Equal(t, "file-announce", id)

	id, ok = store.GetChannel(domain.ChannelLogs)
	assert.True(t, ok)
	assert.Equal(t, "file-logs", id)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"channels": {"announce": "file-announce", "spotlight": null, "feedback": null, "logs": "file-logs", "welcome": null}}`, string(raw))

	assert.ErrorIs(t, store.SetChannel("bogus", "x"), domain.ErrUnknownKind)
}

func TestChannelStore_ClearFallsBackToDefault(t *testing.T) {
	store := NewChannelStore(filepath.Join(t.TempDir(), ChannelsFile), map[domain.ChannelKind]string{domain.ChannelAnnounce: "env"})

	require.NoError(t, store.SetChannel(domain.ChannelAnnounce, "file"))
	require.NoError(t, store.SetChannel(domain.ChannelAnnounce, ""))

	id, ok := store.GetChannel(domain.ChannelAnnounce)
	assert.True(t, ok)
	assert.Equal(t, "env", id)
}

func TestSpotlightStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), SpotlightFile)
	store := NewSpotlightStore(path)

	assert.Empty(t, store.Load())

	require.NoError(t, store.Save([]string{"A", "B"}))
	assert.Equal(t, []string{"A", "B"}, store.Load())

	writeFile(t, path, "not json")
	assert.Empty(t, store.Load())
}

func TestActivityStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), ActivityFile)
	store := NewActivityStore(path)

	stats := store.Load()
	assert.Zero(t, stats.TotalPostsSent)
	assert.NotNil(t, stats.DailyMessages)

	stats.TotalPostsSent = 3
	stats.DailyMessages["2024-02-12"] = 5
	require.NoError(t, store.Save(stats))

	got := store.Load()
	assert.Equal(t, 3, got.TotalPostsSent)
	assert.Equal(t, 5, got.DailyMessages["2024-02-12"])

	writeFile(t, path, `{"totalPostsSent": 9}`)
	got = store.Load()
	assert.Equal(t, 9, got.TotalPostsSent)
	assert.NotNil(t, got.DailyMessages)
}

func TestAthleteCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, AthletesFile)

	assert.Empty(t, NewAthleteCatalog(path).All())

	writeFile(t, path, `[{"name": "A", "sport": "Judo"}, {"name": "B"}]`)
	got := NewAthleteCatalog(path).All()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "Judo", got[0].Sport)
}
