package storage

import (
	"path/filepath"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
)

// File names inside the data directory
const (
	ChannelsFile      = "channels.json"
	AnnouncementsFile = "announcements.json"
	SpotlightFile     = "spotlight_state.json"
	ActivityFile      = "activity.json"
	AthletesFile      = "athletes.json"
)

// Stores groups the flat-file stores living in one data directory
type Stores struct {
	Channels      *ChannelStore
	Announcements *AnnouncementStore
	Spotlight     *SpotlightStore
	Activity      *ActivityStore
	Athletes      *AthleteCatalog
}

// New opens every store under dataDir. channelDefaults supplies the
// environment fallback used when a kind is unset in the file.
func New(dataDir string, channelDefaults map[domain.ChannelKind]string) *Stores {
	return &Stores{
		Channels:      NewChannelStore(filepath.Join(dataDir, ChannelsFile), channelDefaults),
		Announcements: NewAnnouncementStore(filepath.Join(dataDir, AnnouncementsFile)),
		Spotlight:     NewSpotlightStore(filepath.Join(dataDir, SpotlightFile)),
		Activity:      NewActivityStore(filepath.Join(dataDir, ActivityFile)),
		Athletes:      NewAthleteCatalog(filepath.Join(dataDir, AthletesFile)),
	}
}
