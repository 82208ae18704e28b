package storage

import (
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
)

type AnnouncementStore struct {
	file jsonFile
}

func NewAnnouncementStore(path string) *AnnouncementStore {
	return &AnnouncementStore{file: jsonFile{path: path}}
}

// Load decodes the file over the defaults, so keys absent from the file keep
// their default value. A missing file is seeded with the defaults.
func (s *AnnouncementStore) Load() entity.AnnouncementSettings {
	settings := entity.DefaultAnnouncementSettings()
	err := s.file.read(&settings)
	switch {
	case err == nil:
		return settings
	case isNotExist(err):
		if err := s.file.write(settings); err != nil {
			logger.Warn("failed to seed announcement config", "path", s.file.path, "error", err)
		}
		return settings
	default:
		logger.Error("failed to load announcement config, using defaults", "path", s.file.path, "error", err)
		return entity.DefaultAnnouncementSettings()
	}
}

func (s *AnnouncementStore) Save(settings entity.AnnouncementSettings) error {
	return s.file.write(settings)
}

// Update replaces the config of a single announcement type.
func (s *AnnouncementStore) Update(t domain.AnnouncementType, cfg entity.AnnouncementConfig) error {
	settings := s.Load()
	settings.Set(t, cfg)
	return s.Save(settings)
}
