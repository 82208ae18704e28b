package storage

import (
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
)

type ActivityStore struct {
	file jsonFile
}

func NewActivityStore(path string) *ActivityStore {
	return &ActivityStore{file: jsonFile{path: path}}
}

func (s *ActivityStore) Load() entity.ActivityStats {
	stats := entity.DefaultActivityStats()
	if err := s.file.read(&stats); err != nil {
		if !isNotExist(err) {
			logger.Error("failed to load activity stats, using defaults", "path", s.file.path, "error", err)
		}
		return entity.DefaultActivityStats()
	}
	if stats.DailyMessages == nil {
		stats.DailyMessages = map[string]int{}
	}
	return stats
}

func (s *ActivityStore) Save(stats entity.ActivityStats) error {
	return s.file.write(stats)
}
