package storage

import (
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
)

// SpotlightStore persists the append-only list of athlete names already drawn
type SpotlightStore struct {
	file jsonFile
}

func NewSpotlightStore(path string) *SpotlightStore {
	return &SpotlightStore{file: jsonFile{path: path}}
}

func (s *SpotlightStore) Load() []string {
	var names []string
	if err := s.file.read(&names); err != nil {
		if !isNotExist(err) {
			logger.Error("failed to load spotlight state, using empty", "path", s.file.path, "error", err)
		}
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

func (s *SpotlightStore) Save(names []string) error {
	if names == nil {
		names = []string{}
	}
	return s.file.write(names)
}
