package storage

import (
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
)

type ChannelStore struct {
	file     jsonFile
	defaults map[domain.ChannelKind]string
}

func NewChannelStore(path string, defaults map[domain.ChannelKind]string) *ChannelStore {
	if defaults == nil {
		defaults = map[domain.ChannelKind]string{}
	}
	return &ChannelStore{file: jsonFile{path: path}, defaults: defaults}
}

// Load returns the persisted config. Unreadable files load as empty.
func (s *ChannelStore) Load() entity.ChannelConfig {
	var cfg entity.ChannelConfig
	if err := s.file.read(&cfg); err != nil {
		if !isNotExist(err) {
			logger.Error("failed to load channel config, using empty", "path", s.file.path, "error", err)
		}
		return entity.ChannelConfig{}
	}
	return cfg
}

// GetChannel resolves kind to a destination id. The file value wins over the
// environment default.
func (s *ChannelStore) GetChannel(kind domain.ChannelKind) (string, bool) {
	cfg := s.Load()
	if id, ok := cfg.Channels.Get(kind); ok {
		return id, true
	}
	if id := s.defaults[kind]; id != "" {
		return id, true
	}
	return "", false
}

// SetChannel replaces one key and rewrites the whole file.
func (s *ChannelStore) SetChannel(kind domain.ChannelKind, id string) error {
	cfg := s.Load()
	if err := cfg.Channels.Set(kind, id); err != nil {
		return err
	}
	return s.file.write(cfg)
}

// Resolved returns every kind with its effective id, defaults included.
func (s *ChannelStore) Resolved() map[domain.ChannelKind]string {
	out := make(map[domain.ChannelKind]string, len(domain.ChannelKinds))
	for _, kind := range domain.ChannelKinds {
		id, _ := s.GetChannel(kind)
		out[kind] = id
	}
	return out
}
