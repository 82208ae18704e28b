package storage

import (
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
)

// AthleteCatalog is the static, read-only list of athletes
type AthleteCatalog struct {
	file jsonFile
}

func NewAthleteCatalog(path string) *AthleteCatalog {
	return &AthleteCatalog{file: jsonFile{path: path}}
}

// All reads the catalog on every call. An unreadable catalog is empty.
func (c *AthleteCatalog) All() []entity.Athlete {
	var athletes []entity.Athlete
	if err := c.file.read(&athletes); err != nil {
		logger.Error("failed to load athlete catalog", "path", c.file.path, "error", err)
		return nil
	}
	return athletes
}
