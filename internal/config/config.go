package config

import (
	"errors"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

type Config struct {
	DiscordToken     string        `koanf:"discord_token"`
	GuildID          string        `koanf:"guild_id"`
	Timezone         string        `koanf:"timezone"`
	DataDir          string        `koanf:"data_dir"`
	AssetsDir        string        `koanf:"assets_dir"`
	DatabasePath     string        `koanf:"database_path"`
	HTTPAddr         string        `koanf:"http_addr"`
	AdminToken       string        `koanf:"admin_token"`
	FallbackChannel  string        `koanf:"fallback_channel_id"`
	GeneralChannel   string        `koanf:"general_channel_id"`
	MentionRoleID    string        `koanf:"mention_role_id"`
	QuizWindow       time.Duration `koanf:"quiz_window"`
	PresenceOverride string        `koanf:"presence_override"`

	LogConfig `koanf:",squash"`

	location *time.Location
}

// LogConfig controls log verbosity and the optional rotating log file.
// Sizes are in megabytes, ages in days.
type LogConfig struct {
	Level      string `koanf:"log_level"`
	File       string `koanf:"log_file"`
	MaxSizeMB  int    `koanf:"log_max_size_mb"`
	MaxBackups int    `koanf:"log_max_backups"`
	MaxAgeDays int    `koanf:"log_max_age_days"`
}

// New returns a Config holding the built-in defaults
func New() *Config {
	return &Config{
		Timezone:     domain.DefaultTimezone,
		DataDir:      "./data",
		AssetsDir:    "./assets",
		DatabasePath: "./data/bot.db",
		HTTPAddr:     ":3000",
		QuizWindow:   domain.DefaultQuizWindow,
		LogConfig: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// Location returns the loaded timezone. Only valid after Load.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
