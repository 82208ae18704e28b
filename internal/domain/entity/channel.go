package entity

import "github.com/diegoclair/athlete-weekly-bot/internal/domain"

// ChannelConfig is the persisted channel file: {"channels": {...}}
type ChannelConfig struct {
	Channels Channels `json:"channels"`
}

// Channels maps every kind to a destination id; nil means unset
type Channels struct {
	Announce  *string `json:"announce"`
	Spotlight *string `json:"spotlight"`
	Feedback  *string `json:"feedback"`
	Logs      *string `json:"logs"`
	Welcome   *string `json:"welcome"`
}

func (c *Channels) field(kind domain.ChannelKind) **string {
	switch kind {
	case domain.ChannelAnnounce:
		return &c.Announce
	case domain.ChannelSpotlight:
		return &c.Spotlight
	case domain.ChannelFeedback:
		return &c.Feedback
	case domain.ChannelLogs:
		return &c.Logs
	case domain.ChannelWelcome:
		return &c.Welcome
	}
	return nil
}

// Get returns the id for kind and whether it is set
func (c Channels) Get(kind domain.ChannelKind) (string, bool) {
	f := c.field(kind)
	if f == nil || *f == nil || **f == "" {
		return "", false
	}
	return **f, true
}

// Set stores id for kind; an empty id clears it
func (c *Channels) Set(kind domain.ChannelKind, id string) error {
	f := c.field(kind)
	if f == nil {
		return domain.ErrUnknownKind
	}
	if id == "" {
		*f = nil
		return nil
	}
	*f = &id
	return nil
}
