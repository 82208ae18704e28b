package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

const spotlightColor = 0xF1C40F

type spotlightService struct {
	mu       sync.Mutex
	catalog  *storage.AthleteCatalog
	state    *storage.SpotlightStore
	random   Random
	discord  contract.DiscordClient
	channels *storage.ChannelStore
	activity *activityService
	audit    *auditor
	metrics  *metrics.Manager
}

// DrawUnposted picks uniformly among athletes not drawn yet and records the
// pick. It returns false once every catalog athlete has been drawn.
func (s *spotlightService) DrawUnposted() (*entity.Athlete, bool) {
	athlete, err := s.draw()
	if err != nil {
		if !errors.Is(err, domain.ErrPoolExhausted) {
			logger.Error("failed to draw spotlight athlete", "error", err)
		}
		return nil, false
	}
	return athlete, true
}

// draw returns domain.ErrPoolExhausted when no undrawn athlete is left, which
// includes an empty or unreadable catalog.
func (s *spotlightService) draw() (*entity.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posted := s.state.Load()
	remaining := unposted(s.catalog.All(), posted)
	if len(remaining) == 0 {
		s.metrics.SetPoolRemaining(0)
		return nil, domain.ErrPoolExhausted
	}

	pick := remaining[s.random.IntN(len(remaining))]
	if err := s.state.Save(append(posted, pick.Name)); err != nil {
		return nil, fmt.Errorf("failed to persist spotlight state for %s: %w", pick.Name, err)
	}

	s.metrics.SetPoolRemaining(len(remaining) - 1)
	return &pick, nil
}

// PreviewSample picks uniformly from the whole catalog without touching the
// pool, so spotlighted athletes can come up again.
func (s *spotlightService) PreviewSample() (*entity.Athlete, bool) {
	all := s.catalog.All()
	if len(all) == 0 {
		return nil, false
	}
	pick := all[s.random.IntN(len(all))]
	return &pick, true
}

func (s *spotlightService) UnpostedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.catalog.All()
	inCatalog := make(map[string]bool, len(all))
	for _, a := range all {
		inCatalog[a.Name] = true
	}

	seen := make(map[string]bool)
	for _, name := range s.state.Load() {
		if inCatalog[name] {
			seen[name] = true
		}
	}
	return len(all) - len(seen)
}

// Post draws the next athlete and publishes the profile. An exhausted pool is
// not an error: it returns false with a nil error. A state that cannot be
// persisted is, and nothing is posted.
func (s *spotlightService) Post(ctx context.Context) (bool, error) {
	channelID, ok := s.destination()
	if !ok {
		return false, domain.ErrNoDestination
	}

	athlete, err := s.draw()
	if errors.Is(err, domain.ErrPoolExhausted) {
		logger.Info("spotlight pool exhausted, nothing to post")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := s.discord.SendMessage(channelID, ProfileMessage(athlete)); err != nil {
		s.activity.RecordError("spotlight", err)
		return false, fmt.Errorf("failed to post spotlight for %s: %w", athlete.Name, err)
	}

	s.activity.RecordSpotlight()
	s.audit.Record("spotlight.posted", athlete.Name, "scheduler")
	logger.Info("spotlight posted", "athlete", athlete.Name, "channel_id", channelID)
	return true, nil
}

func (s *spotlightService) destination() (string, bool) {
	if id, ok := s.channels.GetChannel(domain.ChannelSpotlight); ok {
		return id, true
	}
	return s.channels.GetChannel(domain.ChannelAnnounce)
}

func unposted(all []entity.Athlete, posted []string) []entity.Athlete {
	done := make(map[string]bool, len(posted))
	for _, name := range posted {
		done[name] = true
	}

	var remaining []entity.Athlete
	for _, a := range all {
		if !done[a.Name] {
			remaining = append(remaining, a)
		}
	}
	return remaining
}

// ProfileMessage renders an athlete profile with link buttons for every
// social account present.
func ProfileMessage(a *entity.Athlete) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       "🌟 Athlete Spotlight: " + a.Name,
		Description: a.Description,
		Color:       spotlightColor,
		Fields:      profileFields(a),
	}
	if a.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: a.ImageURL}
	}
	if a.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: a.ThumbnailURL}
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}

	if buttons := socialButtons(a.Socials); len(buttons) > 0 {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}
	return msg
}

func profileFields(a *entity.Athlete) []*discordgo.MessageEmbedField {
	var fields []*discordgo.MessageEmbedField
	add := func(name, value string, inline bool) {
		if value == "" {
			return
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline})
	}

	add("Nationality", a.Nationality, true)
	add("Sport", a.Sport, true)
	add("Category", a.Category, true)
	add("Best result", a.BestResult, false)
	if len(a.Achievements) > 0 {
		add("Achievements", "• "+strings.Join(a.Achievements, "\n• "), false)
	}
	return fields
}

func socialButtons(s entity.Socials) []discordgo.MessageComponent {
	links := []struct {
		label string
		url   string
	}{
		{"Instagram", s.Instagram},
		{"X / Twitter", s.Twitter},
		{"TikTok", s.TikTok},
		{"YouTube", s.YouTube},
		{"Website", s.Website},
	}

	var buttons []discordgo.MessageComponent
	for _, l := range links {
		if l.url == "" {
			continue
		}
		buttons = append(buttons, discordgo.Button{
			Label: l.label,
			Style: discordgo.LinkButton,
			URL:   l.url,
		})
	}
	return buttons
}
