package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/week"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

const defaultEmbedColor = 0x3498DB

// composer assembles and posts the weekly opening and closing announcements
type composer struct {
	discord       contract.DiscordClient
	channels      *storage.ChannelStore
	announcements *storage.AnnouncementStore
	activity      *activityService
	audit         *auditor
	metrics       *metrics.Manager
	assetsDir     string
	mentionRoleID string
	now           func() time.Time
}

// Send posts one announcement. Failures are logged and reported as false;
// callers never receive an error.
func (c *composer) Send(ctx context.Context, kind domain.AnnouncementType, isManual bool) bool {
	if err := c.send(ctx, kind, isManual); err != nil {
		logger.Error("failed to send announcement", "type", kind, "manual", isManual, "error", err)
		c.activity.RecordError("announcement."+string(kind), err)
		c.metrics.AnnouncementFailed(string(kind))
		return false
	}
	return true
}

func (c *composer) send(ctx context.Context, kind domain.AnnouncementType, isManual bool) error {
	channelID, ok := c.channels.GetChannel(domain.ChannelAnnounce)
	if !ok {
		return domain.ErrNoDestination
	}

	now := c.now()
	weekNumber := week.DisplayNumber(now, kind == domain.AnnouncementClosing)
	cfg := c.announcements.Load().Get(kind)

	msg := c.compose(kind, cfg, weekNumber, now)
	c.attachImage(msg, cfg.ImageName)

	if err := ctx.Err(); err != nil {
		return err
	}

	posted, err := c.discord.SendMessage(channelID, msg)
	if err != nil {
		return fmt.Errorf("failed to post %s announcement: %w", kind, err)
	}

	if posted != nil {
		c.react(channelID, posted.ID, cfg.Reactions)
	}

	c.activity.RecordPost(kind, weekNumber, isManual)
	c.metrics.AnnouncementSent(string(kind), isManual)

	actor := "scheduler"
	if isManual {
		actor = "manual"
	}
	c.audit.Record("announcement."+string(kind), fmt.Sprintf("week %d", weekNumber), actor)

	logger.Info("announcement sent", "type", kind, "manual", isManual, "week", weekNumber, "channel_id", channelID)
	return nil
}

func (c *composer) compose(kind domain.AnnouncementType, cfg entity.AnnouncementConfig, weekNumber int, now time.Time) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       formattedTitle(cfg, weekNumber),
		Description: formattedDescription(cfg, weekNumber),
		Color:       parseColor(cfg.Color),
		Timestamp:   now.Format(time.RFC3339),
	}
	if cfg.FooterText != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: cfg.FooterText}
	}

	if kind == domain.AnnouncementClosing {
		deadline := week.NextOccurrence(now, domain.ClosingWeekday, domain.ClosingHour, domain.ClosingMinute)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⏳ Picks lock",
			Value: countdown(deadline),
		})
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if c.mentionRoleID != "" {
		msg.Content = fmt.Sprintf("<@&%s>", c.mentionRoleID)
		msg.AllowedMentions = &discordgo.MessageAllowedMentions{Roles: []string{c.mentionRoleID}}
	}

	if buttons := announcementButtons(cfg); len(buttons) > 0 {
		msg.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}
	return msg
}

// attachImage adds the configured local asset. A missing asset only drops the image.
func (c *composer) attachImage(msg *discordgo.MessageSend, imageName string) {
	if imageName == "" {
		return
	}

	name := filepath.Base(imageName)
	data, err := os.ReadFile(filepath.Join(c.assetsDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("announcement image not found, posting without image", "image", name)
		} else {
			logger.Warn("failed to read announcement image", "image", name, "error", err)
		}
		return
	}

	msg.Files = append(msg.Files, &discordgo.File{
		Name:        name,
		ContentType: mime.TypeByExtension(filepath.Ext(name)),
		Reader:      bytes.NewReader(data),
	})
	if len(msg.Embeds) > 0 {
		msg.Embeds[0].Image = &discordgo.MessageEmbedImage{URL: "attachment://" + name}
	}
}

// react adds each emoji in order. One failing reaction never blocks the rest.
func (c *composer) react(channelID, messageID string, emojis []string) {
	for _, emoji := range emojis {
		if err := c.discord.AddReaction(channelID, messageID, emoji); err != nil {
			logger.Warn("failed to add reaction", "emoji", emoji, "message_id", messageID, "error", err)
		}
	}
}

func announcementButtons(cfg entity.AnnouncementConfig) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	if cfg.ShowPlayButton && cfg.PlayURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: labelOr(cfg.PlayButtonLabel, "Play"),
			Style: discordgo.LinkButton,
			URL:   cfg.PlayURL,
		})
	}
	if cfg.ShowLeaderboardButton && cfg.LeaderboardURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: labelOr(cfg.LeaderboardButtonLabel, "Leaderboard"),
			Style: discordgo.LinkButton,
			URL:   cfg.LeaderboardURL,
		})
	}
	if cfg.ShowFeedbackButton {
		buttons = append(buttons, discordgo.Button{
			Label:    "Give feedback",
			Style:    discordgo.SecondaryButton,
			CustomID: domain.FeedbackButtonID,
		})
	}
	return buttons
}

func formattedTitle(cfg entity.AnnouncementConfig, weekNumber int) string {
	return fillWeek(cfg.Title, weekNumber)
}

func formattedDescription(cfg entity.AnnouncementConfig, weekNumber int) string {
	return fillWeek(cfg.Description, weekNumber)
}

func fillWeek(template string, weekNumber int) string {
	return strings.ReplaceAll(template, domain.WeekNumberPlaceholder, strconv.Itoa(weekNumber))
}

// parseColor reads #RRGGBB; anything else falls back to the default color.
func parseColor(s string) int {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return defaultEmbedColor
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return defaultEmbedColor
	}
	return int(v)
}

// countdown renders a relative plus absolute Discord timestamp pair.
func countdown(t time.Time) string {
	ts := t.Unix()
	return fmt.Sprintf("<t:%d:R> (<t:%d:F>)", ts, ts)
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
