package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
	"github.com/google/uuid"
)

const maxFeedbackLength = 1000

type feedbackService struct {
	dm       contract.DataManager
	discord  contract.DiscordClient
	channels *storage.ChannelStore
	activity *activityService
	metrics  *metrics.Manager
}

// Submit stores a feedback form and forwards it to the feedback channel when
// one is configured. Forwarding failures do not fail the submission.
func (s *feedbackService) Submit(ctx context.Context, userID, userName, source, message string) (*entity.Feedback, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrEmptyFeedback
	}
	if r := []rune(message); len(r) > maxFeedbackLength {
		message = string(r[:maxFeedbackLength])
	}

	fb := &entity.Feedback{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserName: userName,
		Source:   source,
		Message:  message,
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Feedback().Create(fb); err != nil {
			return err
		}
		return tx.Audit().Create(&entity.AuditEntry{
			Action: "feedback.submitted",
			Detail: fb.ID,
			Actor:  userID,
		})
	})
	if err != nil {
		s.activity.RecordError("feedback", err)
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	s.activity.RecordFeedback()
	s.metrics.FeedbackSubmitted()
	s.forward(fb)

	logger.Info("feedback stored", "feedback_id", fb.ID, "user_id", userID, "source", source)
	return fb, nil
}

func (s *feedbackService) forward(fb *entity.Feedback) {
	channelID, ok := s.channels.GetChannel(domain.ChannelFeedback)
	if !ok {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "💬 New feedback",
		Description: fb.Message,
		Color:       defaultEmbedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s · %s", fb.UserName, fb.ID)},
	}
	if fb.Source != "" {
		embed.Fields = []*discordgo.MessageEmbedField{{Name: "From", Value: fb.Source, Inline: true}}
	}

	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	if _, err := s.discord.SendMessage(channelID, msg); err != nil {
		logger.Warn("failed to forward feedback", "feedback_id", fb.ID, "error", err)
	}
}
