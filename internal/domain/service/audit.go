package service

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

// auditor persists audit entries and mirrors them to the logs channel when
// one is configured. Failures are logged, never returned.
type auditor struct {
	dm       contract.DataManager
	discord  contract.DiscordClient
	channels *storage.ChannelStore
}

func (a *auditor) Record(action, detail, actor string) {
	entry := &entity.AuditEntry{
		Action: action,
		Detail: detail,
		Actor:  actor,
	}
	if err := a.dm.Audit().Create(entry); err != nil {
		logger.Error("failed to write audit entry", "action", action, "error", err)
	}

	channelID, ok := a.channels.GetChannel(domain.ChannelLogs)
	if !ok {
		return
	}
	msg := &discordgo.MessageSend{
		Content: fmt.Sprintf("📝 `%s` %s (by %s)", action, detail, actor),
	}
	if _, err := a.discord.SendMessage(channelID, msg); err != nil {
		logger.Warn("failed to mirror audit entry", "action", action, "channel_id", channelID, "error", err)
	}
}
