package service

import (
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/presence"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/week"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
)

type presenceService struct {
	discord  contract.DiscordClient
	override string
	now      func() time.Time
}

// Refresh recomputes the status line and pushes it to Discord.
func (p *presenceService) Refresh() string {
	now := p.now()
	status := presence.At(now, week.Number(now), p.override)
	if err := p.discord.SetStatus(status); err != nil {
		logger.Warn("failed to update presence", "status", status, "error", err)
	}
	return status
}
