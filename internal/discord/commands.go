package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
)

// Slash command names
const (
	CmdTrigger    = "trigger"
	CmdSetChannel = "setchannel"
	CmdSpotlight  = "spotlight"
	CmdStats      = "stats"
	CmdHelp       = "help"
)

// Option and subcommand names
const (
	OptType      = "type"
	OptKind      = "kind"
	OptChannel   = "channel"
	SubPreview   = "preview"
	SubRemaining = "remaining"
)

var adminPermission int64 = discordgo.PermissionManageServer

// Commands returns the application commands registered for the guild
func Commands() []*discordgo.ApplicationCommand {
	typeChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "opening", Value: string(domain.AnnouncementOpening)},
		{Name: "closing", Value: string(domain.AnnouncementClosing)},
	}

	kindChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.ChannelKinds))
	for _, kind := range domain.ChannelKinds {
		kindChoices = append(kindChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(kind),
			Value: string(kind),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     CmdTrigger,
			Description:              "Post the opening or closing announcement now",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptType,
					Description: "Announcement to post",
					Required:    true,
					Choices:     typeChoices,
				},
			},
		},
		{
			Name:                     CmdSetChannel,
			Description:              "Choose where the bot posts",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptKind,
					Description: "Destination to configure",
					Required:    true,
					Choices:     kindChoices,
				},
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         OptChannel,
					Description:  "Text channel",
					Required:     true,
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews},
				},
			},
		},
		{
			Name:                     CmdSpotlight,
			Description:              "Athlete spotlight tools",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubPreview,
					Description: "Show a random athlete profile without using the pool",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubRemaining,
					Description: "How many athletes have not been spotlighted yet",
				},
			},
		},
		{
			Name:        CmdStats,
			Description: "Community activity counters",
		},
		{
			Name:        CmdHelp,
			Description: "List the bot commands",
		},
	}
}

// RegisterCommands replaces the guild's commands with Commands(). An empty
// guildID registers them globally.
func (c *Client) RegisterCommands(guildID string) ([]*discordgo.ApplicationCommand, error) {
	if c.session.State == nil || c.session.State.User == nil {
		return nil, fmt.Errorf("session is not open")
	}
	registered, err := c.session.ApplicationCommandBulkOverwrite(c.session.State.User.ID, guildID, Commands())
	if err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}
	return registered, nil
}

func GetHelpText() string {
	var b strings.Builder
	b.WriteString("**Available commands:**\n\n")
	b.WriteString("**Announcements:**\n")
	b.WriteString("• `/trigger type:opening|closing` - Post an announcement right now\n")
	b.WriteString("• `/setchannel kind:<kind> channel:#channel` - Set a destination (" + kindList() + ")\n\n")
	b.WriteString("**Spotlight:**\n")
	b.WriteString("• `/spotlight preview` - Preview a random athlete profile\n")
	b.WriteString("• `/spotlight remaining` - Athletes left in the pool\n\n")
	b.WriteString("**Info:**\n")
	b.WriteString("• `/stats` - Activity counters\n")
	b.WriteString("• `/help` - This message\n\n")
	b.WriteString("**Schedule:**\n")
	b.WriteString("• Monday 00:00 - Week opens\n")
	b.WriteString("• Tuesday 19:00 - Guess-the-athlete quiz\n")
	b.WriteString("• Wednesday 16:00 - Athlete spotlight\n")
	b.WriteString("• Thursday 18:59 - Closing reminder")
	return b.String()
}

func kindList() string {
	kinds := make([]string, 0, len(domain.ChannelKinds))
	for _, k := range domain.ChannelKinds {
		kinds = append(kinds, string(k))
	}
	return strings.Join(kinds, ", ")
}
