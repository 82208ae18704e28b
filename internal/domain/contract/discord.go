package contract

//go:generate mockgen -source=discord.go -destination=../../../mocks/discord_mock.go -package=mocks

import "github.com/bwmarrin/discordgo"

// DiscordClient defines the chat platform operations the bot relies on.
// The real implementation wraps a *discordgo.Session.
type DiscordClient interface {
	// SendMessage posts a complex message to a channel
	SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// AddReaction reacts to a message with a unicode emoji
	AddReaction(channelID, messageID, emoji string) error

	// SetStatus updates the bot's custom presence status
	SetStatus(status string) error

	// Respond answers an interaction
	Respond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// EditResponse replaces the content of a deferred interaction response
	EditResponse(interaction *discordgo.Interaction, content string) error

	// Subscribe calls fn for every non-bot message created in channelID until
	// the returned func is called
	Subscribe(channelID string, fn func(m *discordgo.Message)) (unsubscribe func())
}
