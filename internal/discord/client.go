package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
)

// Intents the bot needs to read guild messages for the quiz and activity counters
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

// Client adapts a discordgo session to contract.DiscordClient
type Client struct {
	session *discordgo.Session
}

var _ contract.DiscordClient = (*Client)(nil)

// New creates a session for token. The gateway is not opened yet.
func New(token string) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = Intents
	return &Client{session: session}, nil
}

// Session exposes the underlying session for handler registration
func (c *Client) Session() *discordgo.Session {
	return c.session
}

func (c *Client) Open() error {
	return c.session.Open()
}

func (c *Client) Close() error {
	return c.session.Close()
}

func (c *Client) SendMessage(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return c.session.ChannelMessageSendComplex(channelID, msg)
}

func (c *Client) AddReaction(channelID, messageID, emoji string) error {
	return c.session.MessageReactionAdd(channelID, messageID, emoji)
}

func (c *Client) SetStatus(status string) error {
	return c.session.UpdateCustomStatus(status)
}

func (c *Client) Respond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return c.session.InteractionRespond(interaction, resp)
}

func (c *Client) EditResponse(interaction *discordgo.Interaction, content string) error {
	_, err := c.session.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{Content: &content})
	return err
}

// Subscribe forwards human messages posted in channelID to fn until the
// returned func is called. Calling it more than once is safe.
func (c *Client) Subscribe(channelID string, fn func(m *discordgo.Message)) func() {
	remove := c.session.AddHandler(messageFilter(channelID, fn))

	var once sync.Once
	return func() { once.Do(remove) }
}

func messageFilter(channelID string, fn func(m *discordgo.Message)) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Message == nil || m.ChannelID != channelID {
			return
		}
		if m.Author == nil || m.Author.Bot {
			return
		}
		fn(m.Message)
	}
}
