package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/discord"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/service"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

const triggerTimeout = 30 * time.Second

// Services bundles the domain services the handlers call
type Services struct {
	Announcement contract.AnnouncementService
	Spotlight    contract.SpotlightService
	Activity     contract.ActivityService
	Feedback     contract.FeedbackService
}

type DiscordHandler struct {
	discord  contract.DiscordClient
	services Services
	channels *storage.ChannelStore
}

func New(discordClient contract.DiscordClient, services Services, channels *storage.ChannelStore) *DiscordHandler {
	return &DiscordHandler{
		discord:  discordClient,
		services: services,
		channels: channels,
	}
}

// OnMessageCreate counts every human guild message.
func (h *DiscordHandler) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	h.services.Activity.RecordMessage()
}

// OnInteraction routes slash commands, the feedback button and the feedback modal.
func (h *DiscordHandler) OnInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Interaction == nil {
		return
	}

	var resp *discordgo.InteractionResponse
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.services.Activity.RecordCommand()
		resp = h.handleCommand(i.Interaction, i.ApplicationCommandData())
	case discordgo.InteractionMessageComponent:
		resp = h.handleComponent(i.MessageComponentData())
	case discordgo.InteractionModalSubmit:
		resp = h.handleModal(i.Interaction, i.ModalSubmitData())
	default:
		return
	}

	if resp == nil {
		return
	}
	if err := h.discord.Respond(i.Interaction, resp); err != nil {
		logger.Error("failed to respond to interaction", "interaction_id", i.ID, "error", err)
	}
}

func (h *DiscordHandler) handleCommand(i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	switch data.Name {
	case discord.CmdTrigger:
		return h.handleTrigger(i, data)
	case discord.CmdSetChannel:
		return h.handleSetChannel(i, data)
	case discord.CmdSpotlight:
		return h.handleSpotlight(data)
	case discord.CmdStats:
		return h.handleStats()
	case discord.CmdHelp:
		return ephemeral(discord.GetHelpText())
	default:
		return createErrorResponse("Unknown command")
	}
}

// handleTrigger defers the reply: posting can outlast Discord's
// three-second interaction deadline.
func (h *DiscordHandler) handleTrigger(i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	kind, err := domain.ParseAnnouncementType(optionString(data.Options, discord.OptType))
	if err != nil {
		return createErrorResponse("Unknown announcement type. Use `opening` or `closing`.")
	}

	if err := h.discord.Respond(i, deferredEphemeral()); err != nil {
		logger.Error("failed to defer trigger response", "interaction_id", i.ID, "error", err)
		return nil
	}

	logger.Info("manual trigger requested", "type", kind, "user_id", interactionUserID(i))

	ctx, cancel := context.WithTimeout(context.Background(), triggerTimeout)
	defer cancel()

	content := fmt.Sprintf("✅ The %s announcement was posted.", kind)
	if !h.services.Announcement.Send(ctx, kind, true) {
		content = fmt.Sprintf("❌ Could not post the %s announcement. Check the announce channel and the logs.", kind)
	}
	if err := h.discord.EditResponse(i, content); err != nil {
		logger.Error("failed to edit trigger response", "interaction_id", i.ID, "error", err)
	}
	return nil
}

func (h *DiscordHandler) handleSetChannel(i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	kind, err := domain.ParseChannelKind(optionString(data.Options, discord.OptKind))
	if err != nil {
		return createErrorResponse("Unknown channel kind. Use one of: " + kindNames())
	}

	channelID := optionString(data.Options, discord.OptChannel)
	if channelID == "" {
		return createErrorResponse("Please pick a channel: `/setchannel kind:announce channel:#news`")
	}

	if err := h.channels.SetChannel(kind, channelID); err != nil {
		logger.Error("failed to save channel", "kind", kind, "channel_id", channelID, "error", err)
		return createErrorResponse("Error saving the channel configuration")
	}

	logger.Info("channel configured", "kind", kind, "channel_id", channelID, "user_id", interactionUserID(i))
	return ephemeral(fmt.Sprintf("✅ %s messages will be posted in <#%s>.", kind, channelID))
}

func (h *DiscordHandler) handleSpotlight(data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponse {
	sub := ""
	if len(data.Options) > 0 {
		sub = data.Options[0].Name
	}

	switch sub {
	case discord.SubPreview:
		athlete, ok := h.services.Spotlight.PreviewSample()
		if !ok {
			return createErrorResponse("The athlete catalog is empty")
		}
		msg := service.ProfileMessage(athlete)
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     msg.Embeds,
				Components: msg.Components,
				Flags:      discordgo.MessageFlagsEphemeral,
			},
		}
	case discord.SubRemaining:
		n := h.services.Spotlight.UnpostedCount()
		if n == 0 {
			return ephemeral("Every athlete has been spotlighted. Add athletes to the catalog to continue.")
		}
		return ephemeral(fmt.Sprintf("🌟 %d athletes left to spotlight.", n))
	default:
		return createErrorResponse("Use `/spotlight preview` or `/spotlight remaining`")
	}
}

func (h *DiscordHandler) handleStats() *discordgo.InteractionResponse {
	stats := h.services.Activity.Stats()

	var b strings.Builder
	b.WriteString("📊 **Activity**\n")
	fmt.Fprintf(&b, "• Posts sent: %d\n", stats.TotalPostsSent)
	fmt.Fprintf(&b, "• Spotlights: %d\n", stats.SpotlightsPosted)
	fmt.Fprintf(&b, "• Quizzes: %d played, %d won\n", stats.QuizzesPlayed, stats.QuizzesWon)
	fmt.Fprintf(&b, "• Messages: %d\n", stats.TotalMessages)
	fmt.Fprintf(&b, "• Commands: %d\n", stats.TotalCommands)
	fmt.Fprintf(&b, "• Feedback: %d\n", stats.TotalFeedback)
	if stats.LastOpeningWeek > 0 {
		fmt.Fprintf(&b, "• Last opening: week %d\n", stats.LastOpeningWeek)
	}
	if stats.LastError != nil {
		fmt.Fprintf(&b, "• Last error: %s (%s)\n", stats.LastError.Message, stats.LastError.Context)
	}
	return ephemeral(b.String())
}

func (h *DiscordHandler) handleComponent(data discordgo.MessageComponentInteractionData) *discordgo.InteractionResponse {
	if data.CustomID != domain.FeedbackButtonID {
		return nil
	}
	return feedbackModal()
}

func (h *DiscordHandler) handleModal(i *discordgo.Interaction, data discordgo.ModalSubmitInteractionData) *discordgo.InteractionResponse {
	if data.CustomID != domain.FeedbackModalID {
		return nil
	}

	user := interactionUser(i)
	if user == nil {
		return createErrorResponse("Could not identify you, please try again")
	}

	_, err := h.services.Feedback.Submit(context.Background(), user.ID, user.Username, "modal", textInputValue(data.Components, domain.FeedbackInputID))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyFeedback) {
			return createErrorResponse("Feedback cannot be empty")
		}
		logger.Error("failed to submit feedback", "user_id", user.ID, "error", err)
		return createErrorResponse("Error saving your feedback, please try again later")
	}
	return ephemeral("🙏 Thanks for your feedback!")
}

func feedbackModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: domain.FeedbackModalID,
			Title:    "Share your feedback",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    domain.FeedbackInputID,
							Label:       "What should we improve?",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Ideas, bugs, athletes you want to see...",
							Required:    true,
							MaxLength:   1000,
						},
					},
				},
			},
		},
	}
}

// textInputValue finds the text input with customID in a submitted modal.
func textInputValue(rows []discordgo.MessageComponent, customID string) string {
	for _, row := range rows {
		var components []discordgo.MessageComponent
		switch r := row.(type) {
		case *discordgo.ActionsRow:
			components = r.Components
		case discordgo.ActionsRow:
			components = r.Components
		}
		for _, c := range components {
			switch input := c.(type) {
			case *discordgo.TextInput:
				if input.CustomID == customID {
					return input.Value
				}
			case discordgo.TextInput:
				if input.CustomID == customID {
					return input.Value
				}
			}
		}
	}
	return ""
}

func optionString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name != name || opt.Value == nil {
			continue
		}
		if s, ok := opt.Value.(string); ok {
			return strings.TrimSpace(s)
		}
		return fmt.Sprint(opt.Value)
	}
	return ""
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func interactionUserID(i *discordgo.Interaction) string {
	if u := interactionUser(i); u != nil {
		return u.ID
	}
	return ""
}

func kindNames() string {
	names := make([]string, 0, len(domain.ChannelKinds))
	for _, k := range domain.ChannelKinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func deferredEphemeral() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}
}

func createErrorResponse(message string) *discordgo.InteractionResponse {
	return ephemeral("❌ " + message)
}
