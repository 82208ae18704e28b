package handlers_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/discord"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "I1",
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "G1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "U1", Username: "ana"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func subcommand(name string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name,
		Type: discordgo.ApplicationCommandOptionSubCommand,
	}
}

func TestDiscordHandler_OnInteraction_Commands(t *testing.T) {
	tests := []struct {
		name          string
		interaction   *discordgo.InteractionCreate
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *discordgo.InteractionResponse)
		checkStores   func(t *testing.T, m test.ServiceMocks)
	}{
		{
			name:        "Should set a channel",
			interaction: commandInteraction(discord.CmdSetChannel, stringOption(discord.OptKind, "spotlight"), stringOption(discord.OptChannel, "C-SPOT")),
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Contains(t, resp.Data.Content, "<#C-SPOT>")
				assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			},
			checkStores: func(t *testing.T, m test.ServiceMocks) {
				id, ok := m.Stores.Channels.GetChannel(domain.ChannelSpotlight)
				assert.True(t, ok)
				assert.Equal(t, "C-SPOT", id)
			},
		},
		{
			name:        "Should reject an unknown channel kind",
			interaction: commandInteraction(discord.CmdSetChannel, stringOption(discord.OptKind, "memes"), stringOption(discord.OptChannel, "C1")),
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Contains(t, resp.Data.Content, "❌ Unknown channel kind")
			},
		},
		{
			name:        "Should report remaining athletes",
			interaction: commandInteraction(discord.CmdSpotlight, subcommand(discord.SubRemaining)),
			buildMocks: func(m test.ServiceMocks) {
				m.SpotlightServiceMock.EXPECT().UnpostedCount().Return(12).Times(1)
			},
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Equal(t, "🌟 12 athletes left to spotlight.", resp.Data.Content)
			},
		},
		{
			name:        "Should report an exhausted pool",
			interaction: commandInteraction(discord.CmdSpotlight, subcommand(discord.SubRemaining)),
			buildMocks: func(m test.ServiceMocks) {
				m.SpotlightServiceMock.EXPECT().UnpostedCount().Return(0).Times(1)
			},
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Contains(t, resp.Data.Content, "Every athlete has been spotlighted")
			},
		},
		{
			name:        "Should preview a profile",
			interaction: commandInteraction(discord.CmdSpotlight, subcommand(discord.SubPreview)),
			buildMocks: func(m test.ServiceMocks) {
				m.SpotlightServiceMock.EXPECT().PreviewSample().Return(&entity.Athlete{Name: "Ana"}, true).Times(1)
			},
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				require.Len(t, resp.Data.Embeds, 1)
				assert.Equal(t, "🌟 Athlete Spotlight: Ana", resp.Data.Embeds[0].Title)
				assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			},
		},
		{
			name:        "Should show stats",
			interaction: commandInteraction(discord.CmdStats),
			buildMocks: func(m test.ServiceMocks) {
				m.ActivityServiceMock.EXPECT().Stats().Return(entity.ActivityStats{
					TotalPostsSent:  4,
					QuizzesPlayed:   2,
					QuizzesWon:      1,
					LastOpeningWeek: 7,
				}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Contains(t, resp.Data.Content, "Posts sent: 4")
				assert.Contains(t, resp.Data.Content, "Quizzes: 2 played, 1 won")
				assert.Contains(t, resp.Data.Content, "Last opening: week 7")
				assert.NotContains(t, resp.Data.Content, "Last error")
			},
		},
		{
			name:        "Should show help",
			interaction: commandInteraction(discord.CmdHelp),
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Equal(t, discord.GetHelpText(), resp.Data.Content)
			},
		},
		{
			name:        "Should reject an unknown trigger type",
			interaction: commandInteraction(discord.CmdTrigger, stringOption(discord.OptType, "midweek")),
			checkResponse: func(t *testing.T, resp *discordgo.InteractionResponse) {
				assert.Contains(t, resp.Data.Content, "Unknown announcement type")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			m.ActivityServiceMock.EXPECT().RecordCommand().Times(1)
			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			var resp *discordgo.InteractionResponse
			m.DiscordClientMock.EXPECT().Respond(tt.interaction.Interaction, gomock.Any()).
				DoAndReturn(func(_ *discordgo.Interaction, r *discordgo.InteractionResponse) error {
					resp = r
					return nil
				}).Times(1)

			handler.OnInteraction(nil, tt.interaction)

			require.NotNil(t, resp)
			require.NotNil(t, resp.Data)
			tt.checkResponse(t, resp)
			if tt.checkStores != nil {
				tt.checkStores(t, m)
			}
		})
	}
}

func TestDiscordHandler_OnInteraction_Trigger(t *testing.T) {
	tests := []struct {
		name        string
		sent        bool
		wantContent string
	}{
		{
			name:        "Should confirm a posted announcement",
			sent:        true,
			wantContent: "✅ The closing announcement was posted.",
		},
		{
			name:        "Should report a failed announcement",
			sent:        false,
			wantContent: "❌ Could not post the closing announcement. Check the announce channel and the logs.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			i := commandInteraction(discord.CmdTrigger, stringOption(discord.OptType, "closing"))

			m.ActivityServiceMock.EXPECT().RecordCommand().Times(1)
			gomock.InOrder(
				m.DiscordClientMock.EXPECT().Respond(i.Interaction, gomock.Any()).
					DoAndReturn(func(_ *discordgo.Interaction, r *discordgo.InteractionResponse) error {
						assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, r.Type)
						return nil
					}),
				m.AnnouncementServiceMock.EXPECT().Send(gomock.Any(), domain.AnnouncementClosing, true).Return(tt.sent),
				m.DiscordClientMock.EXPECT().EditResponse(i.Interaction, tt.wantContent).Return(nil),
			)

			handler.OnInteraction(nil, i)
		})
	}
}

func TestDiscordHandler_OnInteraction_FeedbackButton(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: domain.FeedbackButtonID},
		},
	}

	m.DiscordClientMock.EXPECT().Respond(i.Interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, r *discordgo.InteractionResponse) error {
			assert.Equal(t, discordgo.InteractionResponseModal, r.Type)
			assert.Equal(t, domain.FeedbackModalID, r.Data.CustomID)
			return nil
		}).Times(1)

	handler.OnInteraction(nil, i)
}

func TestDiscordHandler_OnInteraction_IgnoresOtherButtons(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	handler.OnInteraction(nil, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{CustomID: "something_else"},
		},
	})
}

func TestDiscordHandler_OnInteraction_FeedbackModal(t *testing.T) {
	modal := func(text string) *discordgo.InteractionCreate {
		return &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Type:   discordgo.InteractionModalSubmit,
				Member: &discordgo.Member{User: &discordgo.User{ID: "U1", Username: "ana"}},
				Data: discordgo.ModalSubmitInteractionData{
					CustomID: domain.FeedbackModalID,
					Components: []discordgo.MessageComponent{
						&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
							&discordgo.TextInput{CustomID: domain.FeedbackInputID, Value: text},
						}},
					},
				},
			},
		}
	}

	tests := []struct {
		name        string
		text        string
		submitErr   error
		wantContent string
	}{
		{
			name:        "Should thank the user",
			text:        "more quizzes please",
			wantContent: "🙏 Thanks for your feedback!",
		},
		{
			name:        "Should reject empty feedback",
			text:        " ",
			submitErr:   domain.ErrEmptyFeedback,
			wantContent: "❌ Feedback cannot be empty",
		},
		{
			name:        "Should report a storage failure",
			text:        "hello",
			submitErr:   errors.New("database is locked"),
			wantContent: "❌ Error saving your feedback, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			i := modal(tt.text)

			var fb *entity.Feedback
			if tt.submitErr == nil {
				fb = &entity.Feedback{ID: "F1"}
			}
			m.FeedbackServiceMock.EXPECT().Submit(gomock.Any(), "U1", "ana", "modal", tt.text).Return(fb, tt.submitErr).Times(1)
			m.DiscordClientMock.EXPECT().Respond(i.Interaction, gomock.Any()).
				DoAndReturn(func(_ *discordgo.Interaction, r *discordgo.InteractionResponse) error {
					assert.Equal(t, tt.wantContent, r.Data.Content)
					return nil
				}).Times(1)

			handler.OnInteraction(nil, i)
		})
	}
}

func TestDiscordHandler_OnMessageCreate(t *testing.T) {
	tests := []struct {
		name   string
		msg    *discordgo.MessageCreate
		counts bool
	}{
		{
			name:   "Should count a guild message",
			msg:    &discordgo.MessageCreate{Message: &discordgo.Message{GuildID: "G1", Author: &discordgo.User{ID: "U1"}}},
			counts: true,
		},
		{
			name: "Should ignore bots",
			msg:  &discordgo.MessageCreate{Message: &discordgo.Message{GuildID: "G1", Author: &discordgo.User{ID: "B1", Bot: true}}},
		},
		{
			name: "Should ignore direct messages",
			msg:  &discordgo.MessageCreate{Message: &discordgo.Message{Author: &discordgo.User{ID: "U1"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.counts {
				m.ActivityServiceMock.EXPECT().RecordMessage().Times(1)
			}

			handler.OnMessageCreate(nil, tt.msg)
		})
	}
}
