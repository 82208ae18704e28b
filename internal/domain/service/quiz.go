package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/contract"
	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/diegoclair/athlete-weekly-bot/internal/logger"
	"github.com/diegoclair/athlete-weekly-bot/internal/metrics"
	"github.com/diegoclair/athlete-weekly-bot/internal/storage"
)

const quizColor = 0x9B59B6

type quizService struct {
	pool             contract.SpotlightService
	discord          contract.DiscordClient
	channels         *storage.ChannelStore
	presence         contract.PresenceService
	activity         *activityService
	metrics          *metrics.Manager
	generalChannelID string
	window           time.Duration
}

// answerWindow listens for the first message equal to answer. It moves from
// listening to matched or timed out exactly once.
type answerWindow struct {
	matched     chan *discordgo.Message
	unsubscribe func()
}

func (q *quizService) openWindow(channelID, answer string) *answerWindow {
	w := &answerWindow{matched: make(chan *discordgo.Message, domain.QuizMaxMatches)}
	w.unsubscribe = q.discord.Subscribe(channelID, func(m *discordgo.Message) {
		if !isCorrectAnswer(m.Content, answer) {
			return
		}
		select {
		case w.matched <- m:
		default:
		}
	})
	return w
}

// wait blocks until a match, the deadline, or ctx cancellation. The
// subscription is always released before returning.
func (w *answerWindow) wait(ctx context.Context, d time.Duration) (*discordgo.Message, contract.QuizOutcome, error) {
	defer w.unsubscribe()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case m := <-w.matched:
		return m, contract.QuizMatched, nil
	case <-timer.C:
		return nil, contract.QuizTimedOut, nil
	case <-ctx.Done():
		return nil, "", ctx.Err()
	}
}

// Run posts the quiz prompt for a preview-sampled athlete and announces the
// first correct answer, or the solution once the window elapses.
func (q *quizService) Run(ctx context.Context) (contract.QuizResult, error) {
	athlete, ok := q.pool.PreviewSample()
	if !ok {
		logger.Warn("quiz skipped, athlete catalog is empty")
		return contract.QuizResult{Outcome: contract.QuizSkipped}, nil
	}
	result := contract.QuizResult{Athlete: athlete.Name}

	channelID, ok := q.channels.GetChannel(domain.ChannelAnnounce)
	if !ok {
		result.Outcome = contract.QuizSkipped
		return result, domain.ErrNoDestination
	}
	listenID := q.generalChannelID
	if listenID == "" {
		listenID = channelID
	}

	// listen before posting so an instant answer is not missed
	window := q.openWindow(listenID, athlete.Name)

	if _, err := q.discord.SendMessage(channelID, quizPrompt(athlete, listenID, q.window)); err != nil {
		window.unsubscribe()
		q.activity.RecordError("quiz", err)
		result.Outcome = contract.QuizSkipped
		return result, fmt.Errorf("failed to post quiz prompt: %w", err)
	}
	logger.Info("quiz started", "athlete", athlete.Name, "window", q.window.String())

	winner, outcome, err := window.wait(ctx, q.window)
	if err != nil {
		result.Outcome = contract.QuizSkipped
		return result, err
	}
	result.Outcome = outcome

	var reply string
	if outcome == contract.QuizMatched {
		result.WinnerID = winner.Author.ID
		reply = fmt.Sprintf("🎉 <@%s> got it! The athlete was **%s**.", winner.Author.ID, athlete.Name)
	} else {
		reply = fmt.Sprintf("⌛ No winner this time, the answer was **%s**.", athlete.Name)
	}

	msg := &discordgo.MessageSend{Content: reply}
	if winner != nil {
		msg.Reference = winner.Reference()
	}
	if _, err := q.discord.SendMessage(listenID, msg); err != nil {
		logger.Warn("failed to announce quiz result", "outcome", outcome, "error", err)
	}

	q.activity.RecordQuiz(outcome == contract.QuizMatched)
	q.metrics.QuizOutcome(string(outcome))
	if outcome == contract.QuizMatched {
		q.presence.Refresh()
	}

	logger.Info("quiz finished", "athlete", athlete.Name, "outcome", outcome, "winner_id", result.WinnerID)
	return result, nil
}

func isCorrectAnswer(content, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(content), strings.TrimSpace(answer))
}

func quizPrompt(a *entity.Athlete, listenID string, window time.Duration) *discordgo.MessageSend {
	hint := "?"
	if r, _ := utf8.DecodeRuneInString(a.Name); r != utf8.RuneError {
		hint = strings.ToUpper(string(r))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🧠 Guess the athlete!",
		Description: fmt.Sprintf("First to type the full name in <#%s> wins. You have %s.", listenID, humanDuration(window)),
		Color:       quizColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Nationality", Value: orUnknown(a.Nationality), Inline: true},
			{Name: "Sport", Value: orUnknown(a.Sport), Inline: true},
			{Name: "Category", Value: orUnknown(a.Category), Inline: true},
			{Name: "Hint", Value: fmt.Sprintf("The name starts with **%s**", hint)},
		},
	}
	return &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
}

func humanDuration(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	return d.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
