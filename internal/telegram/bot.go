package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pokegpt-bot/internal/auth"
	"pokegpt-bot/internal/storage"
)

// completionService produces a reply for free-form text. Implementations
// never fail: errors are absorbed into a fallback reply string.
type completionService interface {
	Respond(ctx context.Context, text string) string
}

// lookupService resolves a pokemon name into a formatted summary, with the
// same never-fail contract.
type lookupService interface {
	PokemonInfo(ctx context.Context, name string) string
}

type Bot struct {
	api      *tgbotapi.BotAPI
	s        sender
	authSvc  *auth.Service
	gpt      completionService
	pokedex  lookupService
	recorder storage.Recorder
}

func New(botToken string, authSvc *auth.Service, gpt completionService, pokedex lookupService, recorder storage.Recorder) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		s:        botAPISender{api: api},
		authSvc:  authSvc,
		gpt:      gpt,
		pokedex:  pokedex,
		recorder: recorder,
	}, nil
}

// Start runs the inbound message loop until the updates channel closes.
// Each message is handled in its own goroutine; ordering is guaranteed only
// within a single command (external call, then write, then reply).
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		msg := update.Message
		go b.handleCommand(ctx, msg)
	}
}

// SendMessage sends free-standing text, used by the daily report.
func (b *Bot) SendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := b.s.Send(out); err != nil {
		log.Printf("failed to send reply: %v", err)
	}
}
