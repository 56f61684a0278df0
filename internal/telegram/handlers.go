package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pokegpt-bot/internal/storage"
)

const welcomeText = "👋 Добро пожаловать в ChatGPT & Pokemon Бота!\n\n" +
	"Вы можете:\n" +
	"🤖 Общаться с GPT: Начните сообщение с '/gpt'\n" +
	"🎮 Получить информацию о покемоне: Начните с '/pokemon'\n" +
	"❓ Используйте /help для просмотра всех команд"

const helpText = "🤖 Команды бота:\n\n" +
	"/start - Запустить бота\n" +
	"/help - Показать это сообщение помощи\n" +
	"/gpt <сообщение> - Общаться с ChatGPT\n" +
	"/pokemon <имя> - Получить информацию о покемоне\n\n" +
	"Примеры:\n" +
	"/gpt Что такое Python?\n" +
	"/pokemon pikachu"

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if !b.authSvc.IsAllowed(msg.From.ID) {
		log.Printf("rejected command from user %d (@%s)", msg.From.ID, msg.From.UserName)
		b.reply(msg, "Извините, у вас нет доступа к этому боту.")
		return
	}

	switch msg.Command() {
	case "start":
		b.reply(msg, welcomeText)
	case "help":
		b.reply(msg, helpText)
	case "gpt":
		b.handleGpt(ctx, msg)
	case "pokemon":
		b.handlePokemon(ctx, msg)
	}
}

func (b *Bot) handleGpt(ctx context.Context, msg *tgbotapi.Message) {
	userText := strings.TrimSpace(msg.CommandArguments())
	if userText == "" {
		b.reply(msg, "Пожалуйста, добавьте сообщение после /gpt")
		return
	}

	log.Printf("gpt request from %d: %q", msg.From.ID, userText)
	response := b.gpt.Respond(ctx, userText)

	b.persist(storage.Interaction{
		UserID:      msg.From.ID,
		UserMessage: userText,
		BotResponse: response,
		Source:      storage.SourceChatGPT,
	})

	b.reply(msg, response)
}

func (b *Bot) handlePokemon(ctx context.Context, msg *tgbotapi.Message) {
	pokemonName := strings.TrimSpace(msg.CommandArguments())
	if pokemonName == "" {
		b.reply(msg, "Пожалуйста, укажите имя покемона после /pokemon")
		return
	}

	log.Printf("pokemon request from %d: %q", msg.From.ID, pokemonName)
	response := b.pokedex.PokemonInfo(ctx, pokemonName)

	b.persist(storage.Interaction{
		UserID:      msg.From.ID,
		UserMessage: pokemonName,
		BotResponse: response,
		Source:      storage.SourcePokeAPI,
	})

	b.reply(msg, response)
}

// persist writes one interaction before the reply goes out. A storage
// failure is logged but must not cost the user their reply.
func (b *Bot) persist(interaction storage.Interaction) {
	if b.recorder == nil {
		return
	}
	if err := b.recorder.AppendInteraction(interaction); err != nil {
		log.Printf("failed to persist interaction: %v", err)
	}
}
