package chatgpt

import (
	"context"
	"log"
	"strings"

	"pokegpt-bot/internal/llm"
)

const (
	// Appended to every prompt so the model answers in the bot's reply language.
	languageInstruction = "Пожалуйста, ответь на русском языке."

	fallbackReply = "Извините, произошла ошибка при обработке вашего запроса."
)

// Service turns user text into a completion. It never returns an error:
// any backend failure is logged and replaced with a fixed apology, so the
// caller always has something to persist and reply with.
type Service struct {
	client llm.Client
}

func New(client llm.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Respond(ctx context.Context, text string) string {
	prompt := text + "\n" + languageInstruction

	resp, err := s.client.Generate(ctx, []llm.Message{{Role: "user", Content: prompt}})
	if err != nil {
		log.Printf("failed to get chatgpt response: %v", err)
		return fallbackReply
	}

	log.Printf("LLM response [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)

	return strings.TrimSpace(resp.Content)
}
