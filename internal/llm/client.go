package llm

import "context"

// Message is one chat-completion turn. The bot only ever sends a single
// user-role message per request.
type Message struct {
	Role    string
	Content string
}

// Response carries the completion text plus token accounting for logging.
type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is implemented by each completion provider (OpenAI, YandexGPT).
// Errors surface here; converting them to a user-facing fallback is the
// chatgpt service's job, not the provider's.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
