package llm

import (
	"fmt"
	"strings"

	"pokegpt-bot/internal/config"
)

// Factory creates LLM clients from resolved configuration.
type Factory struct {
	cfg *config.Config
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

func (f *Factory) CreateClient(provider string) (Client, error) {
	switch strings.ToLower(provider) {
	case string(config.ProviderOpenAI):
		return NewOpenAI(
			f.cfg.OpenAIAPIKey,
			f.cfg.OpenAIBaseURL,
			f.cfg.OpenAIModel,
			f.cfg.OpenAIMaxTokens,
			f.cfg.OpenAITemperature,
		), nil
	case string(config.ProviderYandex):
		return NewYandex(f.cfg.YandexOAuthToken, f.cfg.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
