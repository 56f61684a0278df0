package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN,required"`
	AllowedUsers     []int64 `env:"ALLOWED_USERS" envSeparator:":"`
	AdminUserID      int64   `env:"ADMIN_USER"`

	// LLM settings
	LLMProvider       LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey      string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string      `env:"OPENAI_BASE_URL"`
	OpenAIModel       string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	OpenAIMaxTokens   int         `env:"OPENAI_MAX_TOKENS" envDefault:"1000"`
	OpenAITemperature float64     `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	YandexOAuthToken  string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID    string      `env:"YANDEX_FOLDER_ID"`

	// PokeAPI
	PokeAPIBaseURL string `env:"POKEAPI_BASE_URL" envDefault:"https://pokeapi.co/api/v2"`

	// Storage
	DatabaseURL      string `env:"DATABASE_URL,required"`
	DBConnectRetries int    `env:"DB_CONNECT_RETRIES" envDefault:"5"`
	DBConnectDelay   int    `env:"DB_CONNECT_DELAY" envDefault:"5"` // seconds
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
