package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"pokegpt-bot/internal/analytics"
	"pokegpt-bot/internal/auth"
	"pokegpt-bot/internal/chatgpt"
	"pokegpt-bot/internal/config"
	"pokegpt-bot/internal/llm"
	"pokegpt-bot/internal/pokeapi"
	"pokegpt-bot/internal/scheduler"
	"pokegpt-bot/internal/storage"
	"pokegpt-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	// The database must be reachable before the message loop starts.
	gateway, err := storage.Open(cfg.DatabaseURL, cfg.DBConnectRetries, time.Duration(cfg.DBConnectDelay)*time.Second)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider))
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	gpt := chatgpt.New(llmClient)
	pokedex := pokeapi.New(cfg.PokeAPIBaseURL)
	defer pokedex.Close()

	authSvc := auth.New(cfg.AllowedUsers)

	bot, err := telegram.New(cfg.TelegramBotToken, authSvc, gpt, pokedex, gateway)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.AdminUserID != 0 {
		sched := scheduler.New(func(ctx context.Context) error {
			stats, err := gateway.Stats(time.Now().UTC())
			if err != nil {
				return err
			}
			bot.SendMessage(cfg.AdminUserID, analytics.FormatDailyReport(stats))
			return nil
		})
		if err := sched.Start(); err != nil {
			log.Printf("failed to start scheduler: %v", err)
		} else {
			defer sched.Stop()
		}
	}

	bot.Start(context.Background())
}
