package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration.
type Config struct {
	TelegramToken   string
	GeminiAPIKey    string
	ChatDBPath      string
	CheckoutBaseURL string
	MaxContextSize  int
	CatalogLatency  time.Duration
}

// Load reads configuration from the environment, with .env support.
// GEMINI_API_KEY may be absent: the assistant then answers every message
// with a configuration-error reply instead of failing at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		ChatDBPath:      "data/chat.db",
		CheckoutBaseURL: os.Getenv("CHECKOUT_BASE_URL"),
		MaxContextSize:  20,
	}

	if dbPath := os.Getenv("CHAT_DB_PATH"); dbPath != "" {
		config.ChatDBPath = dbPath
	}

	if raw := os.Getenv("MAX_CONTEXT_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("MAX_CONTEXT_SIZE is invalid: %q", raw)
		}
		config.MaxContextSize = parsed
	}

	if raw := os.Getenv("CATALOG_LATENCY_MS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("CATALOG_LATENCY_MS is invalid: %q", raw)
		}
		config.CatalogLatency = time.Duration(parsed) * time.Millisecond
	}

	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
	}

	return config, nil
}
