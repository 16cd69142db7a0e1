// Package config builds the explicit application configuration from the
// environment. The struct is injected into the components that need it;
// nothing reads ambient globals after startup.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Server struct {
	Host string
	Port string
}

type Completion struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

type Config struct {
	Server         Server
	Completion     Completion
	SMTP           SMTP
	CurrencySymbol string
	// AliasesFile optionally points to a YAML file overriding the built-in
	// column synonym sets.
	AliasesFile string
}

// Load reads configuration from environment variables. Call godotenv.Load
// first if a .env file should participate.
func Load() (*Config, error) {
	maxTokens, err := strconv.Atoi(getEnv("OPENAI_MAX_TOKENS", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPENAI_MAX_TOKENS: %w", err)
	}

	return &Config{
		Server: Server{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Completion: Completion{
			BaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:    os.Getenv("OPENAI_API_KEY"),
			Model:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			MaxTokens: maxTokens,
		},
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnv("SMTP_PORT", "465"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   getEnv("SMTP_SENDER", os.Getenv("SMTP_USERNAME")),
		},
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
		AliasesFile:    os.Getenv("COLUMN_ALIASES_FILE"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
