package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all the configuration for the application
type Config struct {
	BotToken     string
	AdminID      int64
	DatabasePath string
	Debug        bool
}

// Load loads the configuration from environment variables.
// A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		return nil, errors.New("BOT_TOKEN environment variable is required")
	}

	// ADMIN_ID is optional; without it no admin views are available
	var adminID int64
	if raw := os.Getenv("ADMIN_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("ADMIN_ID must be a numeric Telegram user id")
		}
		adminID = id
	}

	// Set database path with default
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/oge.db"
	}

	return &Config{
		BotToken:     botToken,
		AdminID:      adminID,
		DatabasePath: dbPath,
		Debug:        os.Getenv("DEBUG") == "true",
	}, nil
}
