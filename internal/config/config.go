package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when TELEGRAM_TOKEN is unset. The rest of the
// config is still populated, so offline commands can keep going.
var ErrMissingToken = errors.New("TELEGRAM_TOKEN is required")

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken string
	DatabaseURL   string
	Location      *time.Location
	ReportTime    string
	RolloverTime  string
	WorkoutTime   string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is applied first if present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ReportTime:    strings.TrimSpace(os.Getenv("REPORT_TIME")),
		RolloverTime:  strings.TrimSpace(os.Getenv("ROLLOVER_TIME")),
		WorkoutTime:   strings.TrimSpace(os.Getenv("WORKOUT_TIME")),
		Location:      time.Local,
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "fitplanner.db"
	}
	if cfg.ReportTime == "" {
		cfg.ReportTime = "07:00"
	}
	if cfg.RolloverTime == "" {
		cfg.RolloverTime = "00:00"
	}
	if cfg.WorkoutTime == "" {
		cfg.WorkoutTime = "18:00"
	}

	if tz := strings.TrimSpace(os.Getenv("TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("TIMEZONE %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if cfg.TelegramToken == "" {
		return cfg, ErrMissingToken
	}

	return cfg, nil
}
