package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TELEGRAM_TOKEN", "DATABASE_URL", "REPORT_TIME", "ROLLOVER_TIME", "WORKOUT_TIME", "TIMEZONE"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", " abc ")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.TelegramToken)
	assert.Equal(t, "fitplanner.db", cfg.DatabaseURL)
	assert.Equal(t, "07:00", cfg.ReportTime)
	assert.Equal(t, "00:00", cfg.RolloverTime)
	assert.Equal(t, "18:00", cfg.WorkoutTime)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "abc")
	t.Setenv("DATABASE_URL", "data/planner.db")
	t.Setenv("REPORT_TIME", "06:30")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "data/planner.db", cfg.DatabaseURL)
	assert.Equal(t, "06:30", cfg.ReportTime)
	assert.Equal(t, "UTC", cfg.Location.String())
}

func TestFromEnv_MissingTokenKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	assert.ErrorIs(t, err, config.ErrMissingToken)
	assert.Equal(t, "fitplanner.db", cfg.DatabaseURL)
}

func TestFromEnv_BadTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "abc")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := config.FromEnv()
	assert.Error(t, err)
}
