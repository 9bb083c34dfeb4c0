package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "123:abc", cfg.BotToken)
	require.Zero(t, cfg.AdminID)
	require.Equal(t, "./data/oge.db", cfg.DatabasePath)
	require.False(t, cfg.Debug)
}

func TestLoadParsesAdminID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "1142854194")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(1142854194), cfg.AdminID)
}

func TestLoadRejectsBadAdminID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
