package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SHEET_CSV_URL", "https://example.com/sheet.csv")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 3, cfg.FetchMaxRetries)
	assert.False(t, cfg.SnapshotEnabled)
	assert.Equal(t, "flightboard", cfg.MongoDB)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SHEET_CSV_URL", "https://example.com/sheet.csv")
	t.Setenv("PORT", "9090")
	t.Setenv("FETCH_MAX_RETRIES", "5")
	t.Setenv("SNAPSHOT_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.FetchMaxRetries)
	assert.True(t, cfg.SnapshotEnabled)
}

func TestLoadConfig_RequiresSheetURL(t *testing.T) {
	t.Setenv("SHEET_CSV_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
