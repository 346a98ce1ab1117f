package config_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-dm-tools/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STATE_BACKEND", "GAME_DATA_DIR", "REDIS_URL", "DICE_SEED",
		"LOG_LEVEL", "LOG_FORMAT", "DISCORD_TOKEN", "DISCORD_APP_ID", "DISCORD_GUILD_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.BackendFile, cfg.State.Backend)
	assert.Equal(t, "game_data", cfg.State.DataDir)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Dice.HasSeed)
	assert.Error(t, cfg.ValidateDiscord())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("GAME_DATA_DIR", "/srv/game")
	t.Setenv("DICE_SEED", "-17")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")

	cfg := config.Load()
	assert.Equal(t, "-17", cfg.Dice.RawSeed)
	assert.False(t, cfg.Dice.HasSeed, "seed is resolved by Validate")
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.BackendRedis, cfg.State.Backend)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, "/srv/game", cfg.State.DataDir)
	assert.True(t, cfg.Dice.HasSeed)
	assert.Equal(t, int64(-17), cfg.Dice.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.ValidateDiscord())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown backend": {"STATE_BACKEND": "s3"},
		"bad seed":        {"DICE_SEED": "lucky"},
		"bad log format":  {"LOG_FORMAT": "xml"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}

			cfg := config.Load()
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_AfterOverrides(t *testing.T) {
	cfg := &config.Config{
		State: config.StateConfig{Backend: config.BackendFile},
		Log:   config.LogConfig{Format: "console"},
	}
	assert.Error(t, cfg.Validate(), "empty data dir")

	cfg.State.DataDir = "data"
	assert.NoError(t, cfg.Validate())

	cfg.State.Backend = config.BackendRedis
	assert.Error(t, cfg.Validate(), "redis without url")
}

func TestLoad_DoesNotValidate(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATE_BACKEND", "bogus")
	t.Setenv("DICE_SEED", "abc")

	cfg := config.Load()
	assert.Error(t, cfg.Validate())

	// Overrides replace the bad values before validation
	cfg.State.Backend = config.BackendFile
	cfg.SetSeed(5)
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Dice.HasSeed)
	assert.Equal(t, int64(5), cfg.Dice.Seed)
}

func TestSetSeed_IgnoresEnvSeed(t *testing.T) {
	cfg := &config.Config{
		State: config.StateConfig{Backend: config.BackendFile, DataDir: "data"},
		Log:   config.LogConfig{Format: "json"},
		Dice:  config.DiceConfig{RawSeed: "9"},
	}
	cfg.SetSeed(3)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(3), cfg.Dice.Seed)
	assert.Empty(t, cfg.Dice.RawSeed)
}
