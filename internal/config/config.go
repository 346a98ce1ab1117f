package config

import (
	"fmt"
	"os"
	"strconv"
)

// Supported session state backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// DefaultDataDir is the game data directory used when GAME_DATA_DIR is unset
const DefaultDataDir = "game_data"

// Config holds all configuration for the application
type Config struct {
	State   StateConfig
	Redis   RedisConfig
	Dice    DiceConfig
	Log     LogConfig
	Discord DiscordConfig
}

// StateConfig selects where session state is read from
type StateConfig struct {
	Backend string
	DataDir string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string
}

// DiceConfig holds dice roller configuration
type DiceConfig struct {
	Seed    int64
	HasSeed bool   // Seed was set explicitly
	RawSeed string // DICE_SEED as read, parsed by Validate
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // console or json
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// Load reads configuration from environment variables. It does not validate
// so callers can apply overrides first; call Validate before use.
func Load() *Config {
	return &Config{
		State: StateConfig{
			Backend: getEnvOrDefault("STATE_BACKEND", BackendFile),
			DataDir: getEnvOrDefault("GAME_DATA_DIR", DefaultDataDir),
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "console"),
		},
		Dice: DiceConfig{
			RawSeed: os.Getenv("DICE_SEED"),
		},
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
	}
}

// SetSeed fixes the dice seed, replacing any DICE_SEED value
func (c *Config) SetSeed(seed int64) {
	c.Dice = DiceConfig{Seed: seed, HasSeed: true}
}

// Validate checks the settings shared by every binary and resolves
// DICE_SEED into Dice.Seed
func (c *Config) Validate() error {
	if !c.Dice.HasSeed && c.Dice.RawSeed != "" {
		seed, err := strconv.ParseInt(c.Dice.RawSeed, 10, 64)
		if err != nil {
			return fmt.Errorf("DICE_SEED must be an integer: %w", err)
		}
		c.SetSeed(seed)
	}

	switch c.State.Backend {
	case BackendFile:
		if c.State.DataDir == "" {
			return fmt.Errorf("GAME_DATA_DIR cannot be empty")
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown STATE_BACKEND %q (want %s or %s)", c.State.Backend, BackendFile, BackendRedis)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q (want console or json)", c.Log.Format)
	}

	return nil
}

// ValidateDiscord checks the settings the bot needs
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
