package services

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-dm-tools/internal/config"
	"github.com/KirkDiggler/rpg-dm-tools/internal/dice"
	"github.com/KirkDiggler/rpg-dm-tools/internal/repositories/sessionstate"
	"github.com/KirkDiggler/rpg-dm-tools/internal/services/perception"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Provider holds all service instances
type Provider struct {
	PerceptionService perception.Service

	closers []func() error
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	StateRepository sessionstate.Repository // Required
	Roller          dice.Roller             // Optional
	Logger          *zerolog.Logger         // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	return &Provider{
		PerceptionService: perception.NewService(&perception.ServiceConfig{
			Repository: cfg.StateRepository,
			Roller:     cfg.Roller,
			Logger:     cfg.Logger,
		}),
	}
}

// NewProviderFromConfig wires the state backend and dice roller described by
// cfg. Close releases backend connections.
func NewProviderFromConfig(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Provider, error) {
	var closers []func() error

	var repo sessionstate.Repository
	switch cfg.State.Backend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}

		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		logger.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("reading session state from redis")
		repo = sessionstate.NewRedisRepository(&sessionstate.RedisRepoConfig{Client: client})
		closers = append(closers, client.Close)
	case config.BackendFile:
		logger.Info().Str("data_dir", cfg.State.DataDir).Msg("reading session state from files")
		repo = sessionstate.NewFileRepository(&sessionstate.FileRepoConfig{DataDir: cfg.State.DataDir})
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}

	var roller dice.Roller
	if cfg.Dice.HasSeed {
		logger.Info().Int64("seed", cfg.Dice.Seed).Msg("using fixed dice seed")
		roller = dice.NewRandomRoller(cfg.Dice.Seed)
	}

	provider := NewProvider(&ProviderConfig{
		StateRepository: repo,
		Roller:          roller,
		Logger:          &logger,
	})
	provider.closers = closers

	return provider, nil
}

// Close releases resources held by the provider
func (p *Provider) Close() error {
	var firstErr error
	for _, closeFn := range p.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.closers = nil
	return firstErr
}
