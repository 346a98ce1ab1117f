package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/rpg-dm-tools/internal/config"
	"github.com/KirkDiggler/rpg-dm-tools/internal/handlers/discord"
	"github.com/KirkDiggler/rpg-dm-tools/internal/logging"
	"github.com/KirkDiggler/rpg-dm-tools/internal/services"
)

func main() {
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		bootLogger.Info().Msg("no .env file found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		bootLogger.Fatal().Err(err).Msg("invalid config")
	}
	if err := cfg.ValidateDiscord(); err != nil {
		bootLogger.Fatal().Err(err).Msg("invalid discord config")
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to create logger")
	}

	logger.Info().Str("app_id", cfg.Discord.AppID).Str("guild_id", cfg.Discord.GuildID).Msg("starting bot")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serviceProvider, err := services.NewProviderFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create service provider")
	}
	defer func() {
		if closeErr := serviceProvider.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close service provider")
		}
	}()

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create discord session")
		return
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Logger:          &logger,
	})

	dg.AddHandler(discord.RecoverMiddleware(logger, "interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		logger.Error().Err(err).Msg("failed to open discord connection")
		return
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close discord connection")
		}
	}()

	// Empty guild ID registers global commands
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		logger.Error().Err(err).Msg("failed to register commands")
		return
	}

	if cfg.Discord.GuildID != "" {
		logger.Info().Str("guild_id", cfg.Discord.GuildID).Msg("registered guild commands")
	} else {
		logger.Info().Msg("registered global commands (may take up to 1 hour to propagate)")
	}

	logger.Info().Msg("bot is running, press CTRL-C to exit")
	<-ctx.Done()
	logger.Info().Msg("shutting down")
}
