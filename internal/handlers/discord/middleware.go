package discord

import (
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(logger zerolog.Logger, handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("handler", handlerName).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")

				respondWithError(logger, s, i, fmt.Sprintf("An unexpected error occurred: %v", r))
			}
		}()

		handler(s, i)
	}
}

// respondWithError attempts to send an error message to the user
func respondWithError(logger zerolog.Logger, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	responses := []func() error{
		// Not yet responded
		func() error {
			return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("❌ %s", message),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		// Already responded
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: fmt.Sprintf("❌ %s", message),
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	logger.Warn().Str("message", message).Msg("failed to send error response to user")
}
