package discord

import (
	"fmt"

	"github.com/KirkDiggler/rpg-dm-tools/internal/handlers/discord/dnd/traps"
	"github.com/KirkDiggler/rpg-dm-tools/internal/services"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	logger          zerolog.Logger

	// Trap handlers
	trapsDetectHandler *traps.DetectHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	Logger          *zerolog.Logger
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		logger:          logger.With().Str("component", "discord").Logger(),
		trapsDetectHandler: traps.NewDetectHandler(&traps.DetectHandlerConfig{
			PerceptionService: cfg.ServiceProvider.PerceptionService,
		}),
	}
}

// Commands returns the slash commands served by the handler
func Commands() []*discordgo.ApplicationCommand {
	minBonus := float64(-10)
	maxBonus := float64(30)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "dnd",
			Description: "D&D 5e dungeon master tools",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "traps",
					Description: "Trap commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "detect",
							Description: "Search the current room of a session for traps",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "session",
									Description: "Session ID",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "bonus",
									Description: "Perception bonus (default 0)",
									Required:    false,
									MinValue:    &minBonus,
									MaxValue:    maxBonus,
								},
							},
						},
					},
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	req, ok := parseDetectOptions(data)
	if !ok {
		return
	}
	req.Session = s
	req.Interaction = i

	if err := h.trapsDetectHandler.Handle(req); err != nil {
		h.logger.Error().Err(err).Str("session_id", req.SessionID).Msg("error handling traps detect command")
	}
}

// parseDetectOptions extracts /dnd traps detect arguments. ok is false for
// any other command.
func parseDetectOptions(data discordgo.ApplicationCommandInteractionData) (*traps.DetectRequest, bool) {
	if data.Name != "dnd" || len(data.Options) == 0 {
		return nil, false
	}

	group := data.Options[0]
	if group.Type != discordgo.ApplicationCommandOptionSubCommandGroup || group.Name != "traps" {
		return nil, false
	}
	if len(group.Options) == 0 || group.Options[0].Name != "detect" {
		return nil, false
	}

	req := &traps.DetectRequest{}
	for _, opt := range group.Options[0].Options {
		switch opt.Name {
		case "session":
			req.SessionID = opt.StringValue()
		case "bonus":
			req.Bonus = int(opt.IntValue())
		}
	}

	return req, true
}
