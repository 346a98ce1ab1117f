package traps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-dm-tools/internal/services/perception"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	colorTrapFound  = 0x2ecc71 // Green
	colorTrapMissed = 0xe74c3c // Red
	colorClear      = 0x3498db // Blue
)

type DetectRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SessionID   string
	Bonus       int
}

type DetectHandlerConfig struct {
	PerceptionService perception.Service
}

type DetectHandler struct {
	perceptionService perception.Service
}

func NewDetectHandler(cfg *DetectHandlerConfig) *DetectHandler {
	if cfg == nil || cfg.PerceptionService == nil {
		panic("perception service is required")
	}

	return &DetectHandler{
		perceptionService: cfg.PerceptionService,
	}
}

// Handle rolls the check and responds in the channel. Failures are only
// shown to the caller.
func (h *DetectHandler) Handle(req *DetectRequest) error {
	result, err := h.perceptionService.DetectTraps(context.Background(), &perception.DetectTrapsInput{
		SessionID:       req.SessionID,
		PerceptionBonus: req.Bonus,
	})

	respondErr := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: BuildResponse(req.SessionID, result, err),
	})
	if err != nil {
		return fmt.Errorf("failed to detect traps: %w", err)
	}
	if respondErr != nil {
		return fmt.Errorf("failed to respond to interaction: %w", respondErr)
	}

	return nil
}

// BuildResponse renders a detect traps result as interaction data
func BuildResponse(sessionID string, result *perception.DetectTrapsResult, err error) *discordgo.InteractionResponseData {
	if err != nil {
		return &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ Failed to detect traps: %v", err),
			Flags:   discordgo.MessageFlagsEphemeral,
		}
	}

	if result.Error {
		return &discordgo.InteractionResponseData{
			Content: "❌ " + result.Message,
			Flags:   discordgo.MessageFlagsEphemeral,
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{BuildResultEmbed(sessionID, result)},
	}
}

// BuildResultEmbed renders a successful, missed or clear search
func BuildResultEmbed(sessionID string, result *perception.DetectTrapsResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: result.Message,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎲 Roll",
				Value:  rollValue(result),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Session " + sessionID,
		},
	}

	if result.HasDC() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🛡️ DC",
			Value:  strconv.Itoa(result.DC),
			Inline: true,
		})
	}

	switch result.Outcome {
	case perception.OutcomeTrapFound:
		embed.Title = "🎯 Trap Found: " + trapTitle(result.TrapType)
		embed.Color = colorTrapFound
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name:   "Difficulty",
				Value:  string(result.Difficulty),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "💥 Potential Damage",
				Value:  result.PotentialDamage,
				Inline: true,
			},
		)
	case perception.OutcomeTrapMissed:
		embed.Title = "❌ Nothing Spotted"
		embed.Color = colorTrapMissed
	default:
		embed.Title = "✓ Area Clear"
		embed.Color = colorClear
	}

	return embed
}

// rollValue shows the die faces when the service supplied them
func rollValue(result *perception.DetectTrapsResult) string {
	if result.Dice == nil {
		return strconv.Itoa(result.Roll)
	}

	value := result.Dice.String()
	switch {
	case result.Dice.IsCrit:
		value += " 🎉 Natural 20!"
	case result.Dice.IsFumble:
		value += " 💀 Natural 1"
	}
	return value
}

func trapTitle(trapType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(trapType, "_", " "))
}
