package perception

//go:generate mockgen -destination=mock/mock_service.go -package=mockperception -source=service.go

import (
	"context"
	"errors"
	"time"

	"github.com/KirkDiggler/rpg-dm-tools/internal/dice"
	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/exploration"
	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/session"
	dnderr "github.com/KirkDiggler/rpg-dm-tools/internal/errors"
	"github.com/KirkDiggler/rpg-dm-tools/internal/repositories/sessionstate"
	"github.com/KirkDiggler/rpg-dm-tools/internal/uuid"
	"github.com/rs/zerolog"
)

// Repository is an alias for the session state repository interface
type Repository = sessionstate.Repository

// Service defines the perception service interface
type Service interface {
	// DetectTraps searches the session's current room for a trap.
	// Missing or unreadable session state is reported in the result, not
	// as an error.
	DetectTraps(ctx context.Context, input *DetectTrapsInput) (*DetectTrapsResult, error)
}

// DetectTrapsInput contains data for a detect traps action
type DetectTrapsInput struct {
	SessionID       string
	PerceptionBonus int
}

// service implements the Service interface
type service struct {
	repository Repository
	roller     dice.Roller
	trapTable  *exploration.TrapTable
	checkIDs   uuid.Generator
	logger     zerolog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository             // Required
	Roller     dice.Roller            // Optional, crypto-seeded random roller if nil
	TrapTable  *exploration.TrapTable // Optional, built-in traps if nil
	CheckIDs   uuid.Generator         // Optional, tags log lines of one check
	Logger     *zerolog.Logger        // Optional
}

// NewService creates a new perception service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
		trapTable:  cfg.TrapTable,
		checkIDs:   cfg.CheckIDs,
		logger:     zerolog.Nop(),
	}

	if svc.roller == nil {
		seed, err := dice.NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		svc.roller = dice.NewRandomRoller(seed)
	}

	if svc.checkIDs == nil {
		svc.checkIDs = uuid.NewGenerator()
	}

	if svc.trapTable == nil {
		svc.trapTable = exploration.DefaultTrapTable()
	}

	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("service", "perception").Logger()
	}

	return svc
}

// DetectTraps loads the session's room, rolls d20 + bonus and compares it
// with the DC of the room's trap
func (s *service) DetectTraps(ctx context.Context, input *DetectTrapsInput) (*DetectTrapsResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if err := session.ValidateID(input.SessionID); err != nil {
		return nil, err
	}

	logger := s.logger.With().
		Str("check_id", s.checkIDs.New()).
		Str("session_id", input.SessionID).
		Logger()

	state, err := s.repository.Get(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if dnderr.IsNotFound(err) {
			logger.Debug().Msg("session state not found")
			return NewSessionNotFoundResult(input.SessionID), nil
		}

		logger.Warn().Err(err).Msg("failed to load session state")
		return NewReadErrorResult(rootCause(err)), nil
	}

	roll, err := s.roller.Roll(1, 20, input.PerceptionBonus)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to roll perception check")
	}

	result := s.resolve(state.CurrentRoom, roll.Total)
	result.Dice = roll

	logger.Debug().
		Str("room", state.CurrentRoom).
		Str("outcome", string(result.Outcome)).
		Msg("resolved trap detection")

	return result, nil
}

func (s *service) resolve(roomID string, roll int) *DetectTrapsResult {
	trap, ok := s.trapTable.Lookup(roomID)
	if !ok {
		return NewClearResult(roll)
	}

	dc := trap.DC()
	if roll >= dc {
		return NewTrapFoundResult(roll, dc, trap)
	}

	return NewTrapMissedResult(roll, dc)
}

// rootCause strips our own wrapping so result messages carry the
// underlying I/O or decode error
func rootCause(err error) error {
	var dndErr *dnderr.Error
	if errors.As(err, &dndErr) && dndErr.Cause != nil {
		return rootCause(dndErr.Cause)
	}
	return err
}
