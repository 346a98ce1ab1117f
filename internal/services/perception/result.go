package perception

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-dm-tools/internal/dice"
	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/exploration"
)

// Outcome identifies which branch a detection attempt resolved to
type Outcome string

const (
	OutcomeError      Outcome = "error"
	OutcomeTrapFound  Outcome = "trap_found"
	OutcomeTrapMissed Outcome = "trap_missed"
	OutcomeClear      Outcome = "clear"
)

// DetectTrapsResult is the outcome of a detect traps action. Which fields
// are meaningful depends on Outcome; MarshalJSON only emits those.
type DetectTrapsResult struct {
	Outcome         Outcome
	Error           bool
	Success         bool
	TrapFound       bool
	Roll            int
	DC              int
	TrapType        string
	Description     string
	Difficulty      exploration.Difficulty
	PotentialDamage string
	Message         string

	// Dice is the perception roll behind Roll. Set by the service, never
	// serialized.
	Dice *dice.RollResult
}

// HasDC reports whether the attempt was made against a trap's DC
func (r *DetectTrapsResult) HasDC() bool {
	return r.Outcome == OutcomeTrapFound || r.Outcome == OutcomeTrapMissed
}

// NewSessionNotFoundResult reports a session without stored state
func NewSessionNotFoundResult(sessionID string) *DetectTrapsResult {
	return &DetectTrapsResult{
		Outcome: OutcomeError,
		Error:   true,
		Message: fmt.Sprintf("Session '%s' not found. Create a session first.", sessionID),
	}
}

// NewReadErrorResult reports state that exists but could not be read
func NewReadErrorResult(cause error) *DetectTrapsResult {
	return &DetectTrapsResult{
		Outcome: OutcomeError,
		Error:   true,
		Message: fmt.Sprintf("Failed to read session state: %v", cause),
	}
}

// NewClearResult reports a search of a room that has no trap
func NewClearResult(roll int) *DetectTrapsResult {
	return &DetectTrapsResult{
		Outcome: OutcomeClear,
		Success: true,
		Roll:    roll,
		Message: fmt.Sprintf("✓ Clear! (Rolled %d)\n\n"+
			"You thoroughly search the area. There are no traps in this location - you can proceed safely.", roll),
	}
}

// NewTrapFoundResult reports a roll that met the trap's DC
func NewTrapFoundResult(roll, dc int, trap exploration.Trap) *DetectTrapsResult {
	return &DetectTrapsResult{
		Outcome:         OutcomeTrapFound,
		Success:         true,
		TrapFound:       true,
		Roll:            roll,
		DC:              dc,
		TrapType:        trap.TrapType,
		Description:     trap.Description,
		Difficulty:      trap.Difficulty,
		PotentialDamage: trap.Damage,
		Message: fmt.Sprintf("🎯 Success! (Rolled %d vs DC %d)\n\n"+
			"You carefully scan the area and spot a %s:\n%s\n\n"+
			"This trap appears to be %s to disarm and could deal %s damage if triggered.",
			roll, dc, trap.TrapType, trap.Description, trap.Difficulty, trap.Damage),
	}
}

// NewTrapMissedResult reports a roll below the trap's DC
func NewTrapMissedResult(roll, dc int) *DetectTrapsResult {
	return &DetectTrapsResult{
		Outcome: OutcomeTrapMissed,
		Roll:    roll,
		DC:      dc,
		Message: fmt.Sprintf("❌ Failed! (Rolled %d vs DC %d)\n\n"+
			"You search the area carefully but don't notice anything suspicious. The room appears safe... or does it?", roll, dc),
	}
}

type errorJSON struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type trapFoundJSON struct {
	Success         bool                   `json:"success"`
	Roll            int                    `json:"roll"`
	DC              int                    `json:"dc"`
	TrapFound       bool                   `json:"trap_found"`
	TrapType        string                 `json:"trap_type"`
	Description     string                 `json:"description"`
	Difficulty      exploration.Difficulty `json:"difficulty"`
	PotentialDamage string                 `json:"potential_damage"`
	Message         string                 `json:"message"`
}

type trapMissedJSON struct {
	Success   bool   `json:"success"`
	Roll      int    `json:"roll"`
	DC        int    `json:"dc"`
	TrapFound bool   `json:"trap_found"`
	Message   string `json:"message"`
}

type clearJSON struct {
	Success   bool   `json:"success"`
	Roll      int    `json:"roll"`
	TrapFound bool   `json:"trap_found"`
	Message   string `json:"message"`
}

// MarshalJSON emits the fields of the result's branch only
func (r DetectTrapsResult) MarshalJSON() ([]byte, error) {
	switch r.Outcome {
	case OutcomeError:
		return json.Marshal(errorJSON{
			Error:   true,
			Message: r.Message,
		})
	case OutcomeTrapFound:
		return json.Marshal(trapFoundJSON{
			Success:         r.Success,
			Roll:            r.Roll,
			DC:              r.DC,
			TrapFound:       r.TrapFound,
			TrapType:        r.TrapType,
			Description:     r.Description,
			Difficulty:      r.Difficulty,
			PotentialDamage: r.PotentialDamage,
			Message:         r.Message,
		})
	case OutcomeTrapMissed:
		return json.Marshal(trapMissedJSON{
			Success:   r.Success,
			Roll:      r.Roll,
			DC:        r.DC,
			TrapFound: r.TrapFound,
			Message:   r.Message,
		})
	case OutcomeClear:
		return json.Marshal(clearJSON{
			Success:   r.Success,
			Roll:      r.Roll,
			TrapFound: r.TrapFound,
			Message:   r.Message,
		})
	default:
		return nil, fmt.Errorf("unknown detection outcome %q", r.Outcome)
	}
}
