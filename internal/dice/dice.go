package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCount is returned when fewer than one die is requested
	ErrInvalidCount = errors.New("invalid dice count")

	// ErrInvalidSides is returned when a die has fewer than one side
	ErrInvalidSides = errors.New("invalid dice size")

	// ErrInvalidNotation is returned for strings that are not NdM[+B]
	ErrInvalidNotation = errors.New("invalid dice string")
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	IsCrit   bool  // Natural 20 on a single d20
	IsFumble bool  // Natural 1 on a single d20
}

// Natural returns the face of a single-die roll.
func (r *RollResult) Natural() int {
	if len(r.Rolls) == 0 {
		return 0
	}
	return r.Rolls[0]
}

// String renders the roll for chat, e.g. **17** : [15]+2
func (r *RollResult) String() string {
	faces := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		faces[i] = strconv.Itoa(roll)
	}
	list := "[" + strings.Join(faces, ",") + "]"

	if r.Bonus == 0 {
		return fmt.Sprintf("**%d** : %s", r.Total, list)
	}
	return fmt.Sprintf("**%d** : %s%+d", r.Total, list, r.Bonus)
}

// Notation is a parsed dice expression such as 2d6+3
type Notation struct {
	Count int
	Sides int
	Bonus int
}

func (n Notation) String() string {
	if n.Bonus == 0 {
		return fmt.Sprintf("%dd%d", n.Count, n.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", n.Count, n.Sides, n.Bonus)
}

// ParseNotation parses strings of the form NdM, NdM+B or NdM-B.
func ParseNotation(diceString string) (Notation, error) {
	s := strings.TrimSpace(strings.ToLower(diceString))
	dice := s
	bonus := 0

	if idx := strings.IndexAny(s, "+-"); idx >= 0 {
		b, err := strconv.Atoi(s[idx:])
		if err != nil {
			return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, diceString)
		}
		bonus = b
		dice = s[:idx]
	}

	parts := strings.Split(dice, "d")
	if len(parts) != 2 {
		return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, diceString)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil {
		return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, diceString)
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, diceString)
	}

	if count < 1 {
		return Notation{}, ErrInvalidCount
	}
	if sides < 1 {
		return Notation{}, ErrInvalidSides
	}

	return Notation{Count: count, Sides: sides, Bonus: bonus}, nil
}

// NewRollResult builds a result from already-rolled faces
func NewRollResult(rolls []int, sides, bonus int) *RollResult {
	rawTotal := 0
	for _, roll := range rolls {
		rawTotal += roll
	}

	result := &RollResult{
		Total: rawTotal + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: len(rolls),
		Sides: sides,
	}

	// Check for crit/fumble on d20
	if len(rolls) == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result
}
