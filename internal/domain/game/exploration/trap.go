package exploration

// Difficulty is how hard a trap is to spot and disarm
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDC is used for difficulties outside the known set
const DefaultDC = 15

// DC returns the perception threshold for the difficulty
func (d Difficulty) DC() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 20
	default:
		return DefaultDC
	}
}

// Trap is a hazard placed in a room
type Trap struct {
	HasTrap     bool       `json:"has_trap"`
	TrapType    string     `json:"trap_type"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Damage      string     `json:"damage"` // dice notation, e.g. 2d6
}

// DC returns the perception threshold needed to notice the trap
func (t Trap) DC() int {
	return t.Difficulty.DC()
}
