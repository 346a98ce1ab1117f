package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// randomRoller implements Roller with a seeded pseudo-random source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller whose sequence is fully determined by seed
func NewRandomRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewSeed returns a high-entropy seed for NewRandomRoller
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if sides < 1 {
		return nil, ErrInvalidSides
	}

	rolls := make([]int, count)

	r.mu.Lock()
	for i := range rolls {
		rolls[i] = r.rng.Intn(sides) + 1
	}
	r.mu.Unlock()

	return NewRollResult(rolls, sides, bonus), nil
}
