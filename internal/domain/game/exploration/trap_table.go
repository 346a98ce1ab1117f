package exploration

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-dm-tools/internal/dice"
)

// Room identifiers that carry a trap in the default table
const (
	RoomDarkwoodForestEntrance = "darkwood_forest_entrance"
	RoomAncientCrypt           = "ancient_crypt"
	RoomDragonLair             = "dragon_lair"
)

// TrapTable maps room identifiers to the trap placed in that room.
// A table is immutable once built.
type TrapTable struct {
	traps map[string]Trap
}

// NewTrapTable validates and copies entries into a table. Every entry must
// be an actual trap with parseable damage dice.
func NewTrapTable(entries map[string]Trap) (*TrapTable, error) {
	traps := make(map[string]Trap, len(entries))
	for roomID, trap := range entries {
		if roomID == "" {
			return nil, fmt.Errorf("trap table: empty room id")
		}
		if !trap.HasTrap {
			return nil, fmt.Errorf("trap table: room %s has an entry without a trap", roomID)
		}
		if trap.TrapType == "" {
			return nil, fmt.Errorf("trap table: room %s is missing a trap type", roomID)
		}
		if _, err := dice.ParseNotation(trap.Damage); err != nil {
			return nil, fmt.Errorf("trap table: room %s damage: %w", roomID, err)
		}
		traps[roomID] = trap
	}

	return &TrapTable{traps: traps}, nil
}

var defaultTrapTable = mustTrapTable(map[string]Trap{
	RoomDarkwoodForestEntrance: {
		HasTrap:     true,
		TrapType:    "tripwire",
		Description: "A nearly invisible tripwire stretched across the path, connected to a net trap overhead.",
		Difficulty:  DifficultyEasy,
		Damage:      "1d6",
	},
	RoomAncientCrypt: {
		HasTrap:     true,
		TrapType:    "pressure_plate",
		Description: "A stone pressure plate on the floor, likely triggering poison darts from the walls.",
		Difficulty:  DifficultyMedium,
		Damage:      "2d6",
	},
	RoomDragonLair: {
		HasTrap:     true,
		TrapType:    "magical_ward",
		Description: "Glowing runes around the entrance - a magical alarm that will alert the dragon.",
		Difficulty:  DifficultyHard,
		Damage:      "3d8",
	},
})

// DefaultTrapTable returns the built-in room traps
func DefaultTrapTable() *TrapTable {
	return defaultTrapTable
}

func mustTrapTable(entries map[string]Trap) *TrapTable {
	table, err := NewTrapTable(entries)
	if err != nil {
		panic(err)
	}
	return table
}

// Lookup returns the trap for a room, if any
func (t *TrapTable) Lookup(roomID string) (Trap, bool) {
	trap, ok := t.traps[roomID]
	return trap, ok
}

// Rooms returns the trapped room ids in sorted order
func (t *TrapTable) Rooms() []string {
	rooms := make([]string, 0, len(t.traps))
	for roomID := range t.traps {
		rooms = append(rooms, roomID)
	}
	sort.Strings(rooms)
	return rooms
}

// Len returns the number of trapped rooms
func (t *TrapTable) Len() int {
	return len(t.traps)
}
