package exploration_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-dm-tools/internal/dice"
	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/exploration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyDC(t *testing.T) {
	tests := []struct {
		difficulty exploration.Difficulty
		want       int
	}{
		{difficulty: exploration.DifficultyEasy, want: 10},
		{difficulty: exploration.DifficultyMedium, want: 15},
		{difficulty: exploration.DifficultyHard, want: 20},
		{difficulty: "nightmare", want: 15},
		{difficulty: "", want: 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.difficulty.DC())
			assert.Equal(t, tt.want, exploration.Trap{Difficulty: tt.difficulty}.DC())
		})
	}
}

func TestDefaultTrapTable(t *testing.T) {
	table := exploration.DefaultTrapTable()

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{
		exploration.RoomAncientCrypt,
		exploration.RoomDarkwoodForestEntrance,
		exploration.RoomDragonLair,
	}, table.Rooms())

	tests := []struct {
		room       string
		trapType   string
		difficulty exploration.Difficulty
		damage     string
		dc         int
	}{
		{room: "darkwood_forest_entrance", trapType: "tripwire", difficulty: exploration.DifficultyEasy, damage: "1d6", dc: 10},
		{room: "ancient_crypt", trapType: "pressure_plate", difficulty: exploration.DifficultyMedium, damage: "2d6", dc: 15},
		{room: "dragon_lair", trapType: "magical_ward", difficulty: exploration.DifficultyHard, damage: "3d8", dc: 20},
	}

	for _, tt := range tests {
		t.Run(tt.room, func(t *testing.T) {
			trap, ok := table.Lookup(tt.room)
			require.True(t, ok)
			assert.True(t, trap.HasTrap)
			assert.Equal(t, tt.trapType, trap.TrapType)
			assert.Equal(t, tt.difficulty, trap.Difficulty)
			assert.Equal(t, tt.damage, trap.Damage)
			assert.Equal(t, tt.dc, trap.DC())
			assert.NotEmpty(t, trap.Description)

			_, err := dice.ParseNotation(trap.Damage)
			assert.NoError(t, err)
		})
	}
}

func TestTrapTable_LookupMissingRoom(t *testing.T) {
	table := exploration.DefaultTrapTable()

	for _, room := range []string{"town_square", "", "Dragon_Lair", "dragon_lair "} {
		_, ok := table.Lookup(room)
		assert.False(t, ok, "room %q", room)
	}
}

func TestTrapTable_RoomsIsACopy(t *testing.T) {
	table := exploration.DefaultTrapTable()

	rooms := table.Rooms()
	rooms[0] = "tampered"

	assert.NotContains(t, table.Rooms(), "tampered")
}

func TestNewTrapTable(t *testing.T) {
	valid := exploration.Trap{
		HasTrap:     true,
		TrapType:    "pit",
		Description: "A concealed pit.",
		Difficulty:  "unusual",
		Damage:      "2d10",
	}

	t.Run("copies entries", func(t *testing.T) {
		entries := map[string]exploration.Trap{"cellar": valid}
		table, err := exploration.NewTrapTable(entries)
		require.NoError(t, err)

		delete(entries, "cellar")
		trap, ok := table.Lookup("cellar")
		require.True(t, ok)
		assert.Equal(t, exploration.DefaultDC, trap.DC())
	})

	t.Run("empty table", func(t *testing.T) {
		table, err := exploration.NewTrapTable(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	invalid := map[string]map[string]exploration.Trap{
		"entry without trap": {"cellar": {TrapType: "pit", Damage: "1d6"}},
		"empty room id":      {"": valid},
		"missing type":       {"cellar": {HasTrap: true, Damage: "1d6"}},
		"bad damage":         {"cellar": {HasTrap: true, TrapType: "pit", Damage: "lots"}},
	}
	for name, entries := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := exploration.NewTrapTable(entries)
			assert.Error(t, err)
		})
	}
}
