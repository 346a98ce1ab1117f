package perception_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KirkDiggler/rpg-dm-tools/internal/dice"
	mockdice "github.com/KirkDiggler/rpg-dm-tools/internal/dice/mock"
	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/exploration"
	"github.com/KirkDiggler/rpg-dm-tools/internal/repositories/sessionstate"
	"github.com/KirkDiggler/rpg-dm-tools/internal/services/perception"
	"github.com/KirkDiggler/rpg-dm-tools/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, result *perception.DetectTrapsResult) map[string]any {
	t.Helper()

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestResultJSON_Branches(t *testing.T) {
	trap, ok := exploration.DefaultTrapTable().Lookup(exploration.RoomAncientCrypt)
	require.True(t, ok)

	t.Run("trap found", func(t *testing.T) {
		out := decode(t, perception.NewTrapFoundResult(17, 15, trap))

		assert.ElementsMatch(t, []string{
			"success", "roll", "dc", "trap_found", "trap_type",
			"description", "difficulty", "potential_damage", "message",
		}, keys(out))
		assert.Equal(t, true, out["success"])
		assert.Equal(t, true, out["trap_found"])
		assert.Equal(t, float64(17), out["roll"])
		assert.Equal(t, float64(15), out["dc"])
		assert.Equal(t, "pressure_plate", out["trap_type"])
		assert.Equal(t, "medium", out["difficulty"])
		assert.Equal(t, "2d6", out["potential_damage"])
	})

	t.Run("trap missed", func(t *testing.T) {
		out := decode(t, perception.NewTrapMissedResult(4, 15))

		assert.ElementsMatch(t, []string{"success", "roll", "dc", "trap_found", "message"}, keys(out))
		assert.Equal(t, false, out["success"])
		assert.Equal(t, false, out["trap_found"])
		assert.Equal(t, float64(15), out["dc"])
	})

	t.Run("clear", func(t *testing.T) {
		out := decode(t, perception.NewClearResult(9))

		assert.ElementsMatch(t, []string{"success", "roll", "trap_found", "message"}, keys(out))
		assert.NotContains(t, out, "dc")
		assert.Equal(t, true, out["success"])
		assert.Equal(t, false, out["trap_found"])
	})

	t.Run("error", func(t *testing.T) {
		out := decode(t, perception.NewReadErrorResult(errors.New("unexpected end of JSON input")))

		assert.ElementsMatch(t, []string{"error", "message"}, keys(out))
		assert.Equal(t, true, out["error"])
		assert.Equal(t, "Failed to read session state: unexpected end of JSON input", out["message"])
	})

	t.Run("unknown outcome", func(t *testing.T) {
		_, err := json.Marshal(&perception.DetectTrapsResult{Outcome: "maybe"})
		assert.Error(t, err)
	})
}

func TestResultJSON_OmitsDice(t *testing.T) {
	result := perception.NewClearResult(12)
	result.Dice = dice.NewRollResult([]int{12}, 20, 0)

	out := decode(t, result)
	assert.ElementsMatch(t, []string{"success", "roll", "trap_found", "message"}, keys(out))
}

func TestResultJSON_FieldOrder(t *testing.T) {
	data, err := json.Marshal(perception.NewClearResult(12))
	require.NoError(t, err)

	assert.Equal(t,
		`{"success":true,"roll":12,"trap_found":false,"message":"✓ Clear! (Rolled 12)\n\nYou thoroughly search the area. There are no traps in this location - you can proceed safely."}`,
		string(data))
}

// Exercises the resolver against state files on disk the way the session
// manager writes them.
func TestDetectTraps_FileBackedScenarios(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	roller := mockdice.NewManualMockRoller()
	svc := perception.NewService(&perception.ServiceConfig{
		Repository: sessionstate.NewFileRepository(&sessionstate.FileRepoConfig{DataDir: dataDir}),
		Roller:     roller,
	})

	testutils.WriteSessionState(t, dataDir, "forest", testutils.RoomState("darkwood_forest_entrance"))
	testutils.WriteSessionState(t, dataDir, "town", testutils.RoomState("town_square"))
	testutils.WriteRawSessionState(t, dataDir, "corrupt", []byte("{not json"))

	t.Run("roll 15 spots the tripwire", func(t *testing.T) {
		roller.SetRolls([]int{15})
		result, err := svc.DetectTraps(ctx, &perception.DetectTrapsInput{SessionID: "forest"})
		require.NoError(t, err)

		out := decode(t, result)
		assert.Equal(t, true, out["trap_found"])
		assert.Equal(t, float64(10), out["dc"])
		assert.Equal(t, "tripwire", out["trap_type"])
	})

	t.Run("roll 5 misses the tripwire", func(t *testing.T) {
		roller.SetRolls([]int{5})
		result, err := svc.DetectTraps(ctx, &perception.DetectTrapsInput{SessionID: "forest"})
		require.NoError(t, err)

		out := decode(t, result)
		assert.Equal(t, false, out["trap_found"])
		assert.Equal(t, float64(10), out["dc"])
	})

	t.Run("town square has no trap", func(t *testing.T) {
		roller.SetRolls([]int{1})
		result, err := svc.DetectTraps(ctx, &perception.DetectTrapsInput{SessionID: "town"})
		require.NoError(t, err)

		out := decode(t, result)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, false, out["trap_found"])
		assert.NotContains(t, out, "dc")
	})

	t.Run("missing session", func(t *testing.T) {
		result, err := svc.DetectTraps(ctx, &perception.DetectTrapsInput{SessionID: "ghost"})
		require.NoError(t, err)

		out := decode(t, result)
		assert.Equal(t, true, out["error"])
		assert.Contains(t, out["message"], "ghost")
	})

	t.Run("malformed state", func(t *testing.T) {
		var result *perception.DetectTrapsResult
		assert.NotPanics(t, func() {
			var err error
			result, err = svc.DetectTraps(ctx, &perception.DetectTrapsInput{SessionID: "corrupt"})
			require.NoError(t, err)
		})

		out := decode(t, result)
		assert.Equal(t, true, out["error"])
		assert.Contains(t, out["message"], "Failed to read session state")
	})
}
