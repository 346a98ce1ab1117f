package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-dm-tools/internal/repositories/sessionstate"
	"github.com/stretchr/testify/require"
)

// WriteSessionState marshals state into the session's state file under dataDir
// and returns the file path
func WriteSessionState(t *testing.T, dataDir, sessionID string, state any) string {
	t.Helper()

	data, err := json.MarshalIndent(state, "", "  ")
	require.NoError(t, err, "Failed to marshal session state")

	return WriteRawSessionState(t, dataDir, sessionID, data)
}

// WriteRawSessionState writes data verbatim as the session's state file
func WriteRawSessionState(t *testing.T, dataDir, sessionID string, data []byte) string {
	t.Helper()

	path := sessionstate.StatePath(dataDir, sessionID)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create session dir")
	require.NoError(t, os.WriteFile(path, data, 0o644), "Failed to write session state")

	return path
}

// RoomState is the minimal state document the session manager writes
func RoomState(room string) map[string]any {
	return map[string]any{
		"current_room": room,
	}
}
