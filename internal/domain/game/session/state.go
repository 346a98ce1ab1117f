package session

import (
	"strings"

	dnderr "github.com/KirkDiggler/rpg-dm-tools/internal/errors"
)

// State is the persisted game state of a session. It is written by the
// session manager; this module only reads it.
type State struct {
	SessionID   string `json:"session_id,omitempty"`
	CurrentRoom string `json:"current_room"`
}

// ValidateID checks that a session id is usable as a storage key and as a
// single directory name.
func ValidateID(id string) error {
	switch {
	case id == "":
		return dnderr.InvalidArgument("session ID is required")
	case id == "." || id == "..":
		return dnderr.InvalidArgumentf("invalid session ID %q", id)
	case strings.ContainsAny(id, `/\`):
		return dnderr.InvalidArgumentf("session ID %q must not contain path separators", id)
	case strings.ContainsRune(id, 0):
		return dnderr.InvalidArgumentf("session ID %q contains a NUL byte", id)
	}
	return nil
}
