package sessionstate

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksessionstate -source=repository.go

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/session"
	dnderr "github.com/KirkDiggler/rpg-dm-tools/internal/errors"
)

// Repository reads session state written by the session manager.
//
// Get returns a not found error when the session has no state, an invalid
// argument error for unusable ids and an internal or unavailable error when
// the state exists but cannot be read.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*session.State, error)
}

func decodeState(sessionID string, data []byte) (*session.State, error) {
	var state *session.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to decode session state").
			WithMeta("session_id", sessionID)
	}
	if state == nil {
		return nil, dnderr.Internalf("session state for %s is empty", sessionID).
			WithMeta("session_id", sessionID)
	}

	if state.SessionID == "" {
		state.SessionID = sessionID
	}

	return state, nil
}

func notFound(sessionID string) error {
	return dnderr.NotFoundf("session '%s' not found", sessionID).WithMeta("session_id", sessionID)
}
