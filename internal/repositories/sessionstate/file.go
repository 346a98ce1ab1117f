package sessionstate

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/session"
	dnderr "github.com/KirkDiggler/rpg-dm-tools/internal/errors"
)

const (
	// DefaultDataDir is the base directory used when none is configured
	DefaultDataDir = "game_data"

	sessionsDir   = "sessions"
	stateFileName = "state.json"
)

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	DataDir string // Optional, defaults to DefaultDataDir
}

// fileRepository reads <data dir>/sessions/<id>/state.json
type fileRepository struct {
	dataDir string
}

// NewFileRepository creates a repository backed by per-session JSON files
func NewFileRepository(cfg *FileRepoConfig) Repository {
	dataDir := DefaultDataDir
	if cfg != nil && cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}

	return &fileRepository{
		dataDir: dataDir,
	}
}

// StatePath returns the conventional location of a session's state file
func StatePath(dataDir, sessionID string) string {
	return filepath.Join(dataDir, sessionsDir, sessionID, stateFileName)
}

// Get reads and decodes the state file for a session
func (r *fileRepository) Get(ctx context.Context, sessionID string) (*session.State, error) {
	if err := session.ValidateID(sessionID); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(StatePath(r.dataDir, sessionID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(sessionID)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to read session state").
			WithMeta("session_id", sessionID)
	}

	return decodeState(sessionID, data)
}
