package sessionstate

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rpg-dm-tools/internal/domain/game/session"
	dnderr "github.com/KirkDiggler/rpg-dm-tools/internal/errors"
	"github.com/redis/go-redis/v9"
)

const stateKeyPattern = "session:%s:state"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository reads state documents stored under session:<id>:state
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed session state repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// StateKey returns the Redis key holding a session's state
func StateKey(sessionID string) string {
	return fmt.Sprintf(stateKeyPattern, sessionID)
}

// Get fetches and decodes the state document for a session
func (r *redisRepository) Get(ctx context.Context, sessionID string) (*session.State, error) {
	if err := session.ValidateID(sessionID); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, StateKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(sessionID)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get session state from redis").
			WithMeta("session_id", sessionID)
	}

	return decodeState(sessionID, data)
}
