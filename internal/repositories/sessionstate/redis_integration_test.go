//go:build integration

package sessionstate_test

import (
	"context"
	"testing"

	dnderr "github.com/KirkDiggler/rpg-dm-tools/internal/errors"
	"github.com/KirkDiggler/rpg-dm-tools/internal/repositories/sessionstate"
	"github.com/KirkDiggler/rpg-dm-tools/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	ctx := context.Background()
	client := testutils.StartRedisContainer(t)
	repo := sessionstate.NewRedisRepository(&sessionstate.RedisRepoConfig{Client: client})

	require.NoError(t, client.Set(ctx, sessionstate.StateKey("live"), `{"current_room":"ancient_crypt"}`, 0).Err())

	state, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "ancient_crypt", state.CurrentRoom)

	_, err = repo.Get(ctx, "absent")
	assert.True(t, dnderr.IsNotFound(err))

	require.NoError(t, client.Set(ctx, sessionstate.StateKey("garbled"), `{"current_room":`, 0).Err())
	_, err = repo.Get(ctx, "garbled")
	assert.True(t, dnderr.IsInternal(err))
}
