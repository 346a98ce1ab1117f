package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisImage = "redis:7-alpine"

// StartRedisContainer starts a throwaway Redis server and returns a client
// connected to it. The test is skipped when Docker is not available.
func StartRedisContainer(t *testing.T) redis.UniversalClient {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Skipf("Redis container not available for testing: %v", err)
	}

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to get redis endpoint")

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	require.NoError(t, client.Ping(ctx).Err(), "Failed to ping redis container")

	return client
}
