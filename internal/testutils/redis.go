// Package testutils provides fixtures and helpers shared by tests, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-armory/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client bound to it.
// The server is closed when the test finishes.
func CreateTestRedisClient(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}
