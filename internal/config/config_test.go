package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-armory/internal/config"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(config.EnvRedisAddr, "redis:6380")
	t.Setenv(config.EnvGRPCPort, "6000")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvCatalogCacheTTL, "30s")
	t.Setenv(config.EnvCivilianRetention, "independent")
	t.Setenv(config.EnvCivilianRetentionTier, "3")
	t.Setenv(config.EnvTierCosts, "10, 20,40")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
	assert.Equal(t, "independent", cfg.CivilianRetention)
	assert.Equal(t, 3, cfg.CivilianRetentionTier)
	assert.Equal(t, []int64{10, 20, 40}, cfg.TierCosts)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armory.env")
	require.NoError(t, os.WriteFile(path, []byte("ARMORY_GRPC_PORT=7000\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvGRPCPort)
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.GRPCPort)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadRejects(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "port not a number", key: config.EnvGRPCPort, value: "grpc", field: config.EnvGRPCPort},
		{name: "port out of range", key: config.EnvGRPCPort, value: "70000", field: "GRPCPort"},
		{name: "bad duration", key: config.EnvCatalogCacheTTL, value: "soon", field: config.EnvCatalogCacheTTL},
		{name: "unknown log level", key: config.EnvLogLevel, value: "loud", field: "LogLevel"},
		{name: "unknown retention", key: config.EnvCivilianRetention, value: "forever", field: "CivilianRetention"},
		{name: "retention tier too high", key: config.EnvCivilianRetentionTier, value: "9", field: "CivilianRetentionTier"},
		{name: "negative cost", key: config.EnvTierCosts, value: "10,-1", field: "TierCosts"},
		{name: "too many costs", key: config.EnvTierCosts, value: "1,2,3,4,5,6,7", field: "TierCosts"},
		{name: "redis address without port", key: config.EnvRedisAddr, value: "redis", field: "RedisAddr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
