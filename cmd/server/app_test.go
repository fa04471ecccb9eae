package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-armory/internal/config"
	"github.com/KirkDiggler/rpg-armory/internal/services/armory"
)

func TestNewOutfitterAgainstRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.RedisAddr = mr.Addr()

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(repos.Close)

	service, err := newOutfitter(cfg, repos)
	require.NoError(t, err)

	created, err := service.CreateHero(ctx, &armory.CreateHeroInput{
		OwnerID: "owner-1",
		Name:    "Derthert",
		Gold:    1000,
	})
	require.NoError(t, err)

	got, err := service.GetHero(ctx, &armory.GetHeroInput{HeroID: created.Hero.ID})
	require.NoError(t, err)
	assert.Equal(t, "Derthert", got.Hero.Name)
}

func TestNewOutfitterRejectsBadRetention(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.RedisAddr = mr.Addr()
	cfg.CivilianRetention = "sometimes"

	repos, err := openRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(repos.Close)

	_, err = newOutfitter(cfg, repos)
	assert.Error(t, err)
}

func TestLoadConfigOverridesRedisAddr(t *testing.T) {
	redisAddr = "cache:6379"
	t.Cleanup(func() { redisAddr = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
}
