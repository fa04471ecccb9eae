package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-armory/internal/config"
	"github.com/KirkDiggler/rpg-armory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-armory/internal/redis"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/classdef"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/hero"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/modifier"
)

type repositories struct {
	client    redis.Client
	heroes    hero.Repository
	catalog   catalog.Repository
	classes   classdef.Repository
	modifiers modifier.Repository
}

func (r *repositories) Close() {
	_ = r.client.Close()
}

// loadConfig reads process configuration and applies command line overrides
func loadConfig() (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}

	return cfg, nil
}

// setupLogging installs a JSON slog handler at the configured level
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	repos := &repositories{client: client}

	if repos.heroes, err = hero.NewRedis(&hero.RedisConfig{Client: client, Clock: clock.New()}); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.catalog, err = catalog.NewRedis(&catalog.RedisConfig{Client: client}); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.classes, err = classdef.NewRedis(&classdef.RedisConfig{Client: client}); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.modifiers, err = modifier.NewRedis(&modifier.RedisConfig{Client: client}); err != nil {
		repos.Close()
		return nil, err
	}

	return repos, nil
}
