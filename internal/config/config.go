// Package config loads process configuration from the environment and an optional .env file
package config

import (
	stderrors "errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

// Environment variables
const (
	EnvRedisAddr             = "ARMORY_REDIS_ADDR"
	EnvGRPCPort              = "ARMORY_GRPC_PORT"
	EnvMetricsAddr           = "ARMORY_METRICS_ADDR"
	EnvLogLevel              = "ARMORY_LOG_LEVEL"
	EnvCatalogCacheTTL       = "ARMORY_CATALOG_CACHE_TTL"
	EnvCatalogCacheSize      = "ARMORY_CATALOG_CACHE_SIZE"
	EnvCivilianRetention     = "ARMORY_CIVILIAN_RETENTION"
	EnvCivilianRetentionTier = "ARMORY_CIVILIAN_RETENTION_TIER"
	EnvTierCosts             = "ARMORY_TIER_COSTS"
)

// Config holds the server process configuration
type Config struct {
	RedisAddr             string        `validate:"required,hostname_port"`
	GRPCPort              int           `validate:"min=1,max=65535"`
	MetricsAddr           string        `validate:"omitempty,hostname_port"`
	LogLevel              string        `validate:"oneof=debug info warn error"`
	CatalogCacheTTL       time.Duration `validate:"min=0"`
	CatalogCacheSize      int           `validate:"min=0"`
	CivilianRetention     string        `validate:"omitempty,oneof=shared independent"`
	CivilianRetentionTier int           `validate:"min=0,max=6"`
	TierCosts             []int64       `validate:"max=6,dive,min=0"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		RedisAddr:             "localhost:6379",
		GRPCPort:              50051,
		MetricsAddr:           ":9090",
		LogLevel:              "info",
		CatalogCacheTTL:       5 * time.Minute,
		CatalogCacheSize:      4,
		CivilianRetention:     "shared",
		CivilianRetentionTier: 0,
		TierCosts:             []int64{250, 500, 1000, 2000, 4000, 8000},
	}
}

// Load reads a .env file when present, then overlays environment variables onto the defaults
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, errors.Wrapf(err, "failed to load env files %s", strings.Join(envFiles, ", "))
	}

	cfg := Default()
	vb := errors.NewValidationBuilder()

	cfg.RedisAddr = getEnv(EnvRedisAddr, cfg.RedisAddr)
	cfg.MetricsAddr = getEnv(EnvMetricsAddr, cfg.MetricsAddr)
	cfg.LogLevel = strings.ToLower(getEnv(EnvLogLevel, cfg.LogLevel))
	cfg.CivilianRetention = getEnv(EnvCivilianRetention, cfg.CivilianRetention)

	if v, ok := os.LookupEnv(EnvGRPCPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			vb.InvalidField(EnvGRPCPort, "must be an integer")
		}
		cfg.GRPCPort = port
	}
	if v, ok := os.LookupEnv(EnvCatalogCacheTTL); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			vb.InvalidField(EnvCatalogCacheTTL, "must be a duration")
		}
		cfg.CatalogCacheTTL = ttl
	}
	if v, ok := os.LookupEnv(EnvCatalogCacheSize); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			vb.InvalidField(EnvCatalogCacheSize, "must be an integer")
		}
		cfg.CatalogCacheSize = size
	}
	if v, ok := os.LookupEnv(EnvCivilianRetentionTier); ok {
		tier, err := strconv.Atoi(v)
		if err != nil {
			vb.InvalidField(EnvCivilianRetentionTier, "must be an integer")
		}
		cfg.CivilianRetentionTier = tier
	}
	if v, ok := os.LookupEnv(EnvTierCosts); ok {
		costs, err := parseCosts(v)
		if err != nil {
			vb.InvalidField(EnvTierCosts, "must be a comma separated list of integers")
		}
		cfg.TierCosts = costs
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.Wrap(err, "invalid config")
	}

	vb := errors.NewValidationBuilder()
	for _, e := range validationErrors {
		vb.InvalidField(e.Field(), "failed "+e.Tag())
	}
	return vb.Build()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseCosts(v string) ([]int64, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}

	parts := strings.Split(v, ",")
	costs := make([]int64, 0, len(parts))
	for _, part := range parts {
		cost, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}
	return costs, nil
}
