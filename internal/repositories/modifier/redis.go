package modifier

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-armory/internal/redis"
)

const registeredKey = "modifier:registered"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis modifier registry.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed modifier registry
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if len(input.Names) == 0 {
		return nil, errors.InvalidArgument("at least one modifier is required")
	}

	members := make([]interface{}, 0, len(input.Names))
	for _, name := range input.Names {
		if name == "" {
			return nil, errors.InvalidArgument("modifier name cannot be empty")
		}
		members = append(members, name)
	}

	added, err := r.client.SAdd(ctx, registeredKey, members...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register modifiers")
	}

	return &RegisterOutput{Added: added}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, registeredKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list modifiers")
	}
	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

func (r *redisRepository) IsRegistered(ctx context.Context, input IsRegisteredInput) (*IsRegisteredOutput, error) {
	if input.Name == "" {
		return &IsRegisteredOutput{}, nil
	}

	registered, err := r.client.SIsMember(ctx, registeredKey, input.Name).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check modifier %s", input.Name)
	}

	return &IsRegisteredOutput{Registered: registered}, nil
}
