package classdef

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-armory/internal/redis"
)

const (
	classKeyPrefix = "classdef:"
	classIndexKey  = "classdef:ids"

	errClassIDEmpty = "class ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis class template repository.
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

// NewRedis creates a new Redis-backed class template repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Class == nil {
		return nil, errors.InvalidArgument("class cannot be nil")
	}
	if input.Class.ID == "" {
		return nil, errors.InvalidArgument(errClassIDEmpty)
	}
	if len(input.Class.SlotItems) > hero.MaxClassWeaponSlots {
		return nil, errors.InvalidArgumentf("class %s lists %d weapon slots, at most %d are allowed",
			input.Class.ID, len(input.Class.SlotItems), hero.MaxClassWeaponSlots)
	}
	for _, kind := range input.Class.SlotItems {
		if !kind.IsValid() {
			return nil, errors.InvalidArgumentf("class %s has invalid slot item %q", input.Class.ID, kind)
		}
	}

	data, err := json.Marshal(input.Class)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal class")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, classKeyPrefix+input.Class.ID, data, 0)
	pipe.SAdd(ctx, classIndexKey, input.Class.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store class")
	}

	return &PutOutput{Class: input.Class}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errClassIDEmpty)
	}

	result, err := r.client.Get(ctx, classKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("class with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get class")
	}

	var class hero.ClassDef
	if err := json.Unmarshal([]byte(result), &class); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal class")
	}

	return &GetOutput{Class: &class}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, classIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read class index")
	}
	sort.Strings(ids)

	classes := make([]*hero.ClassDef, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, classIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get class %s", id)
		}
		classes = append(classes, out.Class)
	}

	return &ListOutput{Classes: classes}, nil
}
