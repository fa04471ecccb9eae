package hero

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-armory/internal/redis"
)

const (
	heroKeyPrefix    = "hero:"
	ownerIndexPrefix = "hero:owner:"

	errHeroNil     = "hero cannot be nil"
	errHeroIDEmpty = "hero ID cannot be empty"
	errOwnerEmpty  = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis hero repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed hero repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Hero == nil {
		return nil, errors.InvalidArgument(errHeroNil)
	}
	if input.Hero.ID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}

	key := heroKeyPrefix + input.Hero.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("hero with ID %s already exists", input.Hero.ID)
	}

	now := r.clock.Now().Unix()
	input.Hero.CreatedAt = now
	input.Hero.UpdatedAt = now

	data, err := json.Marshal(input.Hero)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal hero")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Hero.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+input.Hero.OwnerID, input.Hero.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create hero")
	}

	return &CreateOutput{Hero: input.Hero}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}

	result, err := r.client.Get(ctx, heroKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("hero with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get hero")
	}

	var h hero.Hero
	if err := json.Unmarshal([]byte(result), &h); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal hero")
	}

	return &GetOutput{Hero: &h}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Hero == nil {
		return nil, errors.InvalidArgument(errHeroNil)
	}
	if input.Hero.ID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Hero.ID})
	if err != nil {
		return nil, err
	}

	input.Hero.CreatedAt = existing.Hero.CreatedAt
	input.Hero.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Hero)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal hero")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, heroKeyPrefix+input.Hero.ID, data, 0)

	if existing.Hero.OwnerID != input.Hero.OwnerID {
		if existing.Hero.OwnerID != "" {
			pipe.SRem(ctx, ownerIndexPrefix+existing.Hero.OwnerID, input.Hero.ID)
		}
		if input.Hero.OwnerID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+input.Hero.OwnerID, input.Hero.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update hero")
	}

	return &UpdateOutput{Hero: input.Hero}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errHeroIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, heroKeyPrefix+input.ID)
	if getOutput.Hero.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+getOutput.Hero.OwnerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete hero")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read owner index",
			"owner_id", input.OwnerID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get heroes from index %s", indexKey)
	}

	heroes := make([]*hero.Hero, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "hero not found, cleaning up index",
					"hero_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get hero %s", id)
		}
		heroes = append(heroes, getOutput.Hero)
	}

	slog.DebugContext(ctx, "listed heroes by owner",
		"owner_id", input.OwnerID,
		"count", len(heroes))

	return &ListByOwnerOutput{Heroes: heroes}, nil
}
