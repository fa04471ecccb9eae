package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-armory/internal/redis"
)

const (
	itemKeyPrefix = "catalog:item:"
	itemIndexKey  = "catalog:items"
	revisionKey   = "catalog:revision"

	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
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

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Items) == 0 {
		return nil, errors.InvalidArgument("at least one item is required")
	}

	pipe := r.client.TxPipeline()
	for i, item := range input.Items {
		if item == nil {
			return nil, errors.InvalidArgumentf("item %d cannot be nil", i)
		}
		if item.ID == "" {
			return nil, errors.InvalidArgumentf("item %d: %s", i, errItemIDEmpty)
		}
		if !item.Type.IsValid() {
			return nil, errors.InvalidArgumentf("item %s has invalid type %q", item.ID, item.Type)
		}

		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal item %s", item.ID)
		}

		pipe.Set(ctx, itemKeyPrefix+item.ID, data, 0)
		pipe.SAdd(ctx, itemIndexKey, item.ID)
	}
	revision := pipe.Incr(ctx, revisionKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store items")
	}

	slog.DebugContext(ctx, "stored catalog items",
		"count", len(input.Items),
		"revision", revision.Val())

	return &PutOutput{Revision: revision.Val()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, itemKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var item equipment.Item
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item")
	}

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	revision, err := r.revision(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := r.client.SMembers(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog index")
	}
	// catalog order decides ties in class and ammo lookups, so keep it stable
	sort.Strings(ids)

	items := make([]*equipment.Item, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "item not found, cleaning up index",
					"item_id", id,
					"index_key", itemIndexKey)
				r.client.SRem(ctx, itemIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get item %s", id)
		}
		items = append(items, out.Item)
	}

	return &ListOutput{Items: items, Revision: revision}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemKeyPrefix+input.ID)
	pipe.SRem(ctx, itemIndexKey, input.ID)
	revision := pipe.Incr(ctx, revisionKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item")
	}

	return &DeleteOutput{Revision: revision.Val()}, nil
}

func (r *redisRepository) Revision(ctx context.Context, _ RevisionInput) (*RevisionOutput, error) {
	revision, err := r.revision(ctx)
	if err != nil {
		return nil, err
	}
	return &RevisionOutput{Revision: revision}, nil
}

func (r *redisRepository) revision(ctx context.Context) (int64, error) {
	revision, err := r.client.Get(ctx, revisionKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "failed to read catalog revision")
	}
	return revision, nil
}
