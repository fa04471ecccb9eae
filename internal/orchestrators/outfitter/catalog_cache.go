package outfitter

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/rpg-armory/internal/engine"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/metrics"
	catalogrepo "github.com/KirkDiggler/rpg-armory/internal/repositories/catalog"
)

const (
	defaultCatalogCacheSize = 4
	defaultCatalogCacheTTL  = 5 * time.Minute
)

// catalogCache keeps catalog snapshots keyed by catalog revision.
// A write to the catalog bumps the revision, so stale snapshots are never served.
type catalogCache struct {
	repo catalogrepo.Repository
	lru  *expirable.LRU[int64, engine.StaticCatalog]
}

func newCatalogCache(repo catalogrepo.Repository, size int, ttl time.Duration) *catalogCache {
	if size <= 0 {
		size = defaultCatalogCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCatalogCacheTTL
	}

	return &catalogCache{
		repo: repo,
		lru:  expirable.NewLRU[int64, engine.StaticCatalog](size, nil, ttl),
	}
}

// snapshot returns the catalog at its current revision
func (c *catalogCache) snapshot(ctx context.Context) (engine.StaticCatalog, error) {
	rev, err := c.repo.Revision(ctx, catalogrepo.RevisionInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog revision")
	}

	if items, ok := c.lru.Get(rev.Revision); ok {
		metrics.CatalogCacheHits.Inc()
		return items, nil
	}
	metrics.CatalogCacheMisses.Inc()

	list, err := c.repo.List(ctx, catalogrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list catalog")
	}

	slog.DebugContext(ctx, "loaded catalog snapshot",
		"revision", list.Revision,
		"items", len(list.Items))

	items := engine.StaticCatalog(list.Items)
	c.lru.Add(list.Revision, items)
	return items, nil
}
