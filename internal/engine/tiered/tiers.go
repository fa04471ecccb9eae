package tiered

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// SearchFlags relax or tighten a catalog search
type SearchFlags uint8

// Search flags
const (
	// IgnoreAbility skips the skill gate in CanUse
	IgnoreAbility SearchFlags = 1 << iota
	// AllowNonMerchandise includes items that are never sold
	AllowNonMerchandise
	// RequireExactTier only accepts items of exactly the target tier
	RequireExactTier
)

// Has reports whether the flag is set
func (f SearchFlags) Has(flag SearchFlags) bool {
	return f&flag == flag
}

// Chooser returns an index in [0, n)
type Chooser func(ctx context.Context, n int) int

// tierDistance orders tier groups: closest first, lower tier wins a tie
func tierDistance(target, tier equipment.Tier) int {
	d := int(target - tier)
	if d < 0 {
		d = -d
	}
	return 100*d + int(tier)
}

// SelectNearestTier picks one candidate uniformly from the tier group nearest to target.
// In exact mode only items of the target tier qualify and nil is returned when there are none.
func SelectNearestTier(
	ctx context.Context,
	candidates []*equipment.Item,
	target equipment.Tier,
	exact bool,
	choose Chooser,
) *equipment.Item {
	if len(candidates) == 0 {
		return nil
	}

	var group []*equipment.Item
	if exact {
		for _, item := range candidates {
			if item.Tier == target {
				group = append(group, item)
			}
		}
	} else {
		best := -1
		for _, item := range candidates {
			d := tierDistance(target, item.Tier)
			switch {
			case best < 0 || d < best:
				best = d
				group = append(group[:0], item)
			case d == best:
				group = append(group, item)
			}
		}
	}

	if len(group) == 0 {
		return nil
	}
	return group[choose(ctx, len(group))]
}

// findRandomTiered searches the catalog for usable items passing filter and picks one near the
// target tier
func (r *allocation) findRandomTiered(flags SearchFlags, filter equipment.Filter) *equipment.Item {
	var matches []*equipment.Item
	for _, item := range r.catalog {
		if item == nil {
			continue
		}
		if item.NotMerchandise && !flags.Has(AllowNonMerchandise) {
			continue
		}
		if !CanUse(item, r.hero, flags.Has(IgnoreAbility)) {
			continue
		}
		if filter != nil && !filter(item) {
			continue
		}
		matches = append(matches, item)
	}

	return SelectNearestTier(r.ctx, matches, r.target, flags.Has(RequireExactTier), r.choose)
}
