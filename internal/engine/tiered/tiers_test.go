package tiered

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

func first(context.Context, int) int { return 0 }

func last(_ context.Context, n int) int { return n - 1 }

func itemsWithTiers(tiers ...int) []*equipment.Item {
	items := make([]*equipment.Item, 0, len(tiers))
	for i, tier := range tiers {
		items = append(items, testutils.OneHandedSword(string(rune('a'+i)), tier))
	}
	return items
}

func TestSelectNearestTier(t *testing.T) {
	testCases := []struct {
		name     string
		tiers    []int
		target   equipment.Tier
		exact    bool
		choose   Chooser
		wantID   string
		wantNone bool
	}{
		{
			name:     "empty candidates",
			target:   2,
			choose:   first,
			wantNone: true,
		},
		{
			name:   "exact tier present",
			tiers:  []int{1, 2, 3},
			target: 2,
			choose: first,
			wantID: "b",
		},
		{
			name:   "equal distance prefers the lower tier",
			tiers:  []int{3, 1},
			target: 2,
			choose: first,
			wantID: "b",
		},
		{
			name:   "only higher tiers available",
			tiers:  []int{5, 4},
			target: 2,
			choose: first,
			wantID: "b",
		},
		{
			name:   "uniform pick within the nearest group",
			tiers:  []int{2, 0, 2, 2},
			target: 2,
			choose: last,
			wantID: "d",
		},
		{
			name:     "exact mode never falls back",
			tiers:    []int{1, 3},
			target:   2,
			exact:    true,
			choose:   first,
			wantNone: true,
		},
		{
			name:   "exact mode picks among exact matches",
			tiers:  []int{2, 3, 2},
			target: 2,
			exact:  true,
			choose: last,
			wantID: "c",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectNearestTier(context.Background(), itemsWithTiers(tc.tiers...), tc.target, tc.exact, tc.choose)
			if tc.wantNone {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tc.wantID, got.ID)
			}
		})
	}
}

func TestSelectNearestTierIsMonotonic(t *testing.T) {
	pools := [][]int{
		{0, 1, 2, 3, 4, 5},
		{0, 5},
		{1, 1, 4},
		{3},
		{0, 2, 4, 6},
	}

	for _, tiers := range pools {
		for target := equipment.TierMin; target <= equipment.TierMax; target++ {
			for _, choose := range []Chooser{first, last} {
				got := SelectNearestTier(context.Background(), itemsWithTiers(tiers...), target, false, choose)
				if !assert.NotNil(t, got) {
					continue
				}

				gotDistance := distance(target, got.Tier)
				for _, tier := range tiers {
					assert.LessOrEqual(t, gotDistance, distance(target, equipment.Tier(tier)),
						"target %d picked tier %d from %v", target, got.Tier, tiers)
				}
			}
		}
	}
}

func TestSelectNearestTierExactIsPure(t *testing.T) {
	tiers := []int{0, 1, 1, 3, 5}
	for target := equipment.TierMin; target <= equipment.TierMax; target++ {
		got := SelectNearestTier(context.Background(), itemsWithTiers(tiers...), target, true, last)
		if got == nil {
			assert.NotContains(t, tiers, int(target))
			continue
		}
		assert.Equal(t, target, got.Tier)
	}
}

func TestSearchFlags(t *testing.T) {
	flags := IgnoreAbility | RequireExactTier
	assert.True(t, flags.Has(IgnoreAbility))
	assert.True(t, flags.Has(RequireExactTier))
	assert.False(t, flags.Has(AllowNonMerchandise))
}

func distance(a, b equipment.Tier) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
