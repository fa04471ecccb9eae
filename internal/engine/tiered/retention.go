package tiered

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/engine"
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// allocation is the state of a single Allocate call
type allocation struct {
	ctx          context.Context
	choose       Chooser
	hero         *hero.Hero
	catalog      []*equipment.Item
	class        *hero.ClassDef
	target       equipment.Tier
	keepBetter   bool
	isSpecial    engine.SpecialFunc
	civilianTier equipment.Tier

	// pool holds the hero's current combat items and custom items that may be reused
	pool     []*equipment.Item
	battle   equipment.Loadout
	civilian equipment.Loadout
}

// buildPool collects reusable items. The combat loadout itself starts empty.
func (r *allocation) buildPool() {
	candidates := append(r.hero.BattleEquipment.Items(), r.hero.CustomItems...)
	for _, item := range candidates {
		if item != nil && UsableByHeroAndClass(r.hero, item, r.class) {
			r.pool = append(r.pool, item)
		}
	}
	r.battle = equipment.Loadout{}
}

// retains reports whether a pooled item should be reused instead of searching
func (r *allocation) retains(item *equipment.Item) bool {
	return r.isSpecial(item) || (r.keepBetter && item.Tier >= r.target)
}

// findNew returns the first retained pool item passing filter, otherwise a catalog item
func (r *allocation) findNew(filter equipment.Filter, flags SearchFlags) *equipment.Item {
	if filter == nil {
		filter = equipment.Any
	}

	for _, item := range r.pool {
		if r.retains(item) && filter(item) {
			return item
		}
	}

	return r.findRandomTiered(flags, equipment.All(filter, func(item *equipment.Item) bool {
		return UsableByHeroAndClass(r.hero, item, r.class)
	}))
}

func (r *allocation) findByType(t equipment.Type, filter equipment.Filter, flags SearchFlags) *equipment.Item {
	return r.findNew(equipment.All(equipment.OfType(t), filter), flags)
}

func (r *allocation) findBySkill(skill equipment.Skill, filter equipment.Filter) *equipment.Item {
	return r.findNew(equipment.All(func(item *equipment.Item) bool {
		return item.RelevantSkill == skill
	}, filter), 0)
}

// upgradeSlot replaces the item in one slot unless it is special or already good enough.
// A replacement is only written when it does not downgrade an acceptable item.
func (r *allocation) upgradeSlot(
	loadout *equipment.Loadout,
	slot equipment.Slot,
	t equipment.Type,
	retainTier equipment.Tier,
	filter equipment.Filter,
) {
	if filter == nil {
		filter = equipment.Any
	}

	current := loadout.Get(slot)
	if current != nil && r.isSpecial(current) {
		return
	}
	if r.keepBetter && current != nil && current.Tier >= retainTier && filter(current) {
		return
	}

	found := r.findRandomTiered(0, equipment.All(equipment.OfType(t), filter))
	if found == nil {
		return
	}

	if !r.keepBetter || current == nil || current.Tier < found.Tier || !filter(current) {
		loadout.Set(slot, found)
	}
}
