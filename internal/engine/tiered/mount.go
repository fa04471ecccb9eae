package tiered

import (
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// shouldUseMount decides whether the hero rides. A class decides on its own; otherwise the
// placed weapons and the riding and athletics skills decide.
func (r *allocation) shouldUseMount() bool {
	if r.class != nil {
		return r.class.Mounted
	}

	weapons := r.battle.Weapons()

	for _, w := range weapons {
		if w.Requires(equipment.RequiresMount) {
			return true
		}
	}

	allowsMount := false
	thrustPolearm := false
	for _, w := range weapons {
		if !w.Requires(equipment.RequiresNoMount) {
			allowsMount = true
		}
		if w.Type == equipment.TypePolearm && !w.IsPrimarySwingable() {
			thrustPolearm = true
		}
	}
	if !allowsMount {
		return false
	}

	return r.hero.SkillValue(equipment.SkillRiding) > r.hero.SkillValue(equipment.SkillAthletics) || thrustPolearm
}

// equipMount places a mount of a family the class rides and a harness of the same family
func (r *allocation) equipMount() {
	if !r.shouldUseMount() {
		return
	}

	mount := r.findByType(equipment.TypeHorse, func(item *equipment.Item) bool {
		return item.IsMount && r.class.AcceptsMountFamily(item.Family)
	}, IgnoreAbility|AllowNonMerchandise)
	if mount == nil {
		return
	}
	r.battle.Set(equipment.SlotHorse, mount)

	family := mount.Family
	harness := r.findByType(equipment.TypeHorseHarness, func(item *equipment.Item) bool {
		return item.Family == family
	}, 0)
	r.battle.Set(equipment.SlotHorseHarness, harness)
}
