package tiered

import (
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// CanUse reports whether the hero may equip the item. The skill gate applies only when the
// item names a relevant skill and ignoreSkill is false. Gender restrictions always apply.
func CanUse(item *equipment.Item, h *hero.Hero, ignoreSkill bool) bool {
	if item == nil {
		return false
	}

	if !ignoreSkill && item.RelevantSkill != equipment.SkillNone &&
		h.SkillValue(item.RelevantSkill) < item.Difficulty {
		return false
	}

	if h.IsFemale() {
		return !item.NotUsableByFemale
	}
	return !item.NotUsableByMale
}

// UsableByHeroAndClass reports whether a mounted class can wield the item from horseback.
// Weapons that forbid mounts are rejected for mounted classes unless a perk lifts the
// restriction for that weapon type.
func UsableByHeroAndClass(h *hero.Hero, item *equipment.Item, class *hero.ClassDef) bool {
	if class == nil || !class.Mounted {
		return true
	}
	if item.PrimaryWeapon() == nil || !item.Requires(equipment.RequiresNoMount) {
		return true
	}

	switch item.Type {
	case equipment.TypeBow:
		return h.HasPerk(hero.PerkHorseMaster)
	case equipment.TypeCrossbow:
		return h.HasPerk(hero.PerkMountedCrossbowman)
	default:
		return false
	}
}
