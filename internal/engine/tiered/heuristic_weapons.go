package tiered

import (
	"slices"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// rankSkills orders skill pairs by the hero's proficiency, highest first. Ties keep the
// declared order.
func (r *allocation) rankSkills(pairs []equipment.SkillItemPair) []equipment.SkillItemPair {
	ranked := slices.Clone(pairs)
	slices.SortStableFunc(ranked, func(a, b equipment.SkillItemPair) int {
		return r.hero.SkillValue(b.Skill) - r.hero.SkillValue(a.Skill)
	})
	return ranked
}

func isPrimaryWeapon(item *equipment.Item) bool {
	return item.Type.IsPrimaryWeapon()
}

func isSwingablePrimaryWeapon(item *equipment.Item) bool {
	return item.Type.IsPrimaryWeapon() && item.IsPrimarySwingable()
}

// equipHeuristicWeapons picks weapons from the hero's skills when there is no class template:
// the best weapon skill decides the main weapon, ammunition follows it, then a swing capable
// melee weapon, a second stack of ammunition and a shield fill what is left
func (r *allocation) equipHeuristicWeapons() {
	slots := equipment.WeaponSlots()
	next := 0
	var added []*equipment.Item
	var primaryAmmo *equipment.Item

	place := func(item *equipment.Item) {
		r.battle.Set(slots[next], item)
		next++
	}

	top := r.rankSkills(equipment.WeaponSkillPairs())[:1]
	for _, pair := range top {
		weapon := r.findBySkill(pair.Skill, isPrimaryWeapon)
		if weapon == nil {
			continue
		}

		ammoType := equipment.AmmoTypeFor(weapon.Type)
		separateAmmo := equipment.NeedsSeparateAmmo(weapon.Type)

		// a weapon with separate ammo needs two free slots
		if separateAmmo && next >= len(slots)-1 {
			continue
		}

		place(weapon)
		added = append(added, weapon)
		if next >= len(slots) {
			break
		}

		if separateAmmo {
			primaryAmmo = r.findByType(ammoType, nil, 0)
			if primaryAmmo != nil {
				place(primaryAmmo)
				if next >= len(slots) {
					break
				}
			}
		} else if ammoType == weapon.Type {
			primaryAmmo = weapon
		}
	}

	if next < len(slots) && !slices.ContainsFunc(added, (*equipment.Item).IsPrimarySwingable) {
		for _, pair := range r.rankSkills(equipment.MeleeSkillPairs()) {
			if weapon := r.findBySkill(pair.Skill, isSwingablePrimaryWeapon); weapon != nil {
				place(weapon)
				added = append(added, weapon)
				break
			}
		}
	}

	if next < len(slots) && primaryAmmo != nil {
		place(primaryAmmo)
	}

	allowsShield := slices.ContainsFunc(added, func(item *equipment.Item) bool {
		return !item.Requires(equipment.RequiresNoShield)
	})
	if next < len(slots) && allowsShield {
		if shield := r.findByType(equipment.TypeShield, nil, 0); shield != nil {
			place(shield)
		}
	}
}
