package tiered

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// equipClassWeapons fills weapon slots in order from the class template's weapon kinds.
// Kinds beyond the fourth slot are ignored and slots with no matching item stay empty.
// Retained items only return through the pool, so they land on a slot asking for their kind.
func (r *allocation) equipClassWeapons() {
	slots := equipment.WeaponSlots()
	for i, kind := range r.class.SlotItems {
		if i >= len(slots) {
			break
		}

		weapon := r.findNew(equipment.OfEquipmentType(kind), 0)
		if weapon == nil {
			slog.DebugContext(r.ctx, "no item for class weapon slot",
				"class_id", r.class.ID,
				"slot", slots[i].String(),
				"kind", kind.String())
			continue
		}
		r.battle.Set(slots[i], weapon)
	}

	r.pairClassAmmo()
}

// pairClassAmmo adds ammunition for ranged weapons the template listed without their ammo,
// using the first free weapon slot. For [Bow, Sword] that is Weapon2, not the slot after the bow.
func (r *allocation) pairClassAmmo() {
	for _, weapon := range r.battle.Weapons() {
		if !equipment.NeedsSeparateAmmo(weapon.Type) {
			continue
		}

		ammoType := equipment.AmmoTypeFor(weapon.Type)
		if r.hasWeaponOfType(ammoType) {
			continue
		}

		free, ok := r.firstFreeWeaponSlot()
		if !ok {
			return
		}

		if ammo := r.findByType(ammoType, nil, 0); ammo != nil {
			r.battle.Set(free, ammo)
		}
	}
}

func (r *allocation) hasWeaponOfType(t equipment.Type) bool {
	for _, item := range r.battle.Weapons() {
		if item.Type == t {
			return true
		}
	}
	return false
}

func (r *allocation) firstFreeWeaponSlot() (equipment.Slot, bool) {
	for _, s := range equipment.WeaponSlots() {
		if r.battle.Get(s) == nil {
			return s, true
		}
	}
	return 0, false
}
