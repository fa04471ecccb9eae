package tiered

import (
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// equipBattle rebuilds the combat loadout: weapons, armor, then the mount
func (r *allocation) equipBattle() {
	r.buildPool()

	if r.class != nil {
		r.equipClassWeapons()
	} else {
		r.equipHeuristicWeapons()
	}

	r.equipArmor()
	r.equipMount()
}

// equipArmor fills every armor slot, leaving it empty when nothing matches
func (r *allocation) equipArmor() {
	for _, armor := range equipment.ArmorSlots() {
		r.battle.Set(armor.Slot, r.findByType(armor.Type, nil, 0))
	}
}

// equipCivilian upgrades the civilian outfit in place: civilian armor, a single one handed
// weapon and nothing else in the weapon slots
func (r *allocation) equipCivilian() {
	for _, armor := range equipment.ArmorSlots() {
		r.upgradeSlot(&r.civilian, armor.Slot, armor.Type, r.civilianTier, equipment.IsCivilian)
	}

	for _, s := range equipment.WeaponSlots()[1:] {
		r.civilian.Clear(s)
	}

	r.upgradeSlot(&r.civilian, equipment.SlotWeapon0, equipment.TypeOneHandedWeapon, r.civilianTier, nil)
}
