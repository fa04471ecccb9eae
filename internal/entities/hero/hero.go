// Package hero holds the hero and class template entities
package hero

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// EntityType is the core.Entity type reported by heroes
const EntityType = "hero"

var _ core.Entity = (*Hero)(nil)

// Perk is a passive ability that relaxes equipment restrictions
type Perk string

// Perks that affect equipment
const (
	PerkHorseMaster        Perk = "horse_master"
	PerkMountedCrossbowman Perk = "mounted_crossbowman"
)

// Hero represents an adopted hero whose equipment is allocated by the armory.
// NOTE: This is a data-only struct. Equipment decisions are made by the engine.
type Hero struct {
	ID                string                  `json:"id"`
	OwnerID           string                  `json:"owner_id"`
	Name              string                  `json:"name"`
	Gender            equipment.Gender        `json:"gender"`
	Skills            map[equipment.Skill]int `json:"skills,omitempty"`
	Perks             []Perk                  `json:"perks,omitempty"`
	CustomItems       []*equipment.Item       `json:"custom_items,omitempty"`
	BattleEquipment   equipment.Loadout       `json:"battle_equipment"`
	CivilianEquipment equipment.Loadout       `json:"civilian_equipment"`
	EquipmentTier     int                     `json:"equipment_tier"`
	Gold              int64                   `json:"gold"`
	ClassID           string                  `json:"class_id,omitempty"`
	CreatedAt         int64                   `json:"created_at"`
	UpdatedAt         int64                   `json:"updated_at"`
}

// GetID implements core.Entity
func (h *Hero) GetID() string {
	return h.ID
}

// GetType implements core.Entity
func (h *Hero) GetType() string {
	return EntityType
}

// SkillValue returns the hero's proficiency in a skill, zero when untrained
func (h *Hero) SkillValue(skill equipment.Skill) int {
	if h == nil || h.Skills == nil {
		return 0
	}
	return h.Skills[skill]
}

// HasPerk reports whether the hero has the perk
func (h *Hero) HasPerk(perk Perk) bool {
	if h == nil {
		return false
	}
	for _, p := range h.Perks {
		if p == perk {
			return true
		}
	}
	return false
}

// IsFemale reports whether the hero is female
func (h *Hero) IsFemale() bool {
	return h != nil && h.Gender == equipment.GenderFemale
}

// RemoveAllEquipment empties both loadouts and resets the equipment tier
func (h *Hero) RemoveAllEquipment() {
	h.BattleEquipment = equipment.Loadout{}
	h.CivilianEquipment = equipment.Loadout{}
	h.EquipmentTier = int(equipment.TierNone)
}
