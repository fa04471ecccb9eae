package hero

import (
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// MaxClassWeaponSlots is how many weapon kinds a class template may list
const MaxClassWeaponSlots = 4

// ClassDef is a class template: the weapon kinds per weapon slot and the mount preferences
type ClassDef struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	SlotItems []equipment.EquipmentType `json:"slot_items"`
	UseHorse  bool                      `json:"use_horse,omitempty"`
	UseCamel  bool                      `json:"use_camel,omitempty"`
	Mounted   bool                      `json:"mounted,omitempty"`
}

// AcceptsMountFamily reports whether the class rides mounts of the family
func (c *ClassDef) AcceptsMountFamily(family equipment.MountFamily) bool {
	if c == nil {
		return true
	}
	return (c.UseHorse && family == equipment.FamilyHorse) ||
		(c.UseCamel && family == equipment.FamilyCamel)
}
