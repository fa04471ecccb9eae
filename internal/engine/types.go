package engine

import (
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// SpecialFunc reports whether an item must always be retained, such as a custom item
// carrying a registered modifier
type SpecialFunc func(item *equipment.Item) bool

// NoneSpecial treats every item as ordinary
func NoneSpecial(*equipment.Item) bool { return false }

// AllocateInput contains everything needed for one allocation.
// Class is optional, heroes without a class get skill driven weapons.
// IsSpecial defaults to NoneSpecial when nil.
type AllocateInput struct {
	Hero       *hero.Hero
	Catalog    Catalog
	TargetTier int
	Class      *hero.ClassDef
	KeepBetter bool
	IsSpecial  SpecialFunc
}

// AllocateOutput contains the new loadouts and the clamped tier they were built for
type AllocateOutput struct {
	TargetTier        int
	BattleEquipment   equipment.Loadout
	CivilianEquipment equipment.Loadout
	Mode              string
}

// Weapon selection modes reported in AllocateOutput.Mode
const (
	ModeClass     = "class"
	ModeHeuristic = "heuristic"
)
