// Package equipment holds the item, slot and loadout model used by the allocation engine
package equipment

import (
	"encoding/json"
	"fmt"
)

// Type is the closed set of item types an item can have
type Type string

// Item types
const (
	TypeInvalid         Type = ""
	TypeOneHandedWeapon Type = "one_handed_weapon"
	TypeTwoHandedWeapon Type = "two_handed_weapon"
	TypePolearm         Type = "polearm"
	TypeBow             Type = "bow"
	TypeCrossbow        Type = "crossbow"
	TypeThrown          Type = "thrown"
	TypeArrows          Type = "arrows"
	TypeBolts           Type = "bolts"
	TypeShield          Type = "shield"
	TypeHeadArmor       Type = "head_armor"
	TypeBodyArmor       Type = "body_armor"
	TypeLegArmor        Type = "leg_armor"
	TypeHandArmor       Type = "hand_armor"
	TypeHorse           Type = "horse"
	TypeHorseHarness    Type = "horse_harness"
)

// String returns the string representation of the item type
func (t Type) String() string {
	return string(t)
}

// IsValid checks if the item type is one of the known types
func (t Type) IsValid() bool {
	switch t {
	case TypeOneHandedWeapon, TypeTwoHandedWeapon, TypePolearm, TypeBow, TypeCrossbow, TypeThrown,
		TypeArrows, TypeBolts, TypeShield,
		TypeHeadArmor, TypeBodyArmor, TypeLegArmor, TypeHandArmor,
		TypeHorse, TypeHorseHarness:
		return true
	default:
		return false
	}
}

// IsPrimaryWeapon reports whether the type is a weapon a hero can wield as their main weapon
func (t Type) IsPrimaryWeapon() bool {
	switch t {
	case TypeOneHandedWeapon, TypeTwoHandedWeapon, TypePolearm, TypeBow, TypeCrossbow, TypeThrown:
		return true
	default:
		return false
	}
}

// AmmoTypeFor returns the ammunition type a weapon of the given type consumes.
// Thrown weapons are their own ammunition. Types without ammunition return TypeInvalid.
func AmmoTypeFor(t Type) Type {
	switch t {
	case TypeBow:
		return TypeArrows
	case TypeCrossbow:
		return TypeBolts
	case TypeThrown:
		return TypeThrown
	default:
		return TypeInvalid
	}
}

// NeedsSeparateAmmo reports whether a weapon of the given type needs a distinct ammunition item
func NeedsSeparateAmmo(t Type) bool {
	ammo := AmmoTypeFor(t)
	return ammo != TypeInvalid && ammo != t
}

// WeaponClass is the fine grained class of a single weapon component
type WeaponClass string

// Weapon classes
const (
	WeaponClassUndefined        WeaponClass = ""
	WeaponClassDagger           WeaponClass = "dagger"
	WeaponClassOneHandedSword   WeaponClass = "one_handed_sword"
	WeaponClassTwoHandedSword   WeaponClass = "two_handed_sword"
	WeaponClassOneHandedAxe     WeaponClass = "one_handed_axe"
	WeaponClassTwoHandedAxe     WeaponClass = "two_handed_axe"
	WeaponClassMace             WeaponClass = "mace"
	WeaponClassTwoHandedMace    WeaponClass = "two_handed_mace"
	WeaponClassOneHandedPolearm WeaponClass = "one_handed_polearm"
	WeaponClassTwoHandedPolearm WeaponClass = "two_handed_polearm"
	WeaponClassBow              WeaponClass = "bow"
	WeaponClassCrossbow         WeaponClass = "crossbow"
	WeaponClassArrow            WeaponClass = "arrow"
	WeaponClassBolt             WeaponClass = "bolt"
	WeaponClassThrowingKnife    WeaponClass = "throwing_knife"
	WeaponClassThrowingAxe      WeaponClass = "throwing_axe"
	WeaponClassJavelin          WeaponClass = "javelin"
	WeaponClassStone            WeaponClass = "stone"
	WeaponClassShield           WeaponClass = "shield"
)

// IsPolearm reports whether the class is a polearm of either grip
func (c WeaponClass) IsPolearm() bool {
	return c == WeaponClassOneHandedPolearm || c == WeaponClassTwoHandedPolearm
}

// UsageFlags restrict how a weapon can be used
type UsageFlags uint8

// Weapon usage flags
const (
	RequiresMount UsageFlags = 1 << iota
	RequiresNoMount
	RequiresNoShield
)

// Has reports whether all bits of flag are set
func (f UsageFlags) Has(flag UsageFlags) bool {
	return f&flag == flag
}

var usageFlagNames = []struct {
	flag UsageFlags
	name string
}{
	{RequiresMount, "requires_mount"},
	{RequiresNoMount, "requires_no_mount"},
	{RequiresNoShield, "requires_no_shield"},
}

// MarshalJSON writes the flags as a list of names
func (f UsageFlags) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(usageFlagNames))
	for _, n := range usageFlagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return json.Marshal(names)
}

// UnmarshalJSON reads the list of names written by MarshalJSON
func (f *UsageFlags) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	var flags UsageFlags
	for _, name := range names {
		found := false
		for _, n := range usageFlagNames {
			if n.name == name {
				flags |= n.flag
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown usage flag %q", name)
		}
	}
	*f = flags
	return nil
}

// MountFamily groups mounts and the harnesses that fit them
type MountFamily string

// Mount families
const (
	FamilyNone  MountFamily = ""
	FamilyHuman MountFamily = "human"
	FamilyHorse MountFamily = "horse"
	FamilyCamel MountFamily = "camel"
	FamilyCow   MountFamily = "cow"
	FamilyGoose MountFamily = "goose"
	FamilyHog   MountFamily = "hog"
	FamilySheep MountFamily = "sheep"
	FamilyHare  MountFamily = "hare"
)

// Gender of the hero wearing an item, used by gender restricted items
type Gender string

// Genders
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether the gender is known
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Skill is a proficiency that gates item use and drives weapon choice
type Skill string

// Skills
const (
	SkillNone      Skill = ""
	SkillOneHanded Skill = "one_handed"
	SkillTwoHanded Skill = "two_handed"
	SkillPolearm   Skill = "polearm"
	SkillBow       Skill = "bow"
	SkillCrossbow  Skill = "crossbow"
	SkillThrowing  Skill = "throwing"
	SkillRiding    Skill = "riding"
	SkillAthletics Skill = "athletics"
)

// IsValid checks if the skill is known
func (s Skill) IsValid() bool {
	switch s {
	case SkillOneHanded, SkillTwoHanded, SkillPolearm, SkillBow, SkillCrossbow,
		SkillThrowing, SkillRiding, SkillAthletics:
		return true
	default:
		return false
	}
}

// SkillItemPair links a weapon skill to the item type it governs
type SkillItemPair struct {
	Skill Skill
	Type  Type
}

// WeaponSkillPairs lists every weapon skill with its item type, melee first
func WeaponSkillPairs() []SkillItemPair {
	return []SkillItemPair{
		{Skill: SkillOneHanded, Type: TypeOneHandedWeapon},
		{Skill: SkillTwoHanded, Type: TypeTwoHandedWeapon},
		{Skill: SkillPolearm, Type: TypePolearm},
		{Skill: SkillBow, Type: TypeBow},
		{Skill: SkillCrossbow, Type: TypeCrossbow},
		{Skill: SkillThrowing, Type: TypeThrown},
	}
}

// MeleeSkillPairs lists the melee weapon skills with their item types
func MeleeSkillPairs() []SkillItemPair {
	return WeaponSkillPairs()[:3]
}
