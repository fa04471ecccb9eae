package equipment

import "github.com/KirkDiggler/rpg-toolkit/core"

var _ core.Entity = (*Item)(nil)

// Tier is the power tier of an item
type Tier int

// Tier bounds
const (
	TierNone   Tier = -1
	TierMin    Tier = 0
	TierMax    Tier = 5
	TierCustom Tier = 6
)

// ClampTier bounds a requested tier to the ordinary tier range
func ClampTier(tier int) Tier {
	switch {
	case tier < int(TierMin):
		return TierMin
	case tier > int(TierMax):
		return TierMax
	default:
		return Tier(tier)
	}
}

// Weapon is one usage of a weapon item. Items can carry several, the first is the primary one.
type Weapon struct {
	Class  WeaponClass `json:"class"`
	Melee  bool        `json:"melee,omitempty"`
	Ranged bool        `json:"ranged,omitempty"`
	Swing  bool        `json:"swing,omitempty"`
	Usage  UsageFlags  `json:"usage,omitempty"`
}

// Item is an immutable catalog record or a hero owned custom item
type Item struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Tier              Tier        `json:"tier"`
	Type              Type        `json:"type"`
	Weapons           []Weapon    `json:"weapons,omitempty"`
	NotUsableByFemale bool        `json:"not_usable_by_female,omitempty"`
	NotUsableByMale   bool        `json:"not_usable_by_male,omitempty"`
	Civilian          bool        `json:"civilian,omitempty"`
	NotMerchandise    bool        `json:"not_merchandise,omitempty"`
	RelevantSkill     Skill       `json:"relevant_skill,omitempty"`
	Difficulty        int         `json:"difficulty,omitempty"`
	IsMount           bool        `json:"is_mount,omitempty"`
	Family            MountFamily `json:"family,omitempty"`
	Modifier          string      `json:"modifier,omitempty"`
}

// GetID returns the item id
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the entity type
func (i *Item) GetType() string {
	return "item"
}

// PrimaryWeapon returns the first weapon component or nil
func (i *Item) PrimaryWeapon() *Weapon {
	if i == nil || len(i.Weapons) == 0 {
		return nil
	}
	return &i.Weapons[0]
}

// Requires reports whether the primary weapon carries the usage flag
func (i *Item) Requires(flag UsageFlags) bool {
	w := i.PrimaryWeapon()
	return w != nil && w.Usage.Has(flag)
}

// IsSwingable reports whether any weapon component is a melee weapon with a swing attack
func (i *Item) IsSwingable() bool {
	if i == nil {
		return false
	}
	for _, w := range i.Weapons {
		if w.Melee && w.Swing {
			return true
		}
	}
	return false
}

// IsPrimarySwingable reports whether the primary weapon is a melee weapon with a swing attack
func (i *Item) IsPrimarySwingable() bool {
	w := i.PrimaryWeapon()
	return w != nil && w.Melee && w.Swing
}

// IsRanged reports whether any weapon component is ranged
func (i *Item) IsRanged() bool {
	if i == nil {
		return false
	}
	for _, w := range i.Weapons {
		if w.Ranged {
			return true
		}
	}
	return false
}

// HasWeaponClass reports whether any weapon component has the class
func (i *Item) HasWeaponClass(classes ...WeaponClass) bool {
	if i == nil {
		return false
	}
	for _, w := range i.Weapons {
		for _, c := range classes {
			if w.Class == c {
				return true
			}
		}
	}
	return false
}

// PrimaryClass returns the class of the primary weapon
func (i *Item) PrimaryClass() WeaponClass {
	if w := i.PrimaryWeapon(); w != nil {
		return w.Class
	}
	return WeaponClassUndefined
}

// HasModifier reports whether the item carries a modifier
func (i *Item) HasModifier() bool {
	return i != nil && i.Modifier != ""
}

// Filter decides whether an item is acceptable for a slot
type Filter func(*Item) bool

// Any accepts every item
func Any(*Item) bool { return true }

// All combines filters, nil entries are skipped
func All(filters ...Filter) Filter {
	return func(item *Item) bool {
		for _, f := range filters {
			if f != nil && !f(item) {
				return false
			}
		}
		return true
	}
}

// OfType accepts items of the given type
func OfType(t Type) Filter {
	return func(item *Item) bool {
		return item.Type == t
	}
}

// IsCivilian accepts items usable in civilian outfits
func IsCivilian(item *Item) bool {
	return item.Civilian
}
