package equipment

// EquipmentType is the kind of weapon a class template asks for in one of its weapon slots
type EquipmentType string

// Equipment types
const (
	EquipmentTypeNone             EquipmentType = ""
	EquipmentTypeDagger           EquipmentType = "dagger"
	EquipmentTypeOneHandedSword   EquipmentType = "one_handed_sword"
	EquipmentTypeTwoHandedSword   EquipmentType = "two_handed_sword"
	EquipmentTypeOneHandedAxe     EquipmentType = "one_handed_axe"
	EquipmentTypeTwoHandedAxe     EquipmentType = "two_handed_axe"
	EquipmentTypeOneHandedMace    EquipmentType = "one_handed_mace"
	EquipmentTypeTwoHandedMace    EquipmentType = "two_handed_mace"
	EquipmentTypeOneHandedLance   EquipmentType = "one_handed_lance"
	EquipmentTypeTwoHandedLance   EquipmentType = "two_handed_lance"
	EquipmentTypeOneHandedGlaive  EquipmentType = "one_handed_glaive"
	EquipmentTypeTwoHandedGlaive  EquipmentType = "two_handed_glaive"
	EquipmentTypeBow              EquipmentType = "bow"
	EquipmentTypeCrossbow         EquipmentType = "crossbow"
	EquipmentTypeArrows           EquipmentType = "arrows"
	EquipmentTypeBolts            EquipmentType = "bolts"
	EquipmentTypeThrowingKnives   EquipmentType = "throwing_knives"
	EquipmentTypeThrowingAxes     EquipmentType = "throwing_axes"
	EquipmentTypeThrowingJavelins EquipmentType = "throwing_javelins"
	EquipmentTypeShield           EquipmentType = "shield"
	EquipmentTypeStone            EquipmentType = "stone"
)

// AllEquipmentTypes returns every equipment type except none, in declaration order
func AllEquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentTypeDagger,
		EquipmentTypeOneHandedSword,
		EquipmentTypeTwoHandedSword,
		EquipmentTypeOneHandedAxe,
		EquipmentTypeTwoHandedAxe,
		EquipmentTypeOneHandedMace,
		EquipmentTypeTwoHandedMace,
		EquipmentTypeOneHandedLance,
		EquipmentTypeTwoHandedLance,
		EquipmentTypeOneHandedGlaive,
		EquipmentTypeTwoHandedGlaive,
		EquipmentTypeBow,
		EquipmentTypeCrossbow,
		EquipmentTypeArrows,
		EquipmentTypeBolts,
		EquipmentTypeThrowingKnives,
		EquipmentTypeThrowingAxes,
		EquipmentTypeThrowingJavelins,
		EquipmentTypeShield,
		EquipmentTypeStone,
	}
}

// String returns the string representation of the equipment type
func (e EquipmentType) String() string {
	return string(e)
}

// IsValid checks if the equipment type is known, none is not valid
func (e EquipmentType) IsValid() bool {
	for _, t := range AllEquipmentTypes() {
		if t == e {
			return true
		}
	}
	return false
}

// IsEquipmentType reports whether the item satisfies the equipment type.
// Melee kinds exclude ranged items so a throwing axe never counts as a one handed axe.
func IsEquipmentType(item *Item, kind EquipmentType) bool {
	if item == nil {
		return false
	}

	melee := func(class WeaponClass) bool {
		return item.HasWeaponClass(class) && !item.IsRanged()
	}

	switch kind {
	case EquipmentTypeNone:
		return false
	case EquipmentTypeDagger:
		return melee(WeaponClassDagger)
	case EquipmentTypeOneHandedSword:
		return melee(WeaponClassOneHandedSword)
	case EquipmentTypeTwoHandedSword:
		return melee(WeaponClassTwoHandedSword)
	case EquipmentTypeOneHandedAxe:
		return melee(WeaponClassOneHandedAxe)
	case EquipmentTypeTwoHandedAxe:
		return melee(WeaponClassTwoHandedAxe)
	case EquipmentTypeOneHandedMace:
		return melee(WeaponClassMace)
	case EquipmentTypeTwoHandedMace:
		return melee(WeaponClassTwoHandedMace)
	case EquipmentTypeOneHandedLance:
		return melee(WeaponClassOneHandedPolearm) && !item.IsSwingable()
	case EquipmentTypeTwoHandedLance:
		return melee(WeaponClassTwoHandedPolearm) && !item.IsSwingable()
	case EquipmentTypeOneHandedGlaive:
		return melee(WeaponClassOneHandedPolearm) && item.IsSwingable()
	case EquipmentTypeTwoHandedGlaive:
		return melee(WeaponClassTwoHandedPolearm) && item.IsSwingable()
	case EquipmentTypeBow:
		return item.Type == TypeBow
	case EquipmentTypeCrossbow:
		return item.Type == TypeCrossbow
	case EquipmentTypeArrows:
		return item.Type == TypeArrows
	case EquipmentTypeBolts:
		return item.Type == TypeBolts
	case EquipmentTypeThrowingKnives:
		return item.PrimaryClass() == WeaponClassThrowingKnife
	case EquipmentTypeThrowingAxes:
		return item.PrimaryClass() == WeaponClassThrowingAxe
	case EquipmentTypeThrowingJavelins:
		return item.PrimaryClass() == WeaponClassJavelin
	case EquipmentTypeShield:
		return item.Type == TypeShield
	case EquipmentTypeStone:
		return item.HasWeaponClass(WeaponClassStone)
	default:
		return false
	}
}

// OfEquipmentType returns a filter accepting items of the equipment type
func OfEquipmentType(kind EquipmentType) Filter {
	return func(item *Item) bool {
		return IsEquipmentType(item, kind)
	}
}

// EquipmentTypeOf returns the first equipment type the item satisfies, or none
func EquipmentTypeOf(item *Item) EquipmentType {
	for _, t := range AllEquipmentTypes() {
		if IsEquipmentType(item, t) {
			return t
		}
	}
	return EquipmentTypeNone
}

// WeaponClassFor returns the weapon class that backs an equipment type
func WeaponClassFor(kind EquipmentType) WeaponClass {
	switch kind {
	case EquipmentTypeDagger:
		return WeaponClassDagger
	case EquipmentTypeOneHandedSword:
		return WeaponClassOneHandedSword
	case EquipmentTypeTwoHandedSword:
		return WeaponClassTwoHandedSword
	case EquipmentTypeOneHandedAxe:
		return WeaponClassOneHandedAxe
	case EquipmentTypeTwoHandedAxe:
		return WeaponClassTwoHandedAxe
	case EquipmentTypeOneHandedMace:
		return WeaponClassMace
	case EquipmentTypeTwoHandedMace:
		return WeaponClassTwoHandedMace
	case EquipmentTypeOneHandedLance, EquipmentTypeOneHandedGlaive:
		return WeaponClassOneHandedPolearm
	case EquipmentTypeTwoHandedLance, EquipmentTypeTwoHandedGlaive:
		return WeaponClassTwoHandedPolearm
	case EquipmentTypeBow:
		return WeaponClassBow
	case EquipmentTypeCrossbow:
		return WeaponClassCrossbow
	case EquipmentTypeArrows:
		return WeaponClassArrow
	case EquipmentTypeBolts:
		return WeaponClassBolt
	case EquipmentTypeThrowingKnives:
		return WeaponClassThrowingKnife
	case EquipmentTypeThrowingAxes:
		return WeaponClassThrowingAxe
	case EquipmentTypeThrowingJavelins:
		return WeaponClassJavelin
	case EquipmentTypeShield:
		return WeaponClassShield
	case EquipmentTypeStone:
		return WeaponClassStone
	default:
		return WeaponClassUndefined
	}
}
