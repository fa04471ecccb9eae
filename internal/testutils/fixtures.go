package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// TestHeroName is the default hero name for test fixtures
const TestHeroName = "Derthert the Bold"

// FirstRoller always rolls 1, so selections pick the first candidate
type FirstRoller struct {
	Calls []int
}

// Roll records the die size and returns 1
func (r *FirstRoller) Roll(size int) (int, error) {
	r.Calls = append(r.Calls, size)
	return 1, nil
}

// RollN returns count ones
func (r *FirstRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		r.Calls = append(r.Calls, size)
		out[i] = 1
	}
	return out, nil
}

// LastRoller always rolls the highest face, so selections pick the last candidate
type LastRoller struct{}

// Roll returns size
func (r *LastRoller) Roll(size int) (int, error) {
	return size, nil
}

// RollN returns count rolls of size
func (r *LastRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = size
	}
	return out, nil
}

// FailingRoller always errors
type FailingRoller struct{}

// Roll returns an error
func (r *FailingRoller) Roll(size int) (int, error) {
	return 0, fmt.Errorf("roller unavailable for d%d", size)
}

// RollN returns an error
func (r *FailingRoller) RollN(count, size int) ([]int, error) {
	return nil, fmt.Errorf("roller unavailable for %dd%d", count, size)
}

// CreateTestHero creates a hero with no equipment and no trained skills
func CreateTestHero(id string) *hero.Hero {
	return &hero.Hero{
		ID:            id,
		OwnerID:       "owner-" + id,
		Name:          TestHeroName,
		Gender:        equipment.GenderMale,
		Skills:        map[equipment.Skill]int{},
		EquipmentTier: int(equipment.TierNone),
	}
}

// CreateTestHeroWithSkills creates a hero with the given skill values
func CreateTestHeroWithSkills(id string, skills map[equipment.Skill]int) *hero.Hero {
	h := CreateTestHero(id)
	h.Skills = skills
	return h
}

// OneHandedSword creates a swingable one handed sword
func OneHandedSword(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Sword " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeOneHandedWeapon,
		RelevantSkill: equipment.SkillOneHanded,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassOneHandedSword, Melee: true, Swing: true},
		},
	}
}

// TwoHandedAxe creates a two handed axe that cannot be used with a shield
func TwoHandedAxe(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Axe " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeTwoHandedWeapon,
		RelevantSkill: equipment.SkillTwoHanded,
		Weapons: []equipment.Weapon{
			{
				Class: equipment.WeaponClassTwoHandedAxe,
				Melee: true,
				Swing: true,
				Usage: equipment.RequiresNoShield,
			},
		},
	}
}

// Lance creates a thrust only one handed polearm
func Lance(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Lance " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypePolearm,
		RelevantSkill: equipment.SkillPolearm,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassOneHandedPolearm, Melee: true},
		},
	}
}

// CouchedLance creates a two handed lance that can only be used from a mount
func CouchedLance(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Couched lance " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeTwoHandedWeapon,
		RelevantSkill: equipment.SkillTwoHanded,
		Weapons: []equipment.Weapon{
			{
				Class: equipment.WeaponClassTwoHandedPolearm,
				Melee: true,
				Swing: true,
				Usage: equipment.RequiresMount | equipment.RequiresNoShield,
			},
		},
	}
}

// Bow creates a bow. Pass equipment.RequiresNoMount to make it a longbow.
func Bow(id string, tier int, usage equipment.UsageFlags) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Bow " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeBow,
		RelevantSkill: equipment.SkillBow,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassBow, Ranged: true, Usage: usage | equipment.RequiresNoShield},
		},
	}
}

// Crossbow creates a crossbow
func Crossbow(id string, tier int, usage equipment.UsageFlags) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Crossbow " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeCrossbow,
		RelevantSkill: equipment.SkillCrossbow,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassCrossbow, Ranged: true, Usage: usage},
		},
	}
}

// Arrows creates a quiver of arrows
func Arrows(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:   id,
		Name: "Arrows " + id,
		Tier: equipment.Tier(tier),
		Type: equipment.TypeArrows,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassArrow, Ranged: true},
		},
	}
}

// Bolts creates a case of bolts
func Bolts(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:   id,
		Name: "Bolts " + id,
		Tier: equipment.Tier(tier),
		Type: equipment.TypeBolts,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassBolt, Ranged: true},
		},
	}
}

// Javelins creates a stack of throwing javelins
func Javelins(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Javelins " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeThrown,
		RelevantSkill: equipment.SkillThrowing,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassJavelin, Ranged: true},
			{Class: equipment.WeaponClassOneHandedPolearm, Melee: true},
		},
	}
}

// Shield creates a shield
func Shield(id string, tier int) *equipment.Item {
	return &equipment.Item{
		ID:   id,
		Name: "Shield " + id,
		Tier: equipment.Tier(tier),
		Type: equipment.TypeShield,
		Weapons: []equipment.Weapon{
			{Class: equipment.WeaponClassShield, Melee: true},
		},
	}
}

// Armor creates an armor piece of the given type
func Armor(id string, t equipment.Type, tier int, civilian bool) *equipment.Item {
	return &equipment.Item{
		ID:       id,
		Name:     "Armor " + id,
		Tier:     equipment.Tier(tier),
		Type:     t,
		Civilian: civilian,
	}
}

// Mount creates a rideable mount of a family
func Mount(id string, tier int, family equipment.MountFamily) *equipment.Item {
	return &equipment.Item{
		ID:            id,
		Name:          "Mount " + id,
		Tier:          equipment.Tier(tier),
		Type:          equipment.TypeHorse,
		IsMount:       true,
		Family:        family,
		RelevantSkill: equipment.SkillRiding,
		Difficulty:    50,
	}
}

// Harness creates a harness fitting a mount family
func Harness(id string, tier int, family equipment.MountFamily) *equipment.Item {
	return &equipment.Item{
		ID:     id,
		Name:   "Harness " + id,
		Tier:   equipment.Tier(tier),
		Type:   equipment.TypeHorseHarness,
		Family: family,
	}
}
