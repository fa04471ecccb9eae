// Package armory defines the interface for hero outfitting operations
package armory

//go:generate mockgen -destination=mock/mock_service.go -package=armorymock github.com/KirkDiggler/rpg-armory/internal/services/armory Service

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// Service defines the interface for hero outfitting operations
type Service interface {
	// Hero lifecycle
	CreateHero(ctx context.Context, input *CreateHeroInput) (*CreateHeroOutput, error)
	GetHero(ctx context.Context, input *GetHeroInput) (*GetHeroOutput, error)
	ListHeroes(ctx context.Context, input *ListHeroesInput) (*ListHeroesOutput, error)

	// Equipment
	EquipHero(ctx context.Context, input *EquipHeroInput) (*EquipHeroOutput, error)
	RemoveEquipment(ctx context.Context, input *RemoveEquipmentInput) (*RemoveEquipmentOutput, error)
	GetEquipmentTier(ctx context.Context, input *GetEquipmentTierInput) (*GetEquipmentTierOutput, error)
}

// EquipMode selects how the target tier is derived from the hero's current tier
type EquipMode string

// Equip modes
const (
	// EquipModeUpgrade targets one tier above the current tier and keeps better items
	EquipModeUpgrade EquipMode = "upgrade"
	// EquipModeReequip rerolls the loadout at the current tier
	EquipModeReequip EquipMode = "reequip"
)

// IsValid reports whether the mode is known
func (m EquipMode) IsValid() bool {
	return m == EquipModeUpgrade || m == EquipModeReequip
}

// CreateHeroInput defines the request for creating a hero
type CreateHeroInput struct {
	OwnerID     string
	Name        string
	Gender      equipment.Gender
	Skills      map[equipment.Skill]int
	Perks       []hero.Perk
	ClassID     string
	CustomItems []*equipment.Item
	Gold        int64
}

// CreateHeroOutput defines the response for creating a hero
type CreateHeroOutput struct {
	Hero *hero.Hero
}

// GetHeroInput defines the request for getting a hero
type GetHeroInput struct {
	HeroID string
}

// GetHeroOutput defines the response for getting a hero
type GetHeroOutput struct {
	Hero *hero.Hero
}

// ListHeroesInput defines the request for listing an owner's heroes
type ListHeroesInput struct {
	OwnerID string
}

// ListHeroesOutput defines the response for listing an owner's heroes
type ListHeroesOutput struct {
	Heroes []*hero.Hero
}

// EquipHeroInput defines the request for equipping a hero.
// TargetTier and KeepBetter override what Mode would derive when set.
type EquipHeroInput struct {
	HeroID     string
	Mode       EquipMode
	TargetTier *int
	KeepBetter *bool
}

// EquipHeroOutput defines the response for equipping a hero
type EquipHeroOutput struct {
	Hero       *hero.Hero
	TargetTier int
	Cost       int64
	// Selection is the weapon selection used, class or heuristic
	Selection string
	// EmptySlots lists battle slots nothing could fill
	EmptySlots []equipment.Slot
}

// RemoveEquipmentInput defines the request for stripping a hero
type RemoveEquipmentInput struct {
	HeroID string
}

// RemoveEquipmentOutput defines the response for stripping a hero
type RemoveEquipmentOutput struct {
	Hero *hero.Hero
}

// GetEquipmentTierInput defines the request for reading a hero's tier
type GetEquipmentTierInput struct {
	HeroID string
}

// GetEquipmentTierOutput defines the response for reading a hero's tier
type GetEquipmentTierOutput struct {
	// Tier is the recorded tier, or the tier derived from the battle loadout when none is recorded
	Tier int
	// Derived is true when Tier was calculated from the loadout
	Derived bool
}
