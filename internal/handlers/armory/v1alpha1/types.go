package v1alpha1

import (
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
)

// CreateHeroRequest is the wire form of a CreateHero request
type CreateHeroRequest struct {
	OwnerID     string                  `json:"owner_id"`
	Name        string                  `json:"name"`
	Gender      equipment.Gender        `json:"gender,omitempty"`
	Skills      map[equipment.Skill]int `json:"skills,omitempty"`
	Perks       []hero.Perk             `json:"perks,omitempty"`
	ClassID     string                  `json:"class_id,omitempty"`
	CustomItems []*equipment.Item       `json:"custom_items,omitempty"`
	Gold        int64                   `json:"gold,omitempty"`
}

// HeroRequest addresses a single hero
type HeroRequest struct {
	HeroID string `json:"hero_id"`
}

// ListHeroesRequest is the wire form of a ListHeroes request
type ListHeroesRequest struct {
	OwnerID string `json:"owner_id"`
}

// EquipHeroRequest is the wire form of an EquipHero request
type EquipHeroRequest struct {
	HeroID     string `json:"hero_id"`
	Mode       string `json:"mode,omitempty"`
	TargetTier *int   `json:"target_tier,omitempty"`
	KeepBetter *bool  `json:"keep_better,omitempty"`
}

// HeroResponse carries a single hero
type HeroResponse struct {
	Hero *hero.Hero `json:"hero"`
}

// ListHeroesResponse carries an owner's heroes
type ListHeroesResponse struct {
	Heroes []*hero.Hero `json:"heroes"`
}

// EquipHeroResponse is the wire form of an EquipHero response
type EquipHeroResponse struct {
	Hero       *hero.Hero       `json:"hero"`
	TargetTier int              `json:"target_tier"`
	Cost       int64            `json:"cost"`
	Selection  string           `json:"selection"`
	EmptySlots []equipment.Slot `json:"empty_slots"`
}

// EquipmentTierResponse is the wire form of a GetEquipmentTier response
type EquipmentTierResponse struct {
	Tier    int  `json:"tier"`
	Derived bool `json:"derived"`
}
