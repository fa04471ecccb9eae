// Package engine defines the equipment allocation engine contract
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-armory/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
)

// Engine computes hero loadouts from a catalog
type Engine interface {
	// Allocate builds new combat and civilian loadouts for a hero.
	// It performs no I/O and never mutates the input hero.
	Allocate(ctx context.Context, input *AllocateInput) (*AllocateOutput, error)

	// CalculateEquipmentTier returns the most common tier across a loadout, -1 when empty
	CalculateEquipmentTier(loadout *equipment.Loadout) int
}

// Catalog is the read only set of items the engine draws from
type Catalog interface {
	AllItems() []*equipment.Item
}

// StaticCatalog is a Catalog over a fixed slice of items
type StaticCatalog []*equipment.Item

// AllItems implements Catalog
func (c StaticCatalog) AllItems() []*equipment.Item {
	return c
}
