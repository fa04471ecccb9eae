// Package tiered provides the concrete equipment allocation engine: nearest tier item
// selection with usability, class and retention rules on top.
package tiered

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-armory/internal/engine"
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

// CivilianRetention selects the tier threshold used to keep civilian items
type CivilianRetention string

const (
	// CivilianRetentionShared keeps civilian items at or above the combat target tier
	CivilianRetentionShared CivilianRetention = "shared"
	// CivilianRetentionIndependent keeps civilian items at or above Config.CivilianRetentionTier
	CivilianRetentionIndependent CivilianRetention = "independent"
)

// Config contains configuration for creating a new Allocator
type Config struct {
	Roller                dice.Roller
	CivilianRetention     CivilianRetention
	CivilianRetentionTier int
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	switch c.CivilianRetention {
	case "", CivilianRetentionShared:
	case CivilianRetentionIndependent:
		errors.ValidateRange("CivilianRetentionTier", c.CivilianRetentionTier,
			int(equipment.TierMin), int(equipment.TierCustom), vb)
	default:
		vb.InvalidField("CivilianRetention", "must be shared or independent")
	}

	return vb.Build()
}

// Allocator implements engine.Engine
type Allocator struct {
	roller                dice.Roller
	civilianRetention     CivilianRetention
	civilianRetentionTier equipment.Tier
}

var _ engine.Engine = (*Allocator)(nil)

// New creates a new tiered allocation engine
func New(cfg *Config) (*Allocator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	retention := cfg.CivilianRetention
	if retention == "" {
		retention = CivilianRetentionShared
	}

	return &Allocator{
		roller:                cfg.Roller,
		civilianRetention:     retention,
		civilianRetentionTier: equipment.Tier(cfg.CivilianRetentionTier),
	}, nil
}

// Allocate builds fresh combat and civilian loadouts for the hero
func (a *Allocator) Allocate(ctx context.Context, input *engine.AllocateInput) (*engine.AllocateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Hero == nil {
		return nil, errors.InvalidArgument("hero is required")
	}
	if input.Catalog == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	target := equipment.ClampTier(input.TargetTier)
	if int(target) != input.TargetTier {
		slog.DebugContext(ctx, "clamped target tier",
			"hero_id", input.Hero.ID,
			"requested", input.TargetTier,
			"target", int(target))
	}

	isSpecial := input.IsSpecial
	if isSpecial == nil {
		isSpecial = engine.NoneSpecial
	}

	civilianTier := target
	if a.civilianRetention == CivilianRetentionIndependent {
		civilianTier = a.civilianRetentionTier
	}

	run := &allocation{
		ctx:          ctx,
		choose:       a.choose,
		hero:         input.Hero,
		catalog:      input.Catalog.AllItems(),
		class:        input.Class,
		target:       target,
		keepBetter:   input.KeepBetter,
		isSpecial:    isSpecial,
		civilianTier: civilianTier,
		civilian:     input.Hero.CivilianEquipment,
	}

	run.equipBattle()
	run.equipCivilian()

	mode := engine.ModeHeuristic
	if input.Class != nil {
		mode = engine.ModeClass
	}

	slog.DebugContext(ctx, "allocated equipment",
		"hero_id", input.Hero.ID,
		"target_tier", int(target),
		"mode", mode,
		"keep_better", input.KeepBetter,
		"battle_items", run.battle.FilledCount(),
		"civilian_items", run.civilian.FilledCount())

	return &engine.AllocateOutput{
		TargetTier:        int(target),
		BattleEquipment:   run.battle,
		CivilianEquipment: run.civilian,
		Mode:              mode,
	}, nil
}

// CalculateEquipmentTier returns the most common tier over the armor slots, counting empty
// armor as -1, and every other filled slot. Ties go to the tier seen first in slot order.
func (a *Allocator) CalculateEquipmentTier(loadout *equipment.Loadout) int {
	if loadout == nil {
		return int(equipment.TierNone)
	}

	var order []int
	counts := make(map[int]int)
	for i, item := range loadout {
		slot := equipment.Slot(i)
		if item == nil && !slot.IsArmor() {
			continue
		}

		tier := int(equipment.TierNone)
		if item != nil {
			tier = int(item.Tier)
		}
		if _, seen := counts[tier]; !seen {
			order = append(order, tier)
		}
		counts[tier]++
	}

	best := int(equipment.TierNone)
	bestCount := 0
	for _, tier := range order {
		if counts[tier] > bestCount {
			best = tier
			bestCount = counts[tier]
		}
	}
	return best
}

// choose returns an index in [0, n) drawn from the roller
func (a *Allocator) choose(ctx context.Context, n int) int {
	if n <= 1 {
		return 0
	}

	roll, err := a.roller.Roll(n)
	if err != nil || roll < 1 || roll > n {
		slog.WarnContext(ctx, "dice roll failed, using first candidate",
			"size", n,
			"roll", roll,
			"error", err)
		return 0
	}
	return roll - 1
}
