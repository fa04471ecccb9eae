// Package outfitter implements the armory service: it loads heroes, classes and the
// catalog, runs the allocation engine and persists the resulting loadouts
package outfitter

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-armory/internal/engine"
	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/metrics"
	"github.com/KirkDiggler/rpg-armory/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-armory/internal/pkg/keylock"
	catalogrepo "github.com/KirkDiggler/rpg-armory/internal/repositories/catalog"
	classdefrepo "github.com/KirkDiggler/rpg-armory/internal/repositories/classdef"
	herorepo "github.com/KirkDiggler/rpg-armory/internal/repositories/hero"
	modifierrepo "github.com/KirkDiggler/rpg-armory/internal/repositories/modifier"
	"github.com/KirkDiggler/rpg-armory/internal/services/armory"
)

// Config holds the dependencies for the outfitter orchestrator
type Config struct {
	HeroRepo     herorepo.Repository
	CatalogRepo  catalogrepo.Repository
	ClassRepo    classdefrepo.Repository
	ModifierRepo modifierrepo.Repository
	Engine       engine.Engine
	IDGenerator  idgen.Generator

	// Locks serializes work per hero. A private manager is created when nil.
	Locks *keylock.Manager

	// TierCosts is the gold price of equipping each tier, indexed by tier.
	// Tiers past the end of the slice are free.
	TierCosts []int64

	CatalogCacheSize int
	CatalogCacheTTL  time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HeroRepo == nil {
		vb.RequiredField("HeroRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.ClassRepo == nil {
		vb.RequiredField("ClassRepo")
	}
	if c.ModifierRepo == nil {
		vb.RequiredField("ModifierRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if len(c.TierCosts) > int(equipment.TierMax)+1 {
		vb.Fieldf("TierCosts", "at most %d entries are allowed", int(equipment.TierMax)+1)
	}
	for tier, cost := range c.TierCosts {
		if cost < 0 {
			vb.Fieldf("TierCosts", "cost for tier %d cannot be negative", tier)
		}
	}
	if c.CatalogCacheSize < 0 {
		vb.InvalidField("CatalogCacheSize", "cannot be negative")
	}

	return vb.Build()
}

// Orchestrator implements the armory.Service interface
type Orchestrator struct {
	heroRepo     herorepo.Repository
	classRepo    classdefrepo.Repository
	modifierRepo modifierrepo.Repository
	engine       engine.Engine
	idGenerator  idgen.Generator
	locks        *keylock.Manager
	tierCosts    []int64
	catalog      *catalogCache
}

// Ensure Orchestrator implements the Service interface
var _ armory.Service = (*Orchestrator)(nil)

// New creates a new outfitter orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}

	return &Orchestrator{
		heroRepo:     cfg.HeroRepo,
		classRepo:    cfg.ClassRepo,
		modifierRepo: cfg.ModifierRepo,
		engine:       cfg.Engine,
		idGenerator:  cfg.IDGenerator,
		locks:        locks,
		tierCosts:    cfg.TierCosts,
		catalog:      newCatalogCache(cfg.CatalogRepo, cfg.CatalogCacheSize, cfg.CatalogCacheTTL),
	}, nil
}

// CreateHero registers a new hero with empty loadouts
func (o *Orchestrator) CreateHero(ctx context.Context, input *armory.CreateHeroInput) (*armory.CreateHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.Gender != "" && !input.Gender.IsValid() {
		vb.InvalidField("gender", "must be male or female")
	}
	for skill, value := range input.Skills {
		if !skill.IsValid() {
			vb.Fieldf("skills", "unknown skill %q", skill)
		}
		if value < 0 {
			vb.Fieldf("skills", "%s cannot be negative", skill)
		}
	}
	for i, item := range input.CustomItems {
		if item == nil || item.ID == "" || !item.Type.IsValid() {
			vb.Fieldf("customItems", "item %d needs an ID and a valid type", i)
		}
	}
	if input.Gold < 0 {
		vb.InvalidField("gold", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.ClassID != "" {
		if _, err := o.classRepo.Get(ctx, classdefrepo.GetInput{ID: input.ClassID}); err != nil {
			return nil, errors.Wrapf(err, "failed to get class %s", input.ClassID)
		}
	}

	gender := input.Gender
	if gender == "" {
		gender = equipment.GenderMale
	}

	h := &hero.Hero{
		ID:            o.idGenerator.Generate(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Gender:        gender,
		Skills:        input.Skills,
		Perks:         input.Perks,
		CustomItems:   input.CustomItems,
		EquipmentTier: int(equipment.TierNone),
		ClassID:       input.ClassID,
		Gold:          input.Gold,
	}

	out, err := o.heroRepo.Create(ctx, herorepo.CreateInput{Hero: h})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create hero")
	}

	slog.InfoContext(ctx, "hero created",
		"hero_id", out.Hero.ID,
		"owner_id", out.Hero.OwnerID,
		"class_id", out.Hero.ClassID)

	return &armory.CreateHeroOutput{Hero: out.Hero}, nil
}

// GetHero retrieves a hero by ID
func (o *Orchestrator) GetHero(ctx context.Context, input *armory.GetHeroInput) (*armory.GetHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	out, err := o.heroRepo.Get(ctx, herorepo.GetInput{ID: input.HeroID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get hero")
	}

	return &armory.GetHeroOutput{Hero: out.Hero}, nil
}

// ListHeroes lists every hero belonging to an owner
func (o *Orchestrator) ListHeroes(ctx context.Context, input *armory.ListHeroesInput) (*armory.ListHeroesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.heroRepo.ListByOwner(ctx, herorepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list heroes")
	}

	return &armory.ListHeroesOutput{Heroes: out.Heroes}, nil
}

// EquipHero allocates new loadouts for a hero and persists them.
// Only one equip or remove runs at a time for a given hero.
func (o *Orchestrator) EquipHero(ctx context.Context, input *armory.EquipHeroInput) (_ *armory.EquipHeroOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := input.Mode
	if mode == "" {
		mode = armory.EquipModeUpgrade
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("heroID", input.HeroID, vb)
	if !mode.IsValid() {
		vb.InvalidField("mode", "must be upgrade or reequip")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		result := metrics.ResultOK
		if err != nil {
			result = metrics.ResultError
		}
		metrics.AllocationsTotal.WithLabelValues(string(mode), result).Inc()
		metrics.AllocationDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	}()

	unlock := o.locks.Lock(input.HeroID)
	defer unlock()

	heroOut, err := o.heroRepo.Get(ctx, herorepo.GetInput{ID: input.HeroID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get hero")
	}
	h := heroOut.Hero

	target, err := targetTier(h.EquipmentTier, mode, input.TargetTier)
	if err != nil {
		return nil, err
	}

	cost := o.tierCost(target)
	if h.Gold < cost {
		return nil, errors.FailedPreconditionf("equipping tier %d costs %d gold, hero has %d", target, cost, h.Gold).
			WithMeta("hero_id", h.ID)
	}

	class, err := o.loadClass(ctx, h.ClassID)
	if err != nil {
		return nil, err
	}

	items, err := o.catalog.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	isSpecial, err := o.specialItems(ctx)
	if err != nil {
		return nil, err
	}

	keepBetter := mode == armory.EquipModeUpgrade
	if input.KeepBetter != nil {
		keepBetter = *input.KeepBetter
	}

	alloc, err := o.engine.Allocate(ctx, &engine.AllocateInput{
		Hero:       h,
		Catalog:    items,
		TargetTier: target,
		Class:      class,
		KeepBetter: keepBetter,
		IsSpecial:  isSpecial,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate equipment")
	}

	h.BattleEquipment = alloc.BattleEquipment
	h.CivilianEquipment = alloc.CivilianEquipment
	h.EquipmentTier = alloc.TargetTier
	h.Gold -= cost

	updated, err := o.heroRepo.Update(ctx, herorepo.UpdateInput{Hero: h})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save hero")
	}

	empty := emptySlots(&updated.Hero.BattleEquipment)
	for _, slot := range empty {
		metrics.EmptySlotsTotal.WithLabelValues(slot.String()).Inc()
	}

	slog.InfoContext(ctx, "hero equipped",
		"hero", entityRef(h),
		"mode", string(mode),
		"target_tier", alloc.TargetTier,
		"selection", alloc.Mode,
		"keep_better", keepBetter,
		"cost", cost,
		"empty_slots", len(empty))
	slog.DebugContext(ctx, "battle loadout",
		"hero", entityRef(h),
		"items", loadoutRefs(&updated.Hero.BattleEquipment))

	return &armory.EquipHeroOutput{
		Hero:       updated.Hero,
		TargetTier: alloc.TargetTier,
		Cost:       cost,
		Selection:  alloc.Mode,
		EmptySlots: empty,
	}, nil
}

// RemoveEquipment empties both of a hero's loadouts and forgets its tier
func (o *Orchestrator) RemoveEquipment(ctx context.Context, input *armory.RemoveEquipmentInput) (*armory.RemoveEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	unlock := o.locks.Lock(input.HeroID)
	defer unlock()

	heroOut, err := o.heroRepo.Get(ctx, herorepo.GetInput{ID: input.HeroID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get hero")
	}

	h := heroOut.Hero
	h.RemoveAllEquipment()

	updated, err := o.heroRepo.Update(ctx, herorepo.UpdateInput{Hero: h})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save hero")
	}

	return &armory.RemoveEquipmentOutput{Hero: updated.Hero}, nil
}

// GetEquipmentTier returns the hero's recorded tier, deriving it from the battle loadout
// when no tier has been recorded
func (o *Orchestrator) GetEquipmentTier(ctx context.Context, input *armory.GetEquipmentTierInput) (*armory.GetEquipmentTierOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	heroOut, err := o.heroRepo.Get(ctx, herorepo.GetInput{ID: input.HeroID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get hero")
	}

	if heroOut.Hero.EquipmentTier >= int(equipment.TierMin) {
		return &armory.GetEquipmentTierOutput{Tier: heroOut.Hero.EquipmentTier}, nil
	}

	return &armory.GetEquipmentTierOutput{
		Tier:    o.engine.CalculateEquipmentTier(&heroOut.Hero.BattleEquipment),
		Derived: true,
	}, nil
}

// targetTier derives the tier to equip from the hero's current tier and the request
func targetTier(current int, mode armory.EquipMode, override *int) (int, error) {
	if override != nil {
		return int(equipment.ClampTier(*override)), nil
	}

	target := current
	if mode == armory.EquipModeUpgrade {
		target++
	}
	if target < int(equipment.TierMin) {
		target = int(equipment.TierMin)
	}
	if target > int(equipment.TierMax) {
		return 0, errors.FailedPreconditionf("hero is already at tier %d and cannot upgrade further", current)
	}

	return target, nil
}

func (o *Orchestrator) tierCost(tier int) int64 {
	if tier < 0 || tier >= len(o.tierCosts) {
		return 0
	}
	return o.tierCosts[tier]
}

func (o *Orchestrator) loadClass(ctx context.Context, classID string) (*hero.ClassDef, error) {
	if classID == "" {
		return nil, nil
	}

	out, err := o.classRepo.Get(ctx, classdefrepo.GetInput{ID: classID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get class %s", classID)
	}

	return out.Class, nil
}

// specialItems builds the predicate marking items with a registered modifier
func (o *Orchestrator) specialItems(ctx context.Context) (engine.SpecialFunc, error) {
	out, err := o.modifierRepo.List(ctx, modifierrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list modifiers")
	}
	if len(out.Names) == 0 {
		return engine.NoneSpecial, nil
	}

	registered := make(map[string]struct{}, len(out.Names))
	for _, name := range out.Names {
		registered[name] = struct{}{}
	}

	return func(item *equipment.Item) bool {
		if !item.HasModifier() {
			return false
		}
		_, ok := registered[item.Modifier]
		return ok
	}, nil
}

func emptySlots(loadout *equipment.Loadout) []equipment.Slot {
	var empty []equipment.Slot
	for i := 0; i < equipment.NumSlots; i++ {
		if s := equipment.Slot(i); loadout.Get(s) == nil {
			empty = append(empty, s)
		}
	}
	return empty
}
