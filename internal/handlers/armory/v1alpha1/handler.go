// Package v1alpha1 handles the armory gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/services/armory"
)

// HandlerConfig holds dependencies for the armory handler
type HandlerConfig struct {
	Service armory.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Service == nil {
		return errors.InvalidArgument("armory service is required")
	}
	return nil
}

// Handler implements ArmoryServiceServer
type Handler struct {
	service armory.Service
}

var _ ArmoryServiceServer = (*Handler)(nil)

// NewHandler creates a new armory handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// CreateHero registers a new hero
func (h *Handler) CreateHero(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CreateHeroRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreateHero(ctx, &armory.CreateHeroInput{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Gender:      in.Gender,
		Skills:      in.Skills,
		Perks:       in.Perks,
		ClassID:     in.ClassID,
		CustomItems: in.CustomItems,
		Gold:        in.Gold,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&HeroResponse{Hero: out.Hero})
}

// GetHero retrieves a hero with both loadouts
func (h *Handler) GetHero(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in HeroRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.HeroID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("hero_id is required"))
	}

	out, err := h.service.GetHero(ctx, &armory.GetHeroInput{HeroID: in.HeroID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&HeroResponse{Hero: out.Hero})
}

// ListHeroes lists an owner's heroes
func (h *Handler) ListHeroes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListHeroesRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.ListHeroes(ctx, &armory.ListHeroesInput{OwnerID: in.OwnerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListHeroesResponse{Heroes: out.Heroes})
}

// EquipHero upgrades or rerolls a hero's equipment
func (h *Handler) EquipHero(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in EquipHeroRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.HeroID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("hero_id is required"))
	}

	out, err := h.service.EquipHero(ctx, &armory.EquipHeroInput{
		HeroID:     in.HeroID,
		Mode:       armory.EquipMode(in.Mode),
		TargetTier: in.TargetTier,
		KeepBetter: in.KeepBetter,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&EquipHeroResponse{
		Hero:       out.Hero,
		TargetTier: out.TargetTier,
		Cost:       out.Cost,
		Selection:  out.Selection,
		EmptySlots: out.EmptySlots,
	})
}

// RemoveEquipment strips both of a hero's loadouts
func (h *Handler) RemoveEquipment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in HeroRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.HeroID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("hero_id is required"))
	}

	out, err := h.service.RemoveEquipment(ctx, &armory.RemoveEquipmentInput{HeroID: in.HeroID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&HeroResponse{Hero: out.Hero})
}

// GetEquipmentTier reports a hero's equipment tier
func (h *Handler) GetEquipmentTier(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in HeroRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.HeroID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("hero_id is required"))
	}

	out, err := h.service.GetEquipmentTier(ctx, &armory.GetEquipmentTierInput{HeroID: in.HeroID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&EquipmentTierResponse{Tier: out.Tier, Derived: out.Derived})
}

func respond(v interface{}) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
