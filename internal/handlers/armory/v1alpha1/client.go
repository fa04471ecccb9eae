package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

// CreateHero calls CreateHero with a typed request
func (c *ArmoryServiceClient) CreateHero(ctx context.Context, in *CreateHeroRequest, opts ...grpc.CallOption) (*HeroResponse, error) {
	out := &HeroResponse{}
	if err := c.invoke(ctx, MethodCreateHero, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHero calls GetHero with a typed request
func (c *ArmoryServiceClient) GetHero(ctx context.Context, in *HeroRequest, opts ...grpc.CallOption) (*HeroResponse, error) {
	out := &HeroResponse{}
	if err := c.invoke(ctx, MethodGetHero, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListHeroes calls ListHeroes with a typed request
func (c *ArmoryServiceClient) ListHeroes(ctx context.Context, in *ListHeroesRequest, opts ...grpc.CallOption) (*ListHeroesResponse, error) {
	out := &ListHeroesResponse{}
	if err := c.invoke(ctx, MethodListHeroes, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// EquipHero calls EquipHero with a typed request
func (c *ArmoryServiceClient) EquipHero(ctx context.Context, in *EquipHeroRequest, opts ...grpc.CallOption) (*EquipHeroResponse, error) {
	out := &EquipHeroResponse{}
	if err := c.invoke(ctx, MethodEquipHero, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveEquipment calls RemoveEquipment with a typed request
func (c *ArmoryServiceClient) RemoveEquipment(ctx context.Context, in *HeroRequest, opts ...grpc.CallOption) (*HeroResponse, error) {
	out := &HeroResponse{}
	if err := c.invoke(ctx, MethodRemoveEquipment, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEquipmentTier calls GetEquipmentTier with a typed request
func (c *ArmoryServiceClient) GetEquipmentTier(ctx context.Context, in *HeroRequest, opts ...grpc.CallOption) (*EquipmentTierResponse, error) {
	out := &EquipmentTierResponse{}
	if err := c.invoke(ctx, MethodGetEquipmentTier, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ArmoryServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts ...grpc.CallOption) error {
	req, err := encode(in)
	if err != nil {
		return err
	}

	resp, err := c.Call(ctx, method, req, opts...)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	return decodeResponse(resp, out)
}

// decodeResponse tolerates fields it does not know so older clients keep working
func decodeResponse(resp *structpb.Struct, dst interface{}) error {
	data, err := protojson.Marshal(resp)
	if err != nil {
		return errors.Wrapf(err, "failed to read response")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "failed to read response")
	}
	return nil
}
