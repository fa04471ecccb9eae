package classdef_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/classdef"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo classdef.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	_, client := testutils.CreateTestRedisClient(s.T())

	repo, err := classdef.NewRedis(&classdef.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestPutAndGet() {
	archer := &hero.ClassDef{
		ID:        "horse-archer",
		Name:      "Horse Archer",
		SlotItems: []equipment.EquipmentType{equipment.EquipmentTypeBow, equipment.EquipmentTypeArrows, equipment.EquipmentTypeOneHandedSword},
		UseHorse:  true,
		Mounted:   true,
	}

	_, err := s.repo.Put(s.ctx, classdef.PutInput{Class: archer})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, classdef.GetInput{ID: "horse-archer"})
	s.Require().NoError(err)
	s.Equal(archer, out.Class)

	_, err = s.repo.Get(s.ctx, classdef.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	tooMany := make([]equipment.EquipmentType, hero.MaxClassWeaponSlots+1)
	for i := range tooMany {
		tooMany[i] = equipment.EquipmentTypeDagger
	}

	testCases := []struct {
		name  string
		class *hero.ClassDef
	}{
		{name: "nil class"},
		{name: "empty id", class: &hero.ClassDef{Name: "Nameless"}},
		{name: "too many weapon slots", class: &hero.ClassDef{ID: "hoarder", SlotItems: tooMany}},
		{name: "unknown slot item", class: &hero.ClassDef{ID: "odd", SlotItems: []equipment.EquipmentType{"boomerang"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, classdef.PutInput{Class: tc.class})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestListOrderedByID() {
	for _, id := range []string{"spearman", "archer", "knight"} {
		_, err := s.repo.Put(s.ctx, classdef.PutInput{Class: &hero.ClassDef{ID: id}})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, classdef.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Classes, 3)
	s.Equal("archer", out.Classes[0].ID)
	s.Equal("knight", out.Classes[1].ID)
	s.Equal("spearman", out.Classes[2].ID)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
