package catalog_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	repo      catalog.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, client := testutils.CreateTestRedisClient(s.T())
	s.miniRedis = mr

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestPutBumpsRevision() {
	rev, err := s.repo.Revision(s.ctx, catalog.RevisionInput{})
	s.Require().NoError(err)
	s.Equal(int64(0), rev.Revision)

	out, err := s.repo.Put(s.ctx, catalog.PutInput{Items: []*equipment.Item{
		testutils.OneHandedSword("sword", 2),
		testutils.Bow("longbow", 3, equipment.RequiresNoMount),
	}})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Revision)

	out, err = s.repo.Put(s.ctx, catalog.PutInput{Items: []*equipment.Item{testutils.Shield("shield", 1)}})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Revision)

	s.True(s.miniRedis.Exists("catalog:item:longbow"))
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	testCases := []struct {
		name  string
		items []*equipment.Item
	}{
		{name: "no items"},
		{name: "nil item", items: []*equipment.Item{nil}},
		{name: "empty id", items: []*equipment.Item{testutils.OneHandedSword("", 1)}},
		{name: "invalid type", items: []*equipment.Item{{ID: "rock", Type: "rock"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, catalog.PutInput{Items: tc.items})
			s.True(errors.IsInvalidArgument(err))
		})
	}

	rev, err := s.repo.Revision(s.ctx, catalog.RevisionInput{})
	s.Require().NoError(err)
	s.Equal(int64(0), rev.Revision)
}

func (s *RedisRepositoryTestSuite) TestGetRoundTripsItem() {
	longbow := testutils.Bow("longbow", 3, equipment.RequiresNoMount)
	longbow.NotMerchandise = true
	longbow.Difficulty = 40
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Items: []*equipment.Item{longbow}})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, catalog.GetInput{ID: "longbow"})
	s.Require().NoError(err)
	s.Equal(longbow, out.Item)
	s.True(out.Item.Requires(equipment.RequiresNoMount))

	_, err = s.repo.Get(s.ctx, catalog.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListIsSortedAndCleansIndex() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Items: []*equipment.Item{
		testutils.Shield("c", 1),
		testutils.OneHandedSword("a", 1),
		testutils.Arrows("b", 1),
	}})
	s.Require().NoError(err)
	_, err = s.miniRedis.SAdd("catalog:items", "stale")
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Revision)
	s.Require().Len(out.Items, 3)
	s.Equal("a", out.Items[0].ID)
	s.Equal("b", out.Items[1].ID)
	s.Equal("c", out.Items[2].ID)

	members, err := s.miniRedis.Members("catalog:items")
	s.Require().NoError(err)
	s.NotContains(members, "stale")
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Items: []*equipment.Item{testutils.Shield("shield", 1)}})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, catalog.DeleteInput{ID: "shield"})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Revision)

	list, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Items)

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{ID: "shield"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
