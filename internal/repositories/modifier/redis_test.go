package modifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/repositories/modifier"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo modifier.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	_, client := testutils.CreateTestRedisClient(s.T())

	repo, err := modifier.NewRedis(&modifier.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestRegister() {
	out, err := s.repo.Register(s.ctx, modifier.RegisterInput{Names: []string{"blessed", "masterwork"}})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Added)

	out, err = s.repo.Register(s.ctx, modifier.RegisterInput{Names: []string{"blessed"}})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Added)

	list, err := s.repo.List(s.ctx, modifier.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"blessed", "masterwork"}, list.Names)
}

func (s *RedisRepositoryTestSuite) TestRegisterValidation() {
	_, err := s.repo.Register(s.ctx, modifier.RegisterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Register(s.ctx, modifier.RegisterInput{Names: []string{"blessed", ""}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestIsRegistered() {
	_, err := s.repo.Register(s.ctx, modifier.RegisterInput{Names: []string{"blessed"}})
	s.Require().NoError(err)

	testCases := []struct {
		name string
		want bool
	}{
		{name: "blessed", want: true},
		{name: "cursed", want: false},
		{name: "", want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.IsRegistered(s.ctx, modifier.IsRegisteredInput{Name: tc.name})
			s.Require().NoError(err)
			s.Equal(tc.want, out.Registered)
		})
	}
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
