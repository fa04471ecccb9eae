package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-armory/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-armory/internal/entities/hero"
	"github.com/KirkDiggler/rpg-armory/internal/errors"
	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
	"github.com/KirkDiggler/rpg-armory/internal/services/armory"
	armorymock "github.com/KirkDiggler/rpg-armory/internal/services/armory/mock"
	"github.com/KirkDiggler/rpg-armory/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *armorymock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context

	testHeroID  string
	testOwnerID string
	testHero    *hero.Hero
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = armorymock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Service: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.ctx = context.Background()
	s.testHeroID = "hero-1"
	s.testOwnerID = "owner-1"
	s.testHero = testutils.CreateTestHero(s.testHeroID)
	s.testHero.OwnerID = s.testOwnerID
	s.testHero.Gold = 25
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1alpha1.NewHandler(nil)
	s.Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
	s.Contains(err.Error(), "armory service is required")
}

func (s *HandlerTestSuite) TestCreateHero() {
	s.Run("maps the request onto the service input", func() {
		s.mockService.EXPECT().
			CreateHero(s.ctx, &armory.CreateHeroInput{
				OwnerID: s.testOwnerID,
				Name:    testutils.TestHeroName,
				Gender:  equipment.GenderFemale,
				Skills:  map[equipment.Skill]int{equipment.SkillBow: 120},
				Perks:   []hero.Perk{hero.PerkHorseMaster},
				ClassID: "horse-archer",
				Gold:    50,
			}).
			Return(&armory.CreateHeroOutput{Hero: s.testHero}, nil)

		resp, err := s.handler.CreateHero(s.ctx, s.request(map[string]interface{}{
			"owner_id": s.testOwnerID,
			"name":     testutils.TestHeroName,
			"gender":   "female",
			"skills":   map[string]interface{}{"bow": 120},
			"perks":    []interface{}{"horse_master"},
			"class_id": "horse-archer",
			"gold":     50,
		}))
		s.Require().NoError(err)
		s.Equal(s.testHeroID, resp.GetFields()["hero"].GetStructValue().GetFields()["id"].GetStringValue())
	})

	s.Run("rejects unknown fields", func() {
		_, err := s.handler.CreateHero(s.ctx, s.request(map[string]interface{}{
			"owner_id": s.testOwnerID,
			"level":    3,
		}))
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("rejects a nil request", func() {
		_, err := s.handler.CreateHero(s.ctx, nil)
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestGetHero() {
	s.Run("returns the hero", func() {
		s.mockService.EXPECT().
			GetHero(s.ctx, &armory.GetHeroInput{HeroID: s.testHeroID}).
			Return(&armory.GetHeroOutput{Hero: s.testHero}, nil)

		resp, err := s.handler.GetHero(s.ctx, s.request(map[string]interface{}{"hero_id": s.testHeroID}))
		s.Require().NoError(err)

		got := resp.GetFields()["hero"].GetStructValue().GetFields()
		s.Equal(s.testOwnerID, got["owner_id"].GetStringValue())
		s.Equal(float64(25), got["gold"].GetNumberValue())
	})

	s.Run("requires a hero id", func() {
		_, err := s.handler.GetHero(s.ctx, s.request(map[string]interface{}{}))
		s.Require().Error(err)
		s.Equal(codes.InvalidArgument, status.Code(err))
	})

	s.Run("maps not found", func() {
		s.mockService.EXPECT().
			GetHero(s.ctx, &armory.GetHeroInput{HeroID: "missing"}).
			Return(nil, errors.NotFoundf("hero %s not found", "missing"))

		_, err := s.handler.GetHero(s.ctx, s.request(map[string]interface{}{"hero_id": "missing"}))
		s.Require().Error(err)
		s.Equal(codes.NotFound, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestListHeroes() {
	s.mockService.EXPECT().
		ListHeroes(s.ctx, &armory.ListHeroesInput{OwnerID: s.testOwnerID}).
		Return(&armory.ListHeroesOutput{Heroes: []*hero.Hero{s.testHero}}, nil)

	resp, err := s.handler.ListHeroes(s.ctx, s.request(map[string]interface{}{"owner_id": s.testOwnerID}))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["heroes"].GetListValue().GetValues(), 1)

	_, err = s.handler.ListHeroes(s.ctx, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestEquipHero() {
	s.Run("passes overrides through", func() {
		tier := 3
		keep := false
		s.mockService.EXPECT().
			EquipHero(s.ctx, &armory.EquipHeroInput{
				HeroID:     s.testHeroID,
				Mode:       armory.EquipModeReequip,
				TargetTier: &tier,
				KeepBetter: &keep,
			}).
			Return(&armory.EquipHeroOutput{
				Hero:       s.testHero,
				TargetTier: 3,
				Cost:       80,
				Selection:  "class",
				EmptySlots: []equipment.Slot{equipment.SlotHorse, equipment.SlotHorseHarness},
			}, nil)

		resp, err := s.handler.EquipHero(s.ctx, s.request(map[string]interface{}{
			"hero_id":     s.testHeroID,
			"mode":        "reequip",
			"target_tier": 3,
			"keep_better": false,
		}))
		s.Require().NoError(err)

		fields := resp.GetFields()
		s.Equal(float64(3), fields["target_tier"].GetNumberValue())
		s.Equal(float64(80), fields["cost"].GetNumberValue())
		s.Equal("class", fields["selection"].GetStringValue())
		s.Len(fields["empty_slots"].GetListValue().GetValues(), 2)
	})

	s.Run("leaves overrides unset when absent", func() {
		s.mockService.EXPECT().
			EquipHero(s.ctx, &armory.EquipHeroInput{HeroID: s.testHeroID}).
			Return(&armory.EquipHeroOutput{Hero: s.testHero}, nil)

		_, err := s.handler.EquipHero(s.ctx, s.request(map[string]interface{}{"hero_id": s.testHeroID}))
		s.Require().NoError(err)
	})

	s.Run("maps failed precondition", func() {
		s.mockService.EXPECT().
			EquipHero(s.ctx, gomock.Any()).
			Return(nil, errors.FailedPrecondition("hero cannot afford tier 2"))

		_, err := s.handler.EquipHero(s.ctx, s.request(map[string]interface{}{"hero_id": s.testHeroID}))
		s.Require().Error(err)
		s.Equal(codes.FailedPrecondition, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestRemoveEquipment() {
	s.mockService.EXPECT().
		RemoveEquipment(s.ctx, &armory.RemoveEquipmentInput{HeroID: s.testHeroID}).
		Return(&armory.RemoveEquipmentOutput{Hero: s.testHero}, nil)

	resp, err := s.handler.RemoveEquipment(s.ctx, s.request(map[string]interface{}{"hero_id": s.testHeroID}))
	s.Require().NoError(err)
	s.NotNil(resp.GetFields()["hero"].GetStructValue())
}

func (s *HandlerTestSuite) TestGetEquipmentTier() {
	s.mockService.EXPECT().
		GetEquipmentTier(s.ctx, &armory.GetEquipmentTierInput{HeroID: s.testHeroID}).
		Return(&armory.GetEquipmentTierOutput{Tier: 2, Derived: true}, nil)

	resp, err := s.handler.GetEquipmentTier(s.ctx, s.request(map[string]interface{}{"hero_id": s.testHeroID}))
	s.Require().NoError(err)
	s.Equal(float64(2), resp.GetFields()["tier"].GetNumberValue())
	s.True(resp.GetFields()["derived"].GetBoolValue())
}

func (s *HandlerTestSuite) TestRoundTripOverGRPC() {
	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	v1alpha1.RegisterArmoryServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close()
	}()

	client := v1alpha1.NewArmoryServiceClient(conn)

	s.mockService.EXPECT().
		GetEquipmentTier(gomock.Any(), &armory.GetEquipmentTierInput{HeroID: s.testHeroID}).
		Return(&armory.GetEquipmentTierOutput{Tier: 4}, nil)

	resp, err := client.Call(s.ctx, v1alpha1.MethodGetEquipmentTier, s.request(map[string]interface{}{"hero_id": s.testHeroID}))
	s.Require().NoError(err)
	s.Equal(float64(4), resp.GetFields()["tier"].GetNumberValue())

	s.mockService.EXPECT().
		EquipHero(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("hero not found").WithMeta("hero_id", "missing"))

	_, err = client.Call(s.ctx, v1alpha1.MethodEquipHero, s.request(map[string]interface{}{"hero_id": "missing"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))

	back := errors.FromGRPCError(err)
	s.Equal("missing", errors.GetMeta(back)["hero_id"])

	s.mockService.EXPECT().
		EquipHero(gomock.Any(), &armory.EquipHeroInput{HeroID: s.testHeroID, Mode: armory.EquipModeUpgrade}).
		Return(&armory.EquipHeroOutput{
			Hero:       s.testHero,
			TargetTier: 1,
			Cost:       20,
			Selection:  "heuristic",
			EmptySlots: []equipment.Slot{equipment.SlotHorse},
		}, nil)

	equipped, err := client.EquipHero(s.ctx, &v1alpha1.EquipHeroRequest{HeroID: s.testHeroID, Mode: "upgrade"})
	s.Require().NoError(err)
	s.Equal(s.testHeroID, equipped.Hero.ID)
	s.Equal(int64(25), equipped.Hero.Gold)
	s.Equal(1, equipped.TargetTier)
	s.Equal([]equipment.Slot{equipment.SlotHorse}, equipped.EmptySlots)

	s.mockService.EXPECT().
		GetHero(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("hero not found"))

	_, err = client.GetHero(s.ctx, &v1alpha1.HeroRequest{HeroID: "gone"})
	s.True(errors.IsNotFound(err))
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
