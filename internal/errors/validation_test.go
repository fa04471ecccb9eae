package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-armory/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("gender", "is invalid")
	ve.AddFieldErrorf("gold", "must be at least %d", 0)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "gender: is invalid")
	s.Assert().Contains(ve.Error(), "gold: must be at least 0")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("target_tier", "must be between %d and %d", 0, 5).
		RequiredField("hero_id").
		InvalidField("mode", "must be upgrade or reequip")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("target_tier", 7, 0, 5, vb)
	errors.ValidateRange("civilian_retention_tier", 3, 0, 6, vb)
	errors.ValidateRange("difficulty", -1, 0, 300, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["target_tier"][0], "must be between 0 and 5")
	s.Assert().Contains(validationErrors["difficulty"][0], "must be between 0 and 300")
	s.Assert().NotContains(validationErrors, "civilian_retention_tier")
}

func (s *ValidationTestSuite) TestMessageListsFieldsInOrder() {
	err := errors.NewValidationBuilder().
		RequiredField("OwnerID").
		InvalidField("Gender", "must be male or female").
		RequiredField("Engine").
		Build()
	s.Require().NotNil(err)

	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: Engine: is required; Gender: is invalid: must be male or female; OwnerID: is required",
		err.Error())
}

func (s *ValidationTestSuite) TestHeroCreationValidation() {
	type heroInput struct {
		OwnerID string
		Name    string
		Gold    int
		Skills  map[string]int
	}

	input := heroInput{
		Name: "Derthert",
		Gold: -5,
		Skills: map[string]int{
			"bow":    120,
			"riding": 400,
		},
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("gold", input.Gold, 0, 1_000_000, vb)
	for skill, value := range input.Skills {
		errors.ValidateRange(skill, value, 0, 330, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "owner_id")
	s.Assert().Contains(validationErrors, "gold")
	s.Assert().Contains(validationErrors, "riding")
	s.Assert().NotContains(validationErrors, "name")
	s.Assert().NotContains(validationErrors, "bow")
}
