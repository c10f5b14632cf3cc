package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("rooms[1].width", "must be positive")
	ve.AddFieldError("number", "is required")
	ve.AddFieldError("rooms[0].type", "is required")

	s.Assert().Equal(
		"validation failed: number: is required; rooms[0].type: is required; rooms[1].width: must be positive",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("rooms", "must not be empty").
		Fieldf("number", "must be between %d and %d", 1, 3).
		RequiredField("background").
		InvalidField("rooms[0].enemies[0].type", "unknown enemy type \"troll\"")

	s.Assert().True(vb.HasErrors())
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().False(vb.HasErrors())
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("width", 0, vb)
	errors.ValidatePositive("height", -4, vb)
	errors.ValidatePositive("depth", 12, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "width")
	s.Assert().Contains(validationErrors["height"][0], "must be positive")
	s.Assert().NotContains(validationErrors, "depth")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 4, 1, 3, vb)
	errors.ValidateRange("slot", 2, 1, 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 1 and 3")
	s.Assert().NotContains(validationErrors, "slot")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"spawn", "fight", "trader"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("type", "lobby", allowed, vb)
	errors.ValidateEnum("other", "fight", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["type"][0], "must be one of: spawn, fight, trader")
	s.Assert().NotContains(validationErrors, "other")
}
