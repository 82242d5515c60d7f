package services_test

import (
	"context"
	"testing"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/core/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/repositories/database/memory"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	repo    *memory.Repository
	service portssvc.ProfileSvcFacade
	ctx     context.Context
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.repo = memory.NewRepository()
	suite.service = services.NewProfileService(suite.repo)
	suite.ctx = context.Background()
}

func (suite *ProfileServiceTestSuite) TestGetProfile_NotFoundBeforeOnboarding() {
	profile, err := suite.service.GetProfile(suite.ctx)

	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProfileServiceTestSuite) TestSaveProfile_ThenGet() {
	saved, err := suite.service.SaveProfile(suite.ctx, dto.SaveProfileRequest{
		ShopName:           "Lakshmi Stores",
		OwnerName:          "Lakshmi",
		Phone:              "9876543210",
		Address:            "Main Road",
		OnboardingComplete: true,
	})
	suite.Require().NoError(err)
	suite.Equal("Lakshmi Stores", saved.ShopName)
	suite.True(saved.OnboardingComplete)
	suite.False(saved.CreatedAt.IsZero())

	got, err := suite.service.GetProfile(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(saved.ShopName, got.ShopName)
	suite.Equal(saved.OwnerName, got.OwnerName)
}

func (suite *ProfileServiceTestSuite) TestSaveProfile_ReplacementKeepsCreatedAt() {
	first, err := suite.service.SaveProfile(suite.ctx, dto.SaveProfileRequest{
		ShopName: "Lakshmi Stores",
	})
	suite.Require().NoError(err)

	second, err := suite.service.SaveProfile(suite.ctx, dto.SaveProfileRequest{
		ShopName:           "Lakshmi General Stores",
		OnboardingComplete: true,
	})
	suite.Require().NoError(err)

	suite.Equal("Lakshmi General Stores", second.ShopName)
	suite.True(second.CreatedAt.Equal(first.CreatedAt))
	suite.False(second.LastUpdatedAt.Before(first.LastUpdatedAt))
}

func TestProfileService(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
