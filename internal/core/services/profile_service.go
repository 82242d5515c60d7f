package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/apperrors"
	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"
)

// profileService manages the single shop profile and onboarding flag.
type profileService struct {
	profileRepo portsrepo.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// GetProfile retrieves the shop profile. ErrNotFound before onboarding.
func (s *profileService) GetProfile(ctx context.Context) (*domain.ShopProfile, error) {
	profile, err := s.profileRepo.FindProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find shop profile: %w", err)
	}
	return profile, nil
}

// SaveProfile creates or replaces the shop profile, preserving the original
// creation timestamp on replacement.
func (s *profileService) SaveProfile(ctx context.Context, req dto.SaveProfileRequest) (*domain.ShopProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	profile := domain.ShopProfile{
		ShopName:           req.ShopName,
		OwnerName:          req.OwnerName,
		Phone:              req.Phone,
		Address:            req.Address,
		OnboardingComplete: req.OnboardingComplete,
		CreatedAt:          now,
		LastUpdatedAt:      now,
	}

	existing, err := s.profileRepo.FindProfile(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		logger.Error("Failed to save shop profile", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save shop profile: %w", err)
	}

	logger.Info("Shop profile saved",
		slog.String("shop_name", profile.ShopName),
		slog.Bool("onboarding_complete", profile.OnboardingComplete))
	return &profile, nil
}
