package dto

import (
	"time"

	"github.com/chaikhata/shop_ledger_app/internal/core/domain"
)

// SaveProfileRequest creates or replaces the shop profile. Saving a profile
// with OnboardingComplete=true is how the onboarding wizard finishes.
type SaveProfileRequest struct {
	ShopName           string `json:"shopName" binding:"required"`
	OwnerName          string `json:"ownerName"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	OnboardingComplete bool   `json:"onboardingComplete"`
}

// ProfileResponse is the API representation of the shop profile.
type ProfileResponse struct {
	ShopName           string    `json:"shopName"`
	OwnerName          string    `json:"ownerName"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
}

// ToProfileResponse converts a domain.ShopProfile to its response DTO.
func ToProfileResponse(p *domain.ShopProfile) ProfileResponse {
	return ProfileResponse{
		ShopName:           p.ShopName,
		OwnerName:          p.OwnerName,
		Phone:              p.Phone,
		Address:            p.Address,
		OnboardingComplete: p.OnboardingComplete,
		CreatedAt:          p.CreatedAt,
		LastUpdatedAt:      p.LastUpdatedAt,
	}
}
