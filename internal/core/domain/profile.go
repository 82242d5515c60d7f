package domain

import "time"

// ShopProfile holds the shop's identity and the onboarding completion flag.
// It gates which view the client shows; it carries no ledger semantics.
type ShopProfile struct {
	ShopName           string    `json:"shopName"`
	OwnerName          string    `json:"ownerName"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
}
