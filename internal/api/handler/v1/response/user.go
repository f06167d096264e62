package response

import "github.com/mugdha2626/dishfolio-api/internal/domain"

// SyncUserResponse reports the upserted user, whether this sync created it,
// and the referral code the visit resolved to (empty when none).
type SyncUserResponse struct {
	User         domain.User `json:"user"`
	Created      bool        `json:"created"`
	ReferralCode string      `json:"referral_code,omitempty"`
}

// UserProfileResponse is the full read model: stored user plus the derived
// portfolio and tier.
type UserProfileResponse struct {
	User      domain.User      `json:"user"`
	Portfolio domain.Portfolio `json:"portfolio"`
	Tier      domain.Tier      `json:"tier"`
}

type CascadeResponse struct {
	Message string               `json:"message"`
	Report  domain.CascadeReport `json:"report"`
}
