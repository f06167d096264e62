package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
)

type SyncUserRequest struct {
	Fid           domain.Fid `json:"fid"`
	Username      string     `json:"username"`
	WalletAddress string     `json:"wallet_address"`
}

func (req *SyncUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Fid, validation.Required, validation.Min(domain.Fid(1))),
		validation.Field(&req.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.WalletAddress, validation.Length(0, 100)),
	)
}

type UpdateReputationRequest struct {
	ReputationScore int `json:"reputation_score"`
}

func (req *UpdateReputationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ReputationScore, validation.Min(0)),
	)
}

type AddWishlistItemRequest struct {
	DishID   string      `json:"dish_id"`
	Referrer *domain.Fid `json:"referrer"`
}

func (req *AddWishlistItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DishID, validation.Required, validation.Length(1, 100)),
	)
}

type SetHoldingRequest struct {
	DishID   string `json:"dish_id"`
	Quantity int64  `json:"quantity"`
}

func (req *SetHoldingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DishID, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}
