package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
)

type RecordReferralRequest struct {
	ReferrerFid domain.Fid `json:"referrer_fid"`
	RefereeFid  domain.Fid `json:"referee_fid"`
	DishID      string     `json:"dish_id"`
}

func (req *RecordReferralRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ReferrerFid, validation.Required, validation.Min(domain.Fid(1))),
		validation.Field(&req.RefereeFid, validation.Required, validation.Min(domain.Fid(1))),
		validation.Field(&req.DishID, validation.Required, validation.Length(1, 100)),
	)
}
