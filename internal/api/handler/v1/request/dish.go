package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
)

type CreateDishRequest struct {
	DishID        string     `json:"dish_id"`
	Name          string     `json:"name"`
	Creator       domain.Fid `json:"creator"`
	RestaurantID  string     `json:"restaurant_id"`
	ImageURL      string     `json:"image_url"`
	StartingPrice string     `json:"starting_price"`
	CurrentSupply int64      `json:"current_supply"`
}

func (req *CreateDishRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DishID, validation.Length(0, 100)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Creator, validation.Required, validation.Min(domain.Fid(1))),
		validation.Field(&req.RestaurantID, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.StartingPrice, validation.Required),
		validation.Field(&req.CurrentSupply, validation.Min(0)),
	)
}
