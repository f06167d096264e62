package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish is a tokenized, tradeable position tied to a restaurant. DishID is
// globally unique and independent of the owning restaurant.
type Dish struct {
	DishID        string          `json:"dish_id"`
	Name          string          `json:"name"`
	Creator       Fid             `json:"creator"`
	RestaurantID  string          `json:"restaurant_id"`
	ImageURL      string          `json:"image_url"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	CurrentSupply int64           `json:"current_supply"`
	TotalHolders  int64           `json:"total_holders"`
	DailyVolume   decimal.Decimal `json:"daily_volume"`
	MarketCap     decimal.Decimal `json:"market_cap"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
