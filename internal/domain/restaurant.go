package domain

import "time"

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CascadeReport summarizes a completed restaurant deletion.
type CascadeReport struct {
	RestaurantsDeleted   int64 `json:"restaurants_deleted"`
	DishesDeleted        int64 `json:"dishes_deleted"`
	WishlistRefsRemoved  int64 `json:"wishlist_refs_removed"`
	PortfolioRefsRemoved int64 `json:"portfolio_refs_removed"`
}
