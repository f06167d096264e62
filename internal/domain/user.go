package domain

import "time"

type User struct {
	Fid             Fid        `json:"fid"`
	Username        string     `json:"username"`
	WalletAddress   string     `json:"wallet_address"`
	ReputationScore int        `json:"reputation_score"`
	Badges          []string   `json:"badges"`
	WishList        []WishItem `json:"wish_list"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WishItem is a dish a user has bookmarked. Referrer is the fid that
// introduced the dish to the user; nil means the user found it organically.
type WishItem struct {
	DishID   string `json:"dish_id"`
	Referrer *Fid   `json:"referrer,omitempty"`
}
