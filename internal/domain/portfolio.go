package domain

import "github.com/shopspring/decimal"

// Position is one dish holding inside a user's portfolio. ReferredBy is the
// fid that referred the holder into this dish (nil = organic entry) and,
// once set, never changes. ReferredTo lists the fids this holder has since
// referred into the same dish.
type Position struct {
	DishID     string          `json:"dish_id"`
	Quantity   int64           `json:"quantity"`
	Return     decimal.Decimal `json:"return"`
	ReferredBy *Fid            `json:"referred_by,omitempty"`
	ReferredTo []Fid           `json:"referred_to,omitempty"`
}

type Portfolio struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalReturn   decimal.Decimal `json:"total_return"`
	Dishes        []Position      `json:"dishes"`
}
