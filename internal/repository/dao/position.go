package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPositionNotFound = errors.New("position not found")
)

// Position is one user's holding in one dish. ReferredBy is set at most once
// (conditional update, first write wins).
type Position struct {
	ID         uint   `gorm:"primaryKey"`
	Fid        int64  `gorm:"not null;uniqueIndex:idx_position_holder"`
	DishID     string `gorm:"not null;uniqueIndex:idx_position_holder;index"`
	Quantity   int64  `gorm:"not null;default:0"`
	ReferredBy *int64

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// DishReferral is one edge of the per-dish referral graph: referrer brought
// referee into the dish. The composite unique index makes recording idempotent.
type DishReferral struct {
	ID          uint   `gorm:"primaryKey"`
	ReferrerFid int64  `gorm:"not null;uniqueIndex:idx_dish_referral"`
	RefereeFid  int64  `gorm:"not null;uniqueIndex:idx_dish_referral"`
	DishID      string `gorm:"not null;uniqueIndex:idx_dish_referral;index"`

	CreatedAt time.Time `gorm:"not null"`
}

type PositionDAO struct {
	db *gorm.DB
}

func NewPositionDAO(db *gorm.DB) *PositionDAO {
	return &PositionDAO{
		db: db,
	}
}

func (d *PositionDAO) FindPosition(ctx context.Context, fid int64, dishID string) (Position, error) {
	var position Position

	result := d.db.WithContext(ctx).
		Where("fid = ? AND dish_id = ?", fid, dishID).
		First(&position)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Position{}, ErrPositionNotFound
		}
		return Position{}, result.Error
	}

	return position, nil
}

// EnsurePosition creates a zero-quantity position if none exists, so referral
// attribution can be recorded before the referee's first purchase.
func (d *PositionDAO) EnsurePosition(ctx context.Context, fid int64, dishID string) error {
	result := d.db.WithContext(ctx).Create(&Position{Fid: fid, DishID: dishID})
	if result.Error != nil && !isUniqueViolation(result.Error) {
		return result.Error
	}

	return nil
}

// SetQuantity writes the holder's quantity for a dish, creating the position
// on first acquisition. A position drained to zero is removed unless it still
// carries referral attribution.
func (d *PositionDAO) SetQuantity(ctx context.Context, fid int64, dishID string, quantity int64) error {
	if quantity <= 0 {
		result := d.db.WithContext(ctx).
			Where("fid = ? AND dish_id = ? AND referred_by IS NULL", fid, dishID).
			Delete(&Position{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		// Attribution must survive; keep the row at zero.
		quantity = 0
	}

	if err := d.EnsurePosition(ctx, fid, dishID); err != nil {
		return err
	}

	result := d.db.WithContext(ctx).
		Model(&Position{}).
		Where("fid = ? AND dish_id = ?", fid, dishID).
		Update("quantity", quantity)

	return result.Error
}

// SetReferredByIfUnset records the referrer only if the position has none.
// Losing the race (or repeating the call) is not an error: the first write
// stands.
func (d *PositionDAO) SetReferredByIfUnset(ctx context.Context, fid int64, dishID string, referrerFid int64) error {
	result := d.db.WithContext(ctx).
		Model(&Position{}).
		Where("fid = ? AND dish_id = ? AND referred_by IS NULL", fid, dishID).
		Update("referred_by", referrerFid)

	return result.Error
}

// InsertDishReferral appends a referral edge; duplicates are no-ops.
func (d *PositionDAO) InsertDishReferral(ctx context.Context, referrerFid, refereeFid int64, dishID string) error {
	referral := DishReferral{
		ReferrerFid: referrerFid,
		RefereeFid:  refereeFid,
		DishID:      dishID,
	}

	result := d.db.WithContext(ctx).Create(&referral)
	if result.Error != nil && !isUniqueViolation(result.Error) {
		return result.Error
	}

	return nil
}

func (d *PositionDAO) ListPositionsByFid(ctx context.Context, fid int64) ([]Position, error) {
	var positions []Position

	result := d.db.WithContext(ctx).
		Where("fid = ?", fid).
		Order("created_at asc").
		Find(&positions)
	if result.Error != nil {
		return nil, result.Error
	}

	return positions, nil
}

// ListReferralsByReferrer returns every referral edge the fid originated,
// across all dishes.
func (d *PositionDAO) ListReferralsByReferrer(ctx context.Context, referrerFid int64) ([]DishReferral, error) {
	var referrals []DishReferral

	result := d.db.WithContext(ctx).
		Where("referrer_fid = ?", referrerFid).
		Order("created_at asc").
		Find(&referrals)
	if result.Error != nil {
		return nil, result.Error
	}

	return referrals, nil
}

// PullDishFromPositions removes every holder's position in the dish together
// with the dish's referral edges, returning the number of positions removed.
func (d *PositionDAO) PullDishFromPositions(ctx context.Context, dishID string) (int64, error) {
	if result := d.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Delete(&DishReferral{}); result.Error != nil {
		return 0, result.Error
	}

	result := d.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Delete(&Position{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
