package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type User struct {
	Fid int64 `gorm:"primaryKey;autoIncrement:false"`

	Username      string `gorm:"not null"`
	WalletAddress string

	ReputationScore int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserBadge struct {
	ID    uint   `gorm:"primaryKey"`
	Fid   int64  `gorm:"not null;uniqueIndex:idx_user_badge"`
	Badge string `gorm:"not null;uniqueIndex:idx_user_badge"`

	CreatedAt time.Time `gorm:"not null"`
}

type WishlistItem struct {
	ID          uint   `gorm:"primaryKey"`
	Fid         int64  `gorm:"not null;uniqueIndex:idx_wishlist_entry"`
	DishID      string `gorm:"not null;uniqueIndex:idx_wishlist_entry;index"`
	ReferrerFid *int64

	CreatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

// Upsert inserts the user if absent, otherwise refreshes the mutable profile
// fields. The bool result reports whether a new record was created.
func (d *UserDAO) Upsert(ctx context.Context, user User) (User, bool, error) {
	existing, err := d.FindByFid(ctx, user.Fid)
	if err == nil {
		existing.Username = user.Username
		existing.WalletAddress = user.WalletAddress
		if result := d.db.WithContext(ctx).Save(&existing); result.Error != nil {
			return User{}, false, result.Error
		}
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, false, err
	}

	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		// Two concurrent first syncs race on the insert; the loser reads
		// back the winner's row.
		if isUniqueViolation(result.Error) {
			existing, err = d.FindByFid(ctx, user.Fid)
			return existing, false, err
		}
		return User{}, false, result.Error
	}

	return user, true, nil
}

func (d *UserDAO) FindByFid(ctx context.Context, fid int64) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Where("fid = ?", fid).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) UpdateReputation(ctx context.Context, fid int64, score int) error {
	result := d.db.WithContext(ctx).
		Model(&User{}).
		Where("fid = ?", fid).
		Update("reputation_score", score)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (d *UserDAO) AddBadge(ctx context.Context, fid int64, badge string) error {
	result := d.db.WithContext(ctx).Create(&UserBadge{Fid: fid, Badge: badge})
	if result.Error != nil && !isUniqueViolation(result.Error) {
		return result.Error
	}

	return nil
}

func (d *UserDAO) ListBadges(ctx context.Context, fid int64) ([]UserBadge, error) {
	var badges []UserBadge

	result := d.db.WithContext(ctx).
		Where("fid = ?", fid).
		Order("created_at asc").
		Find(&badges)
	if result.Error != nil {
		return nil, result.Error
	}

	return badges, nil
}

// AddWishlistItem inserts a wishlist entry; re-adding the same dish is a
// no-op and does not overwrite the recorded referrer.
func (d *UserDAO) AddWishlistItem(ctx context.Context, item WishlistItem) error {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil && !isUniqueViolation(result.Error) {
		return result.Error
	}

	return nil
}

func (d *UserDAO) RemoveWishlistItem(ctx context.Context, fid int64, dishID string) error {
	result := d.db.WithContext(ctx).
		Where("fid = ? AND dish_id = ?", fid, dishID).
		Delete(&WishlistItem{})

	return result.Error
}

func (d *UserDAO) ListWishlist(ctx context.Context, fid int64) ([]WishlistItem, error) {
	var items []WishlistItem

	result := d.db.WithContext(ctx).
		Where("fid = ?", fid).
		Order("created_at asc").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// PullDishFromWishlists removes every user's wishlist entry for the dish and
// returns how many entries were removed.
func (d *UserDAO) PullDishFromWishlists(ctx context.Context, dishID string) (int64, error) {
	result := d.db.WithContext(ctx).
		Where("dish_id = ?", dishID).
		Delete(&WishlistItem{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
