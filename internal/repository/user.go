package repository

import (
	"context"
	"fmt"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository/dao"
)

var (
	ErrUserNotFound = dao.ErrUserNotFound
)

type UserDAO interface {
	Upsert(ctx context.Context, user dao.User) (dao.User, bool, error)
	FindByFid(ctx context.Context, fid int64) (dao.User, error)
	UpdateReputation(ctx context.Context, fid int64, score int) error
	AddBadge(ctx context.Context, fid int64, badge string) error
	ListBadges(ctx context.Context, fid int64) ([]dao.UserBadge, error)
	AddWishlistItem(ctx context.Context, item dao.WishlistItem) error
	RemoveWishlistItem(ctx context.Context, fid int64, dishID string) error
	ListWishlist(ctx context.Context, fid int64) ([]dao.WishlistItem, error)
	PullDishFromWishlists(ctx context.Context, dishID string) (int64, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Upsert(ctx context.Context, user domain.User) (domain.User, bool, error) {
	upserted, created, err := r.dao.Upsert(ctx, dao.User{
		Fid:           int64(user.Fid),
		Username:      user.Username,
		WalletAddress: user.WalletAddress,
	})
	if err != nil {
		return domain.User{}, false, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), created, nil
}

func (r *UserRepository) FindByFid(ctx context.Context, fid domain.Fid) (domain.User, error) {
	found, err := r.dao.FindByFid(ctx, int64(fid))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByFid -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) UpdateReputation(ctx context.Context, fid domain.Fid, score int) error {
	if err := r.dao.UpdateReputation(ctx, int64(fid), score); err != nil {
		return fmt.Errorf("r.dao.UpdateReputation -> %w", err)
	}

	return nil
}

func (r *UserRepository) AddBadge(ctx context.Context, fid domain.Fid, badge string) error {
	if err := r.dao.AddBadge(ctx, int64(fid), badge); err != nil {
		return fmt.Errorf("r.dao.AddBadge -> %w", err)
	}

	return nil
}

func (r *UserRepository) ListBadges(ctx context.Context, fid domain.Fid) ([]string, error) {
	found, err := r.dao.ListBadges(ctx, int64(fid))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListBadges -> %w", err)
	}

	badges := make([]string, len(found))
	for i, badge := range found {
		badges[i] = badge.Badge
	}

	return badges, nil
}

func (r *UserRepository) AddWishlistItem(ctx context.Context, fid domain.Fid, item domain.WishItem) error {
	daoItem := dao.WishlistItem{
		Fid:    int64(fid),
		DishID: item.DishID,
	}
	if item.Referrer != nil {
		referrer := int64(*item.Referrer)
		daoItem.ReferrerFid = &referrer
	}

	if err := r.dao.AddWishlistItem(ctx, daoItem); err != nil {
		return fmt.Errorf("r.dao.AddWishlistItem -> %w", err)
	}

	return nil
}

func (r *UserRepository) RemoveWishlistItem(ctx context.Context, fid domain.Fid, dishID string) error {
	if err := r.dao.RemoveWishlistItem(ctx, int64(fid), dishID); err != nil {
		return fmt.Errorf("r.dao.RemoveWishlistItem -> %w", err)
	}

	return nil
}

func (r *UserRepository) ListWishlist(ctx context.Context, fid domain.Fid) ([]domain.WishItem, error) {
	found, err := r.dao.ListWishlist(ctx, int64(fid))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListWishlist -> %w", err)
	}

	items := make([]domain.WishItem, len(found))
	for i, item := range found {
		items[i] = r.wishlistDaoToDomain(item)
	}

	return items, nil
}

func (r *UserRepository) PullDishFromWishlists(ctx context.Context, dishID string) (int64, error) {
	removed, err := r.dao.PullDishFromWishlists(ctx, dishID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.PullDishFromWishlists -> %w", err)
	}

	return removed, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		Fid:             domain.Fid(u.Fid),
		Username:        u.Username,
		WalletAddress:   u.WalletAddress,
		ReputationScore: u.ReputationScore,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (r *UserRepository) wishlistDaoToDomain(item dao.WishlistItem) domain.WishItem {
	wishItem := domain.WishItem{
		DishID: item.DishID,
	}
	if item.ReferrerFid != nil {
		referrer := domain.Fid(*item.ReferrerFid)
		wishItem.Referrer = &referrer
	}

	return wishItem
}
