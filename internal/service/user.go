package service

import (
	"context"
	"fmt"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/pkg/refcode"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	Upsert(ctx context.Context, user domain.User) (domain.User, bool, error)
	FindByFid(ctx context.Context, fid domain.Fid) (domain.User, error)
	UpdateReputation(ctx context.Context, fid domain.Fid, score int) error
	AddBadge(ctx context.Context, fid domain.Fid, badge string) error
	ListBadges(ctx context.Context, fid domain.Fid) ([]string, error)
	AddWishlistItem(ctx context.Context, fid domain.Fid, item domain.WishItem) error
	RemoveWishlistItem(ctx context.Context, fid domain.Fid, dishID string) error
	ListWishlist(ctx context.Context, fid domain.Fid) ([]domain.WishItem, error)
}

type WishlistDishRepository interface {
	GetDishByID(ctx context.Context, dishID string) (domain.Dish, error)
}

type UserService struct {
	repo     UserRepository
	dishRepo WishlistDishRepository
	resolver *refcode.Resolver
}

func NewUserService(repo UserRepository, dishRepo WishlistDishRepository, resolver *refcode.Resolver) *UserService {
	return &UserService{
		repo:     repo,
		dishRepo: dishRepo,
		resolver: resolver,
	}
}

// SyncUser upserts the user by fid and resolves the referral code the client
// arrived with (URL code wins over a stored one; the first observed code is
// persisted). Returns the user, whether it was newly created, and the
// effective referral code.
func (s *UserService) SyncUser(ctx context.Context, user domain.User, urlRefCode string) (domain.User, bool, string, error) {
	synced, created, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return domain.User{}, false, "", fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	code, err := s.resolver.Resolve(ctx, synced.Fid, urlRefCode)
	if err != nil {
		return domain.User{}, false, "", fmt.Errorf("s.resolver.Resolve -> %w", err)
	}

	return synced, created, code, nil
}

// GetUser returns the user with badges and wishlist attached.
func (s *UserService) GetUser(ctx context.Context, fid domain.Fid) (domain.User, error) {
	user, err := s.repo.FindByFid(ctx, fid)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByFid -> %w", err)
	}

	user.Badges, err = s.repo.ListBadges(ctx, fid)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.ListBadges -> %w", err)
	}

	user.WishList, err = s.repo.ListWishlist(ctx, fid)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.ListWishlist -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateReputation(ctx context.Context, fid domain.Fid, score int) error {
	if err := s.repo.UpdateReputation(ctx, fid, score); err != nil {
		return fmt.Errorf("s.repo.UpdateReputation -> %w", err)
	}

	return nil
}

func (s *UserService) AwardBadge(ctx context.Context, fid domain.Fid, badge string) error {
	if _, err := s.repo.FindByFid(ctx, fid); err != nil {
		return fmt.Errorf("s.repo.FindByFid -> %w", err)
	}

	if err := s.repo.AddBadge(ctx, fid, badge); err != nil {
		return fmt.Errorf("s.repo.AddBadge -> %w", err)
	}

	return nil
}

// AddToWishlist bookmarks an existing dish for the user, keeping the
// referrer that introduced it when one is given.
func (s *UserService) AddToWishlist(ctx context.Context, fid domain.Fid, item domain.WishItem) error {
	if _, err := s.repo.FindByFid(ctx, fid); err != nil {
		return fmt.Errorf("s.repo.FindByFid -> %w", err)
	}

	if _, err := s.dishRepo.GetDishByID(ctx, item.DishID); err != nil {
		return fmt.Errorf("s.dishRepo.GetDishByID -> %w", err)
	}

	if err := s.repo.AddWishlistItem(ctx, fid, item); err != nil {
		return fmt.Errorf("s.repo.AddWishlistItem -> %w", err)
	}

	return nil
}

func (s *UserService) RemoveFromWishlist(ctx context.Context, fid domain.Fid, dishID string) error {
	if err := s.repo.RemoveWishlistItem(ctx, fid, dishID); err != nil {
		return fmt.Errorf("s.repo.RemoveWishlistItem -> %w", err)
	}

	return nil
}
