package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
)

var (
	ErrRestaurantExists   = repository.ErrRestaurantExists
	ErrRestaurantNotFound = repository.ErrRestaurantNotFound

	// ErrPartialCascade marks a restaurant deletion that stopped mid-purge.
	// The caller must not treat the cascade as done; re-running it converges
	// because every purge step is a delete-where that re-checks state.
	ErrPartialCascade = errors.New("cascade deletion did not complete")
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	GetRestaurantByID(ctx context.Context, id string) (domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) (int64, error)
	ListDishIDsByRestaurant(ctx context.Context, restaurantID string) ([]string, error)
	DeleteDish(ctx context.Context, dishID string) (int64, error)
}

type CascadeUserRepository interface {
	PullDishFromWishlists(ctx context.Context, dishID string) (int64, error)
}

type CascadePortfolioRepository interface {
	PullDishFromPositions(ctx context.Context, dishID string) (int64, error)
}

type RestaurantService struct {
	repo          RestaurantRepository
	userRepo      CascadeUserRepository
	portfolioRepo CascadePortfolioRepository
}

func NewRestaurantService(repo RestaurantRepository, userRepo CascadeUserRepository, portfolioRepo CascadePortfolioRepository) *RestaurantService {
	return &RestaurantService{
		repo:          repo,
		userRepo:      userRepo,
		portfolioRepo: portfolioRepo,
	}
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	created, err := s.repo.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.CreateRestaurant -> %w", err)
	}

	return created, nil
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	restaurant, err := s.repo.GetRestaurantByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.GetRestaurantByID -> %w", err)
	}

	return restaurant, nil
}

// DeleteRestaurant removes the restaurant, every dish it owns, and every
// reference to those dishes in wishlists and portfolios. The store offers no
// cross-collection transaction, so consistency comes from ordering: for each
// dish, both reference pulls complete before the dish record is deleted, and
// the restaurant record is deleted only after every dish is purged. If the
// restaurant does not exist nothing is touched.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id string) (domain.CascadeReport, error) {
	report := domain.CascadeReport{}

	if _, err := s.repo.GetRestaurantByID(ctx, id); err != nil {
		return report, fmt.Errorf("s.repo.GetRestaurantByID -> %w", err)
	}

	dishIDs, err := s.repo.ListDishIDsByRestaurant(ctx, id)
	if err != nil {
		return report, fmt.Errorf("s.repo.ListDishIDsByRestaurant -> %w", err)
	}

	for _, dishID := range dishIDs {
		wishlistRemoved, err := s.userRepo.PullDishFromWishlists(ctx, dishID)
		if err != nil {
			return report, fmt.Errorf("%w: purge wishlists for dish %v -> %w", ErrPartialCascade, dishID, err)
		}
		report.WishlistRefsRemoved += wishlistRemoved

		portfolioRemoved, err := s.portfolioRepo.PullDishFromPositions(ctx, dishID)
		if err != nil {
			return report, fmt.Errorf("%w: purge portfolios for dish %v -> %w", ErrPartialCascade, dishID, err)
		}
		report.PortfolioRefsRemoved += portfolioRemoved

		deleted, err := s.repo.DeleteDish(ctx, dishID)
		if err != nil {
			return report, fmt.Errorf("%w: delete dish %v -> %w", ErrPartialCascade, dishID, err)
		}
		report.DishesDeleted += deleted
	}

	deleted, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return report, fmt.Errorf("%w: delete restaurant %v -> %w", ErrPartialCascade, id, err)
	}
	report.RestaurantsDeleted = deleted

	return report, nil
}
