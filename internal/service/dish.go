package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mugdha2626/dishfolio-api/internal/chain"
	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
)

var (
	ErrDishExists       = repository.ErrDishExists
	ErrDishNotFound     = repository.ErrDishNotFound
	ErrChainUnavailable = chain.ErrChainUnavailable
)

type DishRepository interface {
	GetRestaurantByID(ctx context.Context, id string) (domain.Restaurant, error)
	CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error)
	GetDishByID(ctx context.Context, dishID string) (domain.Dish, error)
	GetDishesByCreator(ctx context.Context, creator domain.Fid) ([]domain.Dish, error)
	GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	UpdateTotalHolders(ctx context.Context, dishID string, totalHolders int64) error
}

type DishPositionRepository interface {
	SetQuantity(ctx context.Context, fid domain.Fid, dishID string, quantity int64) error
}

type DishService struct {
	repo      DishRepository
	positions DishPositionRepository
	chain     chain.HolderCounter
}

func NewDishService(repo DishRepository, positions DishPositionRepository, chain chain.HolderCounter) *DishService {
	return &DishService{
		repo:      repo,
		positions: positions,
		chain:     chain,
	}
}

// CreateDish mints a dish under an existing restaurant. The dish id is
// generated when the caller does not supply one, the current price starts at
// the starting price, and the creator receives the initial position.
func (s *DishService) CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	if _, err := s.repo.GetRestaurantByID(ctx, dish.RestaurantID); err != nil {
		return domain.Dish{}, fmt.Errorf("s.repo.GetRestaurantByID -> %w", err)
	}

	if dish.DishID == "" {
		dish.DishID = uuid.NewString()
	}
	if dish.CurrentPrice.IsZero() {
		dish.CurrentPrice = dish.StartingPrice
	}
	if dish.CurrentSupply == 0 {
		dish.CurrentSupply = 1
	}

	created, err := s.repo.CreateDish(ctx, dish)
	if err != nil {
		return domain.Dish{}, fmt.Errorf("s.repo.CreateDish -> %w", err)
	}

	if err := s.positions.SetQuantity(ctx, created.Creator, created.DishID, created.CurrentSupply); err != nil {
		return domain.Dish{}, fmt.Errorf("s.positions.SetQuantity -> %w", err)
	}

	return created, nil
}

func (s *DishService) GetDish(ctx context.Context, dishID string) (domain.Dish, error) {
	dish, err := s.repo.GetDishByID(ctx, dishID)
	if err != nil {
		return domain.Dish{}, fmt.Errorf("s.repo.GetDishByID -> %w", err)
	}

	return dish, nil
}

func (s *DishService) GetDishesByCreator(ctx context.Context, creator domain.Fid) ([]domain.Dish, error) {
	dishes, err := s.repo.GetDishesByCreator(ctx, creator)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetDishesByCreator -> %w", err)
	}

	return dishes, nil
}

func (s *DishService) GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	if _, err := s.repo.GetRestaurantByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("s.repo.GetRestaurantByID -> %w", err)
	}

	dishes, err := s.repo.GetDishesByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetDishesByRestaurant -> %w", err)
	}

	return dishes, nil
}

// RefreshHolders reads the holder count from the token contract and writes
// it through to the dish record.
func (s *DishService) RefreshHolders(ctx context.Context, dishID string) (domain.Dish, error) {
	dish, err := s.repo.GetDishByID(ctx, dishID)
	if err != nil {
		return domain.Dish{}, fmt.Errorf("s.repo.GetDishByID -> %w", err)
	}

	holders, err := s.chain.HolderCount(ctx, chain.DishKey(dishID))
	if err != nil {
		return domain.Dish{}, fmt.Errorf("s.chain.HolderCount -> %w", err)
	}

	if err := s.repo.UpdateTotalHolders(ctx, dishID, holders); err != nil {
		return domain.Dish{}, fmt.Errorf("s.repo.UpdateTotalHolders -> %w", err)
	}

	dish.TotalHolders = holders
	return dish, nil
}
