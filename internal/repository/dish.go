package repository

import (
	"context"
	"fmt"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository/dao"
)

var (
	ErrRestaurantExists   = dao.ErrRestaurantExists
	ErrRestaurantNotFound = dao.ErrRestaurantNotFound
	ErrDishExists         = dao.ErrDishExists
	ErrDishNotFound       = dao.ErrDishNotFound
)

type DishDAO interface {
	InsertRestaurant(ctx context.Context, restaurant dao.Restaurant) (dao.Restaurant, error)
	FindRestaurantByID(ctx context.Context, id string) (dao.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) (int64, error)
	InsertDish(ctx context.Context, dish dao.Dish) (dao.Dish, error)
	FindDishByID(ctx context.Context, dishID string) (dao.Dish, error)
	FindDishesByIDs(ctx context.Context, dishIDs []string) ([]dao.Dish, error)
	FindDishesByCreator(ctx context.Context, creatorFid int64) ([]dao.Dish, error)
	FindDishesByRestaurant(ctx context.Context, restaurantID string) ([]dao.Dish, error)
	ListDishIDsByRestaurant(ctx context.Context, restaurantID string) ([]string, error)
	CountDishesByCreator(ctx context.Context, creatorFid int64) (int64, error)
	DeleteDish(ctx context.Context, dishID string) (int64, error)
	UpdateTotalHolders(ctx context.Context, dishID string, totalHolders int64) error
}

type DishRepository struct {
	dao DishDAO
}

func NewDishRepository(dao DishDAO) *DishRepository {
	return &DishRepository{
		dao: dao,
	}
}

func (r *DishRepository) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	created, err := r.dao.InsertRestaurant(ctx, r.restaurantDomainToDao(restaurant))
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("r.dao.InsertRestaurant -> %w", err)
	}

	return r.restaurantDaoToDomain(created), nil
}

func (r *DishRepository) GetRestaurantByID(ctx context.Context, id string) (domain.Restaurant, error) {
	found, err := r.dao.FindRestaurantByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("r.dao.FindRestaurantByID -> %w", err)
	}

	return r.restaurantDaoToDomain(found), nil
}

func (r *DishRepository) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	deleted, err := r.dao.DeleteRestaurant(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeleteRestaurant -> %w", err)
	}

	return deleted, nil
}

func (r *DishRepository) CreateDish(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	created, err := r.dao.InsertDish(ctx, r.dishDomainToDao(dish))
	if err != nil {
		return domain.Dish{}, fmt.Errorf("r.dao.InsertDish -> %w", err)
	}

	return r.dishDaoToDomain(created), nil
}

func (r *DishRepository) GetDishByID(ctx context.Context, dishID string) (domain.Dish, error) {
	found, err := r.dao.FindDishByID(ctx, dishID)
	if err != nil {
		return domain.Dish{}, fmt.Errorf("r.dao.FindDishByID -> %w", err)
	}

	return r.dishDaoToDomain(found), nil
}

// GetDishesByIDs returns the dishes that currently exist, keyed by dish id.
// Missing ids are simply absent from the map.
func (r *DishRepository) GetDishesByIDs(ctx context.Context, dishIDs []string) (map[string]domain.Dish, error) {
	if len(dishIDs) == 0 {
		return map[string]domain.Dish{}, nil
	}

	found, err := r.dao.FindDishesByIDs(ctx, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindDishesByIDs -> %w", err)
	}

	dishes := make(map[string]domain.Dish, len(found))
	for _, dish := range found {
		dishes[dish.DishID] = r.dishDaoToDomain(dish)
	}

	return dishes, nil
}

func (r *DishRepository) GetDishesByCreator(ctx context.Context, creator domain.Fid) ([]domain.Dish, error) {
	found, err := r.dao.FindDishesByCreator(ctx, int64(creator))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindDishesByCreator -> %w", err)
	}

	return r.dishesDaoToDomain(found), nil
}

func (r *DishRepository) GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	found, err := r.dao.FindDishesByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindDishesByRestaurant -> %w", err)
	}

	return r.dishesDaoToDomain(found), nil
}

func (r *DishRepository) ListDishIDsByRestaurant(ctx context.Context, restaurantID string) ([]string, error) {
	dishIDs, err := r.dao.ListDishIDsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDishIDsByRestaurant -> %w", err)
	}

	return dishIDs, nil
}

func (r *DishRepository) CountDishesByCreator(ctx context.Context, creator domain.Fid) (int64, error) {
	count, err := r.dao.CountDishesByCreator(ctx, int64(creator))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountDishesByCreator -> %w", err)
	}

	return count, nil
}

func (r *DishRepository) DeleteDish(ctx context.Context, dishID string) (int64, error) {
	deleted, err := r.dao.DeleteDish(ctx, dishID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeleteDish -> %w", err)
	}

	return deleted, nil
}

func (r *DishRepository) UpdateTotalHolders(ctx context.Context, dishID string, totalHolders int64) error {
	if err := r.dao.UpdateTotalHolders(ctx, dishID, totalHolders); err != nil {
		return fmt.Errorf("r.dao.UpdateTotalHolders -> %w", err)
	}

	return nil
}

func (r *DishRepository) restaurantDomainToDao(restaurant domain.Restaurant) dao.Restaurant {
	return dao.Restaurant{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Latitude:    restaurant.Latitude,
		Longitude:   restaurant.Longitude,
		Rating:      restaurant.Rating,
		ImageURL:    restaurant.ImageURL,
		Description: restaurant.Description,
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}

func (r *DishRepository) restaurantDaoToDomain(restaurant dao.Restaurant) domain.Restaurant {
	return domain.Restaurant{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Latitude:    restaurant.Latitude,
		Longitude:   restaurant.Longitude,
		Rating:      restaurant.Rating,
		ImageURL:    restaurant.ImageURL,
		Description: restaurant.Description,
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}

func (r *DishRepository) dishDomainToDao(dish domain.Dish) dao.Dish {
	return dao.Dish{
		DishID:        dish.DishID,
		Name:          dish.Name,
		CreatorFid:    int64(dish.Creator),
		RestaurantID:  dish.RestaurantID,
		ImageURL:      dish.ImageURL,
		StartingPrice: dish.StartingPrice,
		CurrentPrice:  dish.CurrentPrice,
		CurrentSupply: dish.CurrentSupply,
		TotalHolders:  dish.TotalHolders,
		DailyVolume:   dish.DailyVolume,
		MarketCap:     dish.MarketCap,
		CreatedAt:     dish.CreatedAt,
		UpdatedAt:     dish.UpdatedAt,
	}
}

func (r *DishRepository) dishDaoToDomain(dish dao.Dish) domain.Dish {
	return domain.Dish{
		DishID:        dish.DishID,
		Name:          dish.Name,
		Creator:       domain.Fid(dish.CreatorFid),
		RestaurantID:  dish.RestaurantID,
		ImageURL:      dish.ImageURL,
		StartingPrice: dish.StartingPrice,
		CurrentPrice:  dish.CurrentPrice,
		CurrentSupply: dish.CurrentSupply,
		TotalHolders:  dish.TotalHolders,
		DailyVolume:   dish.DailyVolume,
		MarketCap:     dish.MarketCap,
		CreatedAt:     dish.CreatedAt,
		UpdatedAt:     dish.UpdatedAt,
	}
}

func (r *DishRepository) dishesDaoToDomain(found []dao.Dish) []domain.Dish {
	dishes := make([]domain.Dish, len(found))
	for i, dish := range found {
		dishes[i] = r.dishDaoToDomain(dish)
	}

	return dishes
}
