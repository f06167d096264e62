package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRestaurantExists   = errors.New("restaurant already exists")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDishExists         = errors.New("dish already exists")
	ErrDishNotFound       = errors.New("dish not found")
)

type Restaurant struct {
	ID string `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Latitude    float64
	Longitude   float64
	Rating      float64
	ImageURL    string
	Description string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Dish struct {
	DishID string `gorm:"primaryKey"`

	Name         string `gorm:"not null"`
	CreatorFid   int64  `gorm:"not null;index"`
	RestaurantID string `gorm:"not null;index"`
	ImageURL     string

	StartingPrice decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CurrentPrice  decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CurrentSupply int64           `gorm:"not null;default:0"`
	TotalHolders  int64           `gorm:"not null;default:0"`
	DailyVolume   decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	MarketCap     decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// DishDAO persists the restaurant and dish registry.
type DishDAO struct {
	db *gorm.DB
}

func NewDishDAO(db *gorm.DB) *DishDAO {
	return &DishDAO{
		db: db,
	}
}

func (d *DishDAO) InsertRestaurant(ctx context.Context, restaurant Restaurant) (Restaurant, error) {
	result := d.db.WithContext(ctx).Create(&restaurant)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Restaurant{}, ErrRestaurantExists
		}
		return Restaurant{}, result.Error
	}

	return restaurant, nil
}

func (d *DishDAO) FindRestaurantByID(ctx context.Context, id string) (Restaurant, error) {
	var restaurant Restaurant

	result := d.db.WithContext(ctx).Where("id = ?", id).First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Restaurant{}, ErrRestaurantNotFound
		}
		return Restaurant{}, result.Error
	}

	return restaurant, nil
}

func (d *DishDAO) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Restaurant{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (d *DishDAO) InsertDish(ctx context.Context, dish Dish) (Dish, error) {
	result := d.db.WithContext(ctx).Create(&dish)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Dish{}, ErrDishExists
		}
		return Dish{}, result.Error
	}

	return dish, nil
}

func (d *DishDAO) FindDishByID(ctx context.Context, dishID string) (Dish, error) {
	var dish Dish

	result := d.db.WithContext(ctx).Where("dish_id = ?", dishID).First(&dish)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Dish{}, ErrDishNotFound
		}
		return Dish{}, result.Error
	}

	return dish, nil
}

func (d *DishDAO) FindDishesByIDs(ctx context.Context, dishIDs []string) ([]Dish, error) {
	var dishes []Dish

	result := d.db.WithContext(ctx).Where("dish_id IN ?", dishIDs).Find(&dishes)
	if result.Error != nil {
		return nil, result.Error
	}

	return dishes, nil
}

func (d *DishDAO) FindDishesByCreator(ctx context.Context, creatorFid int64) ([]Dish, error) {
	var dishes []Dish

	result := d.db.WithContext(ctx).
		Where("creator_fid = ?", creatorFid).
		Order("created_at desc").
		Find(&dishes)
	if result.Error != nil {
		return nil, result.Error
	}

	return dishes, nil
}

// FindDishesByRestaurant returns a restaurant's dishes, newest first.
func (d *DishDAO) FindDishesByRestaurant(ctx context.Context, restaurantID string) ([]Dish, error) {
	var dishes []Dish

	result := d.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&dishes)
	if result.Error != nil {
		return nil, result.Error
	}

	return dishes, nil
}

func (d *DishDAO) ListDishIDsByRestaurant(ctx context.Context, restaurantID string) ([]string, error) {
	var dishIDs []string

	result := d.db.WithContext(ctx).
		Model(&Dish{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("dish_id", &dishIDs)
	if result.Error != nil {
		return nil, result.Error
	}

	return dishIDs, nil
}

func (d *DishDAO) CountDishesByCreator(ctx context.Context, creatorFid int64) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Dish{}).
		Where("creator_fid = ?", creatorFid).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *DishDAO) DeleteDish(ctx context.Context, dishID string) (int64, error) {
	result := d.db.WithContext(ctx).Where("dish_id = ?", dishID).Delete(&Dish{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (d *DishDAO) UpdateTotalHolders(ctx context.Context, dishID string, totalHolders int64) error {
	result := d.db.WithContext(ctx).
		Model(&Dish{}).
		Where("dish_id = ?", dishID).
		Update("total_holders", totalHolders)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDishNotFound
	}

	return nil
}
