package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
)

type fakePositionRepo struct {
	positions map[domain.Fid][]domain.Position
	setCalls  []string
}

func (r *fakePositionRepo) ListPositions(_ context.Context, fid domain.Fid) ([]domain.Position, error) {
	return r.positions[fid], nil
}

func (r *fakePositionRepo) SetQuantity(_ context.Context, fid domain.Fid, dishID string, quantity int64) error {
	r.setCalls = append(r.setCalls, dishID)
	return nil
}

type fakeDishLookupRepo struct {
	dishes  map[string]domain.Dish
	created map[domain.Fid]int64
}

func (r *fakeDishLookupRepo) GetDishByID(_ context.Context, dishID string) (domain.Dish, error) {
	dish, ok := r.dishes[dishID]
	if !ok {
		return domain.Dish{}, repository.ErrDishNotFound
	}

	return dish, nil
}

func (r *fakeDishLookupRepo) GetDishesByIDs(_ context.Context, dishIDs []string) (map[string]domain.Dish, error) {
	found := make(map[string]domain.Dish)
	for _, id := range dishIDs {
		if dish, ok := r.dishes[id]; ok {
			found[id] = dish
		}
	}

	return found, nil
}

func (r *fakeDishLookupRepo) CountDishesByCreator(_ context.Context, creator domain.Fid) (int64, error) {
	return r.created[creator], nil
}

func testDish(id string, startingPrice, currentPrice int64) domain.Dish {
	return domain.Dish{
		DishID:        id,
		StartingPrice: decimal.NewFromInt(startingPrice),
		CurrentPrice:  decimal.NewFromInt(currentPrice),
	}
}

func TestPortfolioService_ComputePortfolio(t *testing.T) {
	positions := &fakePositionRepo{
		positions: map[domain.Fid][]domain.Position{
			7: {
				{DishID: "dish-a", Quantity: 2},
				{DishID: "dish-b", Quantity: 10},
			},
		},
	}
	dishes := &fakeDishLookupRepo{
		dishes: map[string]domain.Dish{
			"dish-a": testDish("dish-a", 100, 150),
			"dish-b": testDish("dish-b", 10, 8),
		},
	}

	svc := NewPortfolioService(positions, dishes)

	portfolio, err := svc.ComputePortfolio(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, portfolio.Dishes, 2)

	// dish-a: 2 * 150 = 300 value, 2 * 100 = 200 invested.
	// dish-b: 10 * 8 = 80 value, 10 * 10 = 100 invested.
	assert.True(t, portfolio.TotalValue.Equal(decimal.NewFromInt(380)), portfolio.TotalValue.String())
	assert.True(t, portfolio.TotalInvested.Equal(decimal.NewFromInt(300)), portfolio.TotalInvested.String())
	assert.True(t, portfolio.TotalReturn.Equal(decimal.NewFromInt(80)), portfolio.TotalReturn.String())

	assert.True(t, portfolio.Dishes[0].Return.Equal(decimal.NewFromInt(100)))
	assert.True(t, portfolio.Dishes[1].Return.Equal(decimal.NewFromInt(-20)))
}

func TestPortfolioService_ComputePortfolio_SkipsMissingDishes(t *testing.T) {
	positions := &fakePositionRepo{
		positions: map[domain.Fid][]domain.Position{
			7: {
				{DishID: "dish-a", Quantity: 2},
				{DishID: "gone", Quantity: 100},
			},
		},
	}
	dishes := &fakeDishLookupRepo{
		dishes: map[string]domain.Dish{
			"dish-a": testDish("dish-a", 100, 150),
		},
	}

	svc := NewPortfolioService(positions, dishes)

	portfolio, err := svc.ComputePortfolio(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, portfolio.Dishes, 1)
	assert.Equal(t, "dish-a", portfolio.Dishes[0].DishID)
	assert.True(t, portfolio.TotalValue.Equal(decimal.NewFromInt(300)))
}

func TestPortfolioService_ComputePortfolio_Empty(t *testing.T) {
	svc := NewPortfolioService(
		&fakePositionRepo{positions: map[domain.Fid][]domain.Position{}},
		&fakeDishLookupRepo{dishes: map[string]domain.Dish{}},
	)

	portfolio, err := svc.ComputePortfolio(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, portfolio.Dishes)
	assert.True(t, portfolio.TotalValue.IsZero())
	assert.True(t, portfolio.TotalInvested.IsZero())
	assert.True(t, portfolio.TotalReturn.IsZero())
}

func TestPortfolioService_Summarize(t *testing.T) {
	positions := &fakePositionRepo{
		positions: map[domain.Fid][]domain.Position{
			7: {
				{DishID: "dish-a", Quantity: 2},
				{DishID: "dish-b", Quantity: 0}, // attributed but drained
				{DishID: "dish-c", Quantity: 1},
			},
		},
	}
	dishes := &fakeDishLookupRepo{
		dishes: map[string]domain.Dish{
			"dish-a": testDish("dish-a", 100, 150),
			"dish-b": testDish("dish-b", 10, 8),
			"dish-c": testDish("dish-c", 50, 60),
		},
		created: map[domain.Fid]int64{7: 4},
	}

	svc := NewPortfolioService(positions, dishes)

	summary, err := svc.Summarize(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.DishesBacked, "zero-quantity positions do not count as backed")
	assert.Equal(t, 4, summary.DishesCreated)
}

func TestPortfolioService_SetHolding_DishMustExist(t *testing.T) {
	positions := &fakePositionRepo{}
	dishes := &fakeDishLookupRepo{dishes: map[string]domain.Dish{}}

	svc := NewPortfolioService(positions, dishes)

	err := svc.SetHolding(context.Background(), 7, "gone", 3)

	assert.ErrorIs(t, err, repository.ErrDishNotFound)
	assert.Empty(t, positions.setCalls)
}
