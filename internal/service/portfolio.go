package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
)

type PortfolioPositionRepository interface {
	ListPositions(ctx context.Context, fid domain.Fid) ([]domain.Position, error)
	SetQuantity(ctx context.Context, fid domain.Fid, dishID string, quantity int64) error
}

type PortfolioDishRepository interface {
	GetDishByID(ctx context.Context, dishID string) (domain.Dish, error)
	GetDishesByIDs(ctx context.Context, dishIDs []string) (map[string]domain.Dish, error)
	CountDishesByCreator(ctx context.Context, creator domain.Fid) (int64, error)
}

// PortfolioSummary bundles the derived portfolio with the classifier inputs
// it feeds.
type PortfolioSummary struct {
	Portfolio     domain.Portfolio
	DishesBacked  int
	DishesCreated int
}

type PortfolioService struct {
	positions PortfolioPositionRepository
	dishes    PortfolioDishRepository
}

func NewPortfolioService(positions PortfolioPositionRepository, dishes PortfolioDishRepository) *PortfolioService {
	return &PortfolioService{
		positions: positions,
		dishes:    dishes,
	}
}

// ComputePortfolio derives the fid's portfolio from its raw positions and the
// dishes' current state. Return basis is the dish starting price at mint
// time. A position whose dish no longer resolves is excluded from the totals
// instead of failing the whole computation.
func (s *PortfolioService) ComputePortfolio(ctx context.Context, fid domain.Fid) (domain.Portfolio, error) {
	positions, err := s.positions.ListPositions(ctx, fid)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("s.positions.ListPositions -> %w", err)
	}

	dishIDs := make([]string, len(positions))
	for i, position := range positions {
		dishIDs[i] = position.DishID
	}

	dishes, err := s.dishes.GetDishesByIDs(ctx, dishIDs)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("s.dishes.GetDishesByIDs -> %w", err)
	}

	portfolio := domain.Portfolio{
		TotalValue:    decimal.Zero,
		TotalInvested: decimal.Zero,
		TotalReturn:   decimal.Zero,
		Dishes:        make([]domain.Position, 0, len(positions)),
	}

	for _, position := range positions {
		dish, ok := dishes[position.DishID]
		if !ok {
			// Deleted or unreachable dish: skip it, keep the rest.
			continue
		}

		quantity := decimal.NewFromInt(position.Quantity)
		value := quantity.Mul(dish.CurrentPrice)
		invested := quantity.Mul(dish.StartingPrice)

		position.Return = value.Sub(invested)
		portfolio.TotalValue = portfolio.TotalValue.Add(value)
		portfolio.TotalInvested = portfolio.TotalInvested.Add(invested)
		portfolio.Dishes = append(portfolio.Dishes, position)
	}

	portfolio.TotalReturn = portfolio.TotalValue.Sub(portfolio.TotalInvested)

	return portfolio, nil
}

// Summarize computes the portfolio together with the activity counts the
// tier classifier needs.
func (s *PortfolioService) Summarize(ctx context.Context, fid domain.Fid) (PortfolioSummary, error) {
	portfolio, err := s.ComputePortfolio(ctx, fid)
	if err != nil {
		return PortfolioSummary{}, fmt.Errorf("s.ComputePortfolio -> %w", err)
	}

	backed := 0
	for _, position := range portfolio.Dishes {
		if position.Quantity > 0 {
			backed++
		}
	}

	created, err := s.dishes.CountDishesByCreator(ctx, fid)
	if err != nil {
		return PortfolioSummary{}, fmt.Errorf("s.dishes.CountDishesByCreator -> %w", err)
	}

	return PortfolioSummary{
		Portfolio:     portfolio,
		DishesBacked:  backed,
		DishesCreated: int(created),
	}, nil
}

// SetHolding records the fid's current quantity for a dish, creating the
// position on first acquisition and removing it when drained to zero.
func (s *PortfolioService) SetHolding(ctx context.Context, fid domain.Fid, dishID string, quantity int64) error {
	if _, err := s.dishes.GetDishByID(ctx, dishID); err != nil {
		return fmt.Errorf("s.dishes.GetDishByID -> %w", err)
	}

	if err := s.positions.SetQuantity(ctx, fid, dishID, quantity); err != nil {
		return fmt.Errorf("s.positions.SetQuantity -> %w", err)
	}

	return nil
}
