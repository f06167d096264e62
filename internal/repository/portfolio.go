package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository/dao"
)

var (
	ErrPositionNotFound = dao.ErrPositionNotFound
)

type PositionDAO interface {
	FindPosition(ctx context.Context, fid int64, dishID string) (dao.Position, error)
	EnsurePosition(ctx context.Context, fid int64, dishID string) error
	SetQuantity(ctx context.Context, fid int64, dishID string, quantity int64) error
	SetReferredByIfUnset(ctx context.Context, fid int64, dishID string, referrerFid int64) error
	InsertDishReferral(ctx context.Context, referrerFid, refereeFid int64, dishID string) error
	ListPositionsByFid(ctx context.Context, fid int64) ([]dao.Position, error)
	ListReferralsByReferrer(ctx context.Context, referrerFid int64) ([]dao.DishReferral, error)
	PullDishFromPositions(ctx context.Context, dishID string) (int64, error)
}

type PortfolioRepository struct {
	dao PositionDAO
}

func NewPortfolioRepository(dao PositionDAO) *PortfolioRepository {
	return &PortfolioRepository{
		dao: dao,
	}
}

func (r *PortfolioRepository) GetPosition(ctx context.Context, fid domain.Fid, dishID string) (domain.Position, error) {
	found, err := r.dao.FindPosition(ctx, int64(fid), dishID)
	if err != nil {
		return domain.Position{}, fmt.Errorf("r.dao.FindPosition -> %w", err)
	}

	return r.positionDaoToDomain(found), nil
}

func (r *PortfolioRepository) EnsurePosition(ctx context.Context, fid domain.Fid, dishID string) error {
	if err := r.dao.EnsurePosition(ctx, int64(fid), dishID); err != nil {
		return fmt.Errorf("r.dao.EnsurePosition -> %w", err)
	}

	return nil
}

func (r *PortfolioRepository) SetQuantity(ctx context.Context, fid domain.Fid, dishID string, quantity int64) error {
	if err := r.dao.SetQuantity(ctx, int64(fid), dishID, quantity); err != nil {
		return fmt.Errorf("r.dao.SetQuantity -> %w", err)
	}

	return nil
}

func (r *PortfolioRepository) SetReferredByIfUnset(ctx context.Context, fid domain.Fid, dishID string, referrer domain.Fid) error {
	if err := r.dao.SetReferredByIfUnset(ctx, int64(fid), dishID, int64(referrer)); err != nil {
		return fmt.Errorf("r.dao.SetReferredByIfUnset -> %w", err)
	}

	return nil
}

func (r *PortfolioRepository) AddDishReferral(ctx context.Context, referrer, referee domain.Fid, dishID string) error {
	if err := r.dao.InsertDishReferral(ctx, int64(referrer), int64(referee), dishID); err != nil {
		return fmt.Errorf("r.dao.InsertDishReferral -> %w", err)
	}

	return nil
}

// ListPositions returns the fid's positions with their ReferredTo sets
// populated from the referral edges the fid originated.
func (r *PortfolioRepository) ListPositions(ctx context.Context, fid domain.Fid) ([]domain.Position, error) {
	found, err := r.dao.ListPositionsByFid(ctx, int64(fid))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPositionsByFid -> %w", err)
	}

	referrals, err := r.dao.ListReferralsByReferrer(ctx, int64(fid))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListReferralsByReferrer -> %w", err)
	}

	referredTo := make(map[string][]domain.Fid)
	for _, referral := range referrals {
		referredTo[referral.DishID] = append(referredTo[referral.DishID], domain.Fid(referral.RefereeFid))
	}

	positions := make([]domain.Position, len(found))
	for i, position := range found {
		positions[i] = r.positionDaoToDomain(position)
		positions[i].ReferredTo = referredTo[position.DishID]
	}

	return positions, nil
}

func (r *PortfolioRepository) PullDishFromPositions(ctx context.Context, dishID string) (int64, error) {
	removed, err := r.dao.PullDishFromPositions(ctx, dishID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.PullDishFromPositions -> %w", err)
	}

	return removed, nil
}

func (r *PortfolioRepository) positionDaoToDomain(position dao.Position) domain.Position {
	domainPosition := domain.Position{
		DishID:   position.DishID,
		Quantity: position.Quantity,
		Return:   decimal.Zero,
	}
	if position.ReferredBy != nil {
		referredBy := domain.Fid(*position.ReferredBy)
		domainPosition.ReferredBy = &referredBy
	}

	return domainPosition
}
