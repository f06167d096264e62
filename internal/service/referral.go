package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
)

// ErrInvalidReferral rejects a self-referral or a referral from a fid that
// holds no position in the dish.
var ErrInvalidReferral = errors.New("invalid referral")

type ReferralRepository interface {
	GetPosition(ctx context.Context, fid domain.Fid, dishID string) (domain.Position, error)
	EnsurePosition(ctx context.Context, fid domain.Fid, dishID string) error
	SetReferredByIfUnset(ctx context.Context, fid domain.Fid, dishID string, referrer domain.Fid) error
	AddDishReferral(ctx context.Context, referrer, referee domain.Fid, dishID string) error
}

// ReferralService is the referral ledger: purely relational bookkeeping, no
// price or supply mutation.
type ReferralService struct {
	repo ReferralRepository
}

func NewReferralService(repo ReferralRepository) *ReferralService {
	return &ReferralService{
		repo: repo,
	}
}

// RecordReferral attributes refereeFid's entry into dishID to referrerFid.
// The referrer must already hold a position in the dish, and cannot refer
// themselves. Recording is idempotent: the referee's referrer is set only if
// currently unset (first write wins), and the referred-to edge is a set.
func (s *ReferralService) RecordReferral(ctx context.Context, referrerFid, refereeFid domain.Fid, dishID string) error {
	if referrerFid == refereeFid {
		return fmt.Errorf("%w: fid %v cannot refer itself", ErrInvalidReferral, referrerFid)
	}

	if _, err := s.repo.GetPosition(ctx, referrerFid, dishID); err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return fmt.Errorf("%w: fid %v holds no position in dish %v", ErrInvalidReferral, referrerFid, dishID)
		}
		return fmt.Errorf("s.repo.GetPosition -> %w", err)
	}

	// The referee may not have bought in yet; attribution still sticks.
	if err := s.repo.EnsurePosition(ctx, refereeFid, dishID); err != nil {
		return fmt.Errorf("s.repo.EnsurePosition -> %w", err)
	}

	if err := s.repo.SetReferredByIfUnset(ctx, refereeFid, dishID, referrerFid); err != nil {
		return fmt.Errorf("s.repo.SetReferredByIfUnset -> %w", err)
	}

	if err := s.repo.AddDishReferral(ctx, referrerFid, refereeFid, dishID); err != nil {
		return fmt.Errorf("s.repo.AddDishReferral -> %w", err)
	}

	return nil
}
