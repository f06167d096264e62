// Package refcode resolves and persists the referral code a client arrived
// with. Precedence is fixed: a URL-carried code always wins over a previously
// stored one; the stored value is only a fallback, and only the first
// observed code is ever written (first write wins).
package refcode

import (
	"context"
	"errors"
	"fmt"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
)

// ErrCodeNotStored is returned by a Store when no code has been persisted
// for the key.
var ErrCodeNotStored = errors.New("refcode: no stored code")

// Store is the durable key-value persistence behind the resolver. SetIfAbsent
// must be a no-op when a value already exists.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetIfAbsent(ctx context.Context, key, value string) error
}

type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

func storeKey(fid domain.Fid) string {
	return "refcode:" + fid.String()
}

// Resolve returns the effective referral code for the fid: the URL code when
// present, otherwise the stored one, otherwise empty. A URL code is durably
// recorded on first observation so later visits without the query parameter
// keep their attribution.
func (r *Resolver) Resolve(ctx context.Context, fid domain.Fid, urlCode string) (string, error) {
	if urlCode != "" {
		if err := r.store.SetIfAbsent(ctx, storeKey(fid), urlCode); err != nil {
			return "", fmt.Errorf("r.store.SetIfAbsent -> %w", err)
		}
		return urlCode, nil
	}

	stored, err := r.store.Get(ctx, storeKey(fid))
	if err != nil {
		if errors.Is(err, ErrCodeNotStored) {
			return "", nil
		}
		return "", fmt.Errorf("r.store.Get -> %w", err)
	}

	return stored, nil
}
