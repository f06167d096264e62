package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugdha2626/dishfolio-api/internal/domain"
	"github.com/mugdha2626/dishfolio-api/internal/pkg/refcode"
	"github.com/mugdha2626/dishfolio-api/internal/repository"
)

type fakeUserRepo struct {
	users    map[domain.Fid]domain.User
	badges   map[domain.Fid][]string
	wishlist map[domain.Fid][]domain.WishItem
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[domain.Fid]domain.User),
		badges:   make(map[domain.Fid][]string),
		wishlist: make(map[domain.Fid][]domain.WishItem),
	}
}

func (r *fakeUserRepo) Upsert(_ context.Context, user domain.User) (domain.User, bool, error) {
	_, existed := r.users[user.Fid]
	r.users[user.Fid] = user
	return user, !existed, nil
}

func (r *fakeUserRepo) FindByFid(_ context.Context, fid domain.Fid) (domain.User, error) {
	user, ok := r.users[fid]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) UpdateReputation(_ context.Context, fid domain.Fid, score int) error {
	user, ok := r.users[fid]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.ReputationScore = score
	r.users[fid] = user
	return nil
}

func (r *fakeUserRepo) AddBadge(_ context.Context, fid domain.Fid, badge string) error {
	for _, existing := range r.badges[fid] {
		if existing == badge {
			return nil
		}
	}

	r.badges[fid] = append(r.badges[fid], badge)
	return nil
}

func (r *fakeUserRepo) ListBadges(_ context.Context, fid domain.Fid) ([]string, error) {
	return r.badges[fid], nil
}

func (r *fakeUserRepo) AddWishlistItem(_ context.Context, fid domain.Fid, item domain.WishItem) error {
	for _, existing := range r.wishlist[fid] {
		if existing.DishID == item.DishID {
			return nil
		}
	}

	r.wishlist[fid] = append(r.wishlist[fid], item)
	return nil
}

func (r *fakeUserRepo) RemoveWishlistItem(_ context.Context, fid domain.Fid, dishID string) error {
	items := r.wishlist[fid]
	for i, existing := range items {
		if existing.DishID == dishID {
			r.wishlist[fid] = append(items[:i], items[i+1:]...)
			return nil
		}
	}

	return nil
}

func (r *fakeUserRepo) ListWishlist(_ context.Context, fid domain.Fid) ([]domain.WishItem, error) {
	return r.wishlist[fid], nil
}

type fakeCodeStore struct {
	values map[string]string
}

func (s *fakeCodeStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", refcode.ErrCodeNotStored
	}

	return value, nil
}

func (s *fakeCodeStore) SetIfAbsent(_ context.Context, key, value string) error {
	if _, ok := s.values[key]; !ok {
		s.values[key] = value
	}

	return nil
}

func newUserServiceForTest(repo *fakeUserRepo, dishes *fakeDishLookupRepo) *UserService {
	resolver := refcode.NewResolver(&fakeCodeStore{values: make(map[string]string)})
	return NewUserService(repo, dishes, resolver)
}

func TestUserService_SyncUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserServiceForTest(repo, &fakeDishLookupRepo{})

	user := domain.User{Fid: 7, Username: "mugdha"}

	synced, created, code, err := svc.SyncUser(context.Background(), user, "ref-abc")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ref-abc", code)
	assert.Equal(t, domain.Fid(7), synced.Fid)

	// Second sync without the URL code: not created, stored code returned.
	_, created, code, err = svc.SyncUser(context.Background(), user, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "ref-abc", code)
}

func TestUserService_GetUser_AttachesBadgesAndWishlist(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[7] = domain.User{Fid: 7, Username: "mugdha"}
	repo.badges[7] = []string{"early-adopter"}
	repo.wishlist[7] = []domain.WishItem{{DishID: "dish-a"}}

	svc := newUserServiceForTest(repo, &fakeDishLookupRepo{})

	user, err := svc.GetUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"early-adopter"}, user.Badges)
	require.Len(t, user.WishList, 1)
	assert.Equal(t, "dish-a", user.WishList[0].DishID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := newUserServiceForTest(newFakeUserRepo(), &fakeDishLookupRepo{})

	_, err := svc.GetUser(context.Background(), 404)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_AddToWishlist(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[7] = domain.User{Fid: 7}
	dishes := &fakeDishLookupRepo{
		dishes: map[string]domain.Dish{"dish-a": {DishID: "dish-a"}},
	}

	svc := newUserServiceForTest(repo, dishes)

	referrer := domain.Fid(3)
	err := svc.AddToWishlist(context.Background(), 7, domain.WishItem{DishID: "dish-a", Referrer: &referrer})

	require.NoError(t, err)
	require.Len(t, repo.wishlist[7], 1)
	require.NotNil(t, repo.wishlist[7][0].Referrer)
	assert.Equal(t, domain.Fid(3), *repo.wishlist[7][0].Referrer)
}

func TestUserService_AddToWishlist_DishMustExist(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[7] = domain.User{Fid: 7}

	svc := newUserServiceForTest(repo, &fakeDishLookupRepo{dishes: map[string]domain.Dish{}})

	err := svc.AddToWishlist(context.Background(), 7, domain.WishItem{DishID: "missing"})

	assert.ErrorIs(t, err, ErrDishNotFound)
	assert.Empty(t, repo.wishlist[7])
}

func TestUserService_AwardBadge_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users[7] = domain.User{Fid: 7}

	svc := newUserServiceForTest(repo, &fakeDishLookupRepo{})

	require.NoError(t, svc.AwardBadge(context.Background(), 7, "tastemaker"))
	require.NoError(t, svc.AwardBadge(context.Background(), 7, "tastemaker"))

	assert.Equal(t, []string{"tastemaker"}, repo.badges[7])
}
