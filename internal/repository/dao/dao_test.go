package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		// No docker available; every test that needs the database skips.
		log.Printf("docker unavailable, skipping database tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=postgres",
		"POSTGRES_PASSWORD=secret",
		"POSTGRES_DB=dishfolio_test",
	})
	if err != nil {
		log.Printf("could not start postgres container: %v", err)
		os.Exit(m.Run())
	}

	dsn := fmt.Sprintf("host=localhost port=%v user=postgres password=secret dbname=dishfolio_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}

		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Printf("could not connect to postgres: %v", err)
		testDB = nil
	}

	if testDB != nil {
		if err = InitTables(testDB); err != nil {
			log.Printf("could not migrate tables: %v", err)
			testDB = nil
		}
	}

	code := m.Run()

	_ = pool.Purge(resource)
	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testDB == nil {
		t.Skip("database not available")
	}

	// Each test starts from clean tables.
	for _, model := range []any{&DishReferral{}, &Position{}, &WishlistItem{}, &UserBadge{}, &Dish{}, &Restaurant{}, &User{}} {
		require.NoError(t, testDB.Where("1 = 1").Delete(model).Error)
	}

	return testDB
}

func TestUserDAO_Upsert(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	user, created, err := d.Upsert(ctx, User{Fid: 7, Username: "mugdha"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "mugdha", user.Username)

	user, created, err = d.Upsert(ctx, User{Fid: 7, Username: "mugdha2", WalletAddress: "0xabc"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "mugdha2", user.Username)
	assert.Equal(t, "0xabc", user.WalletAddress)
}

func TestUserDAO_UpdateReputation_NotFound(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)

	err := d.UpdateReputation(context.Background(), 404, 10)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDAO_AddBadge_Idempotent(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	_, _, err := d.Upsert(ctx, User{Fid: 7, Username: "mugdha"})
	require.NoError(t, err)

	require.NoError(t, d.AddBadge(ctx, 7, "tastemaker"))
	require.NoError(t, d.AddBadge(ctx, 7, "tastemaker"))

	badges, err := d.ListBadges(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestUserDAO_Wishlist(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	referrer := int64(3)
	require.NoError(t, d.AddWishlistItem(ctx, WishlistItem{Fid: 7, DishID: "dish-a", ReferrerFid: &referrer}))

	// Re-adding without a referrer does not clobber the recorded one.
	require.NoError(t, d.AddWishlistItem(ctx, WishlistItem{Fid: 7, DishID: "dish-a"}))

	items, err := d.ListWishlist(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].ReferrerFid)
	assert.Equal(t, int64(3), *items[0].ReferrerFid)

	require.NoError(t, d.RemoveWishlistItem(ctx, 7, "dish-a"))

	items, err = d.ListWishlist(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUserDAO_PullDishFromWishlists(t *testing.T) {
	db := requireDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	require.NoError(t, d.AddWishlistItem(ctx, WishlistItem{Fid: 7, DishID: "dish-a"}))
	require.NoError(t, d.AddWishlistItem(ctx, WishlistItem{Fid: 8, DishID: "dish-a"}))
	require.NoError(t, d.AddWishlistItem(ctx, WishlistItem{Fid: 7, DishID: "dish-b"}))

	removed, err := d.PullDishFromWishlists(ctx, "dish-a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	items, err := d.ListWishlist(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "dish-b", items[0].DishID)
}

func TestPositionDAO_SetReferredByIfUnset_FirstWriteWins(t *testing.T) {
	db := requireDB(t)
	d := NewPositionDAO(db)
	ctx := context.Background()

	require.NoError(t, d.EnsurePosition(ctx, 2, "dish-a"))

	require.NoError(t, d.SetReferredByIfUnset(ctx, 2, "dish-a", 1))
	require.NoError(t, d.SetReferredByIfUnset(ctx, 2, "dish-a", 9))

	position, err := d.FindPosition(ctx, 2, "dish-a")
	require.NoError(t, err)
	require.NotNil(t, position.ReferredBy)
	assert.Equal(t, int64(1), *position.ReferredBy)
}

func TestPositionDAO_SetQuantity(t *testing.T) {
	db := requireDB(t)
	d := NewPositionDAO(db)
	ctx := context.Background()

	require.NoError(t, d.SetQuantity(ctx, 7, "dish-a", 5))

	position, err := d.FindPosition(ctx, 7, "dish-a")
	require.NoError(t, err)
	assert.Equal(t, int64(5), position.Quantity)

	// Draining an unattributed position removes the row.
	require.NoError(t, d.SetQuantity(ctx, 7, "dish-a", 0))

	_, err = d.FindPosition(ctx, 7, "dish-a")
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestPositionDAO_SetQuantity_KeepsAttributedRow(t *testing.T) {
	db := requireDB(t)
	d := NewPositionDAO(db)
	ctx := context.Background()

	require.NoError(t, d.SetQuantity(ctx, 7, "dish-a", 5))
	require.NoError(t, d.SetReferredByIfUnset(ctx, 7, "dish-a", 1))

	require.NoError(t, d.SetQuantity(ctx, 7, "dish-a", 0))

	position, err := d.FindPosition(ctx, 7, "dish-a")
	require.NoError(t, err)
	assert.Zero(t, position.Quantity)
	require.NotNil(t, position.ReferredBy)
	assert.Equal(t, int64(1), *position.ReferredBy)
}

func TestPositionDAO_InsertDishReferral_Idempotent(t *testing.T) {
	db := requireDB(t)
	d := NewPositionDAO(db)
	ctx := context.Background()

	require.NoError(t, d.InsertDishReferral(ctx, 1, 2, "dish-a"))
	require.NoError(t, d.InsertDishReferral(ctx, 1, 2, "dish-a"))
	require.NoError(t, d.InsertDishReferral(ctx, 1, 3, "dish-a"))

	referrals, err := d.ListReferralsByReferrer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, referrals, 2)
}

func TestPositionDAO_PullDishFromPositions(t *testing.T) {
	db := requireDB(t)
	d := NewPositionDAO(db)
	ctx := context.Background()

	require.NoError(t, d.SetQuantity(ctx, 7, "dish-a", 5))
	require.NoError(t, d.SetQuantity(ctx, 8, "dish-a", 2))
	require.NoError(t, d.SetQuantity(ctx, 7, "dish-b", 1))
	require.NoError(t, d.InsertDishReferral(ctx, 7, 8, "dish-a"))

	removed, err := d.PullDishFromPositions(ctx, "dish-a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = d.FindPosition(ctx, 7, "dish-a")
	assert.ErrorIs(t, err, ErrPositionNotFound)

	position, err := d.FindPosition(ctx, 7, "dish-b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), position.Quantity)

	referrals, err := d.ListReferralsByReferrer(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, referrals)
}

func TestDishDAO_RestaurantAndDishLifecycle(t *testing.T) {
	db := requireDB(t)
	d := NewDishDAO(db)
	ctx := context.Background()

	_, err := d.InsertRestaurant(ctx, Restaurant{ID: "r1", Name: "Trattoria"})
	require.NoError(t, err)

	_, err = d.InsertRestaurant(ctx, Restaurant{ID: "r1", Name: "Duplicate"})
	assert.ErrorIs(t, err, ErrRestaurantExists)

	_, err = d.InsertDish(ctx, Dish{DishID: "dish-a", Name: "Margherita", CreatorFid: 7, RestaurantID: "r1"})
	require.NoError(t, err)

	_, err = d.InsertDish(ctx, Dish{DishID: "dish-a", Name: "Duplicate", CreatorFid: 7, RestaurantID: "r1"})
	assert.ErrorIs(t, err, ErrDishExists)

	ids, err := d.ListDishIDsByRestaurant(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"dish-a"}, ids)

	count, err := d.CountDishesByCreator(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := d.DeleteDish(ctx, "dish-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = d.DeleteRestaurant(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Deleting again is a no-op, not an error.
	deleted, err = d.DeleteRestaurant(ctx, "r1")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
