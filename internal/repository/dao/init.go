package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserBadge{},
		&WishlistItem{},
		&Restaurant{},
		&Dish{},
		&Position{},
		&DishReferral{},
	)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Used to make concurrent inserts idempotent.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
