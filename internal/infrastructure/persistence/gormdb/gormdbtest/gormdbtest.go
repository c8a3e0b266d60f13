// Package gormdbtest opens throwaway migrated stores for tests.
package gormdbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/pkg/logger"
)

// New opens a private in-memory sqlite database, migrated, closed at test cleanup.
// The single pooled connection is kept idle so the shared-cache database survives between calls.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Mode: "release"},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			Path:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}

	db, err := gormdb.NewDB(cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = gormdb.Close(db)
	})
	return db
}

// SeedBook inserts a book directly
func SeedBook(t testing.TB, db *gorm.DB, title, author, genre, price string, stock int) *book.Book {
	t.Helper()

	b, err := book.NewBook(title, author, genre, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	require.NoError(t, gormdb.NewBookRepository(db).Create(t.Context(), b))
	return b
}

// SeedCustomer inserts a customer directly
func SeedCustomer(t testing.TB, db *gorm.DB, name, email, phone string) *customer.Customer {
	t.Helper()

	c := customer.NewCustomer(name, email, phone)
	require.NoError(t, gormdb.NewCustomerRepository(db).Create(t.Context(), c))
	return c
}
