package gormdb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb/gormdbtest"
	"github.com/xiebiao/bookstore-console/pkg/logger"
)

const seedYAML = `
books:
  - title: Dune
    author: Herbert
    genre: SciFi
    price: 20.00
    quantity_in_stock: 5
  - title: Emma
    author: Austen
    genre: Romance
    price: "9.75"
    quantity_in_stock: 3
customers:
  - name: Paul
    email: paul@arrakis.io
    phone: "5551234"
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	data, err := gormdb.LoadSeedFile(writeSeed(t, seedYAML))
	require.NoError(t, err)

	require.Len(t, data.Books, 2)
	assert.Equal(t, "Dune", data.Books[0].Title)
	assert.Equal(t, "20", data.Books[0].Price.String())
	assert.Equal(t, "9.75", data.Books[1].Price.String())
	require.Len(t, data.Customers, 1)
	assert.Equal(t, "5551234", data.Customers[0].Phone)

	t.Run("missing file", func(t *testing.T) {
		_, err := gormdb.LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestSeed_OnlyIntoEmptyTables(t *testing.T) {
	db := gormdbtest.New(t)
	ctx := context.Background()

	data, err := gormdb.LoadSeedFile(writeSeed(t, seedYAML))
	require.NoError(t, err)

	require.NoError(t, gormdb.Seed(ctx, db, data, logger.Discard()))
	require.NoError(t, gormdb.Seed(ctx, db, data, logger.Discard()), "second run is a no-op")

	books, err := gormdb.NewBookRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), books)

	customers, err := gormdb.NewCustomerRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), customers)
}

func TestSeed_InvalidBookRollsBack(t *testing.T) {
	db := gormdbtest.New(t)
	ctx := context.Background()

	data, err := gormdb.LoadSeedFile(writeSeed(t, `
books:
  - title: Good
    author: A
    genre: G
    price: 1.00
    quantity_in_stock: 1
  - title: Free
    author: B
    genre: G
    price: 0
    quantity_in_stock: 1
`))
	require.NoError(t, err)

	assert.Error(t, gormdb.Seed(ctx, db, data, logger.Discard()))

	books, err := gormdb.NewBookRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, books)
}
