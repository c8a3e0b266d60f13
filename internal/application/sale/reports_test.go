package sale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsale "github.com/xiebiao/bookstore-console/internal/application/sale"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb/gormdbtest"
)

func TestReportsUseCase(t *testing.T) {
	ctx := context.Background()
	db := gormdbtest.New(t)
	reports := appsale.NewReportsUseCase(gormdb.NewSaleRepository(db))
	sales := newProcessSaleUseCase(db, nil)

	t.Run("empty store", func(t *testing.T) {
		rows, err := reports.SoldBooks(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)

		perGenre, err := reports.RevenuePerGenre(ctx)
		require.NoError(t, err)
		assert.Empty(t, perGenre)
	})

	dune := gormdbtest.SeedBook(t, db, "Dune", "Herbert", "SciFi", "20.00", 5)
	emma := gormdbtest.SeedBook(t, db, "Emma", "Austen", "Romance", "9.75", 3)
	paul := gormdbtest.SeedCustomer(t, db, "Paul", "paul@arrakis.io", "5551234")

	for _, req := range []appsale.ProcessSaleRequest{
		{BookID: dune.ID, CustomerID: paul.ID, Quantity: 3},
		{BookID: emma.ID, CustomerID: paul.ID, Quantity: 2},
	} {
		_, err := sales.Execute(ctx, req)
		require.NoError(t, err)
	}

	t.Run("revenue of unknown genre is zero", func(t *testing.T) {
		revenue, err := reports.RevenueByGenre(ctx, "Poetry")
		require.NoError(t, err)
		assert.Equal(t, "0.00", revenue.StringFixed(2))
	})

	t.Run("revenue by genre", func(t *testing.T) {
		revenue, err := reports.RevenueByGenre(ctx, "Romance")
		require.NoError(t, err)
		assert.Equal(t, "19.50", revenue.StringFixed(2))
	})

	t.Run("sold books", func(t *testing.T) {
		rows, err := reports.SoldBooks(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Paul", rows[0].CustomerName)
	})

	t.Run("revenue per genre", func(t *testing.T) {
		rows, err := reports.RevenuePerGenre(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "60", rows[1].Revenue.String())
	})
}
