package gormdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb/gormdbtest"
)

func TestTxManager(t *testing.T) {
	db := gormdbtest.New(t)
	tx := gormdb.NewTxManager(db)
	repo := gormdb.NewBookRepository(db)
	ctx := context.Background()

	b := gormdbtest.SeedBook(t, db, "Dune", "Herbert", "SciFi", "20.00", 5)

	t.Run("error rolls back", func(t *testing.T) {
		errAbort := errors.New("abort")
		err := tx.Transaction(ctx, func(ctx context.Context) error {
			b.Rename("Rolled Back")
			if err := repo.Update(ctx, b); err != nil {
				return err
			}
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", got.Title)
	})

	t.Run("nil commits", func(t *testing.T) {
		err := tx.Transaction(ctx, func(ctx context.Context) error {
			b.Rename("Committed")
			return repo.Update(ctx, b)
		})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Committed", got.Title)
	})
}
