package gormdb_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb/gormdbtest"
)

func TestBookRepository_CreateAndFind(t *testing.T) {
	db := gormdbtest.New(t)
	repo := gormdb.NewBookRepository(db)
	ctx := context.Background()

	created := gormdbtest.SeedBook(t, db, "Dune", "Herbert", "SciFi", "20.00", 5)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", found.Title)
	assert.Equal(t, "Herbert", found.Author)
	assert.Equal(t, "SciFi", found.Genre)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(20)), found.Price.String())
	assert.Equal(t, 5, found.Stock)

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, created.ID+100)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 0)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookRepository_Update(t *testing.T) {
	db := gormdbtest.New(t)
	repo := gormdb.NewBookRepository(db)
	ctx := context.Background()

	b := gormdbtest.SeedBook(t, db, "Dune", "Herbert", "SciFi", "20.00", 5)
	other := gormdbtest.SeedBook(t, db, "Emma", "Austen", "Romance", "9.75", 3)

	b.Rename("Dune Messiah")
	require.NoError(t, b.UpdatePrice(decimal.RequireFromString("22.50")))
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.Equal(t, "22.5", got.Price.String())
	assert.Equal(t, "Herbert", got.Author, "untouched columns keep their values")
	assert.Equal(t, 5, got.Stock)

	untouched, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma", untouched.Title)
}

func TestBookRepository_ListByGenreAndAuthor(t *testing.T) {
	db := gormdbtest.New(t)
	repo := gormdb.NewBookRepository(db)
	ctx := context.Background()

	gormdbtest.SeedBook(t, db, "Dune", "Herbert", "SciFi", "20.00", 5)
	gormdbtest.SeedBook(t, db, "Foundation", "Asimov", "SciFi", "15.50", 8)
	gormdbtest.SeedBook(t, db, "I, Robot", "Asimov", "Robots", "11.00", 2)

	scifi, err := repo.ListByGenre(ctx, "SciFi")
	require.NoError(t, err)
	require.Len(t, scifi, 2)
	assert.Equal(t, "Dune", scifi[0].Title)
	assert.Equal(t, "Foundation", scifi[1].Title)

	asimov, err := repo.ListByAuthor(ctx, "Asimov")
	require.NoError(t, err)
	assert.Len(t, asimov, 2)

	t.Run("equality match only", func(t *testing.T) {
		none, err := repo.ListByGenre(ctx, "scifi")
		require.NoError(t, err)
		assert.Empty(t, none)

		none, err = repo.ListByAuthor(ctx, "Asim")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
