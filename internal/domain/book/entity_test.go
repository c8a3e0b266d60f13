package book

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	t.Run("valid book", func(t *testing.T) {
		b, err := NewBook("Dune", "Herbert", "SciFi", decimal.NewFromInt(20), 5)
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, 5, b.Stock)
		assert.Zero(t, b.ID, "id is assigned by the store")
	})

	t.Run("zero price rejected", func(t *testing.T) {
		_, err := NewBook("Dune", "Herbert", "SciFi", decimal.Zero, 5)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := NewBook("Dune", "Herbert", "SciFi", decimal.NewFromInt(20), -1)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestBook_UpdatePrice(t *testing.T) {
	b := &Book{Price: decimal.NewFromInt(20)}

	require.NoError(t, b.UpdatePrice(decimal.RequireFromString("12.50")))
	assert.True(t, b.Price.Equal(decimal.RequireFromString("12.5")))

	assert.ErrorIs(t, b.UpdatePrice(decimal.RequireFromString("-3")), ErrInvalidPrice)
	assert.True(t, b.Price.Equal(decimal.RequireFromString("12.5")), "rejected price leaves the old one")
}

func TestBook_UpdateStock(t *testing.T) {
	b := &Book{Stock: 5}

	require.NoError(t, b.UpdateStock(0))
	assert.Equal(t, 0, b.Stock)

	assert.ErrorIs(t, b.UpdateStock(-1), ErrInvalidStock)
	assert.Equal(t, 0, b.Stock)
}

func TestBook_HasStock(t *testing.T) {
	b := &Book{Stock: 5}
	assert.True(t, b.HasStock(5))
	assert.True(t, b.HasStock(1))
	assert.False(t, b.HasStock(6))
}

func TestBook_TextEdits(t *testing.T) {
	b := &Book{Title: "Dune", Author: "Herbert", Genre: "SciFi"}

	b.Rename("Dune Messiah")
	b.ChangeAuthor("Frank Herbert")
	b.ChangeGenre("Classic")

	assert.Equal(t, Book{Title: "Dune Messiah", Author: "Frank Herbert", Genre: "Classic"}, *b)
}
