package sale

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
)

func fixtures() (*book.Book, *customer.Customer) {
	b := &book.Book{ID: 1, Title: "Dune", Author: "Herbert", Genre: "SciFi", Price: decimal.RequireFromString("20.00"), Stock: 5}
	c := &customer.Customer{ID: 1, Name: "Paul", Email: "paul@arrakis.io", Phone: "5551234"}
	return b, c
}

func TestNewSale(t *testing.T) {
	day := time.Date(2024, 3, 1, 17, 45, 12, 0, time.UTC)

	t.Run("total is quantity times price", func(t *testing.T) {
		b, c := fixtures()

		s, err := NewSale(b, c, day, 3)
		require.NoError(t, err)

		assert.Equal(t, uint(1), s.BookID)
		assert.Equal(t, uint(1), s.CustomerID)
		assert.Equal(t, 3, s.QuantitySold)
		assert.True(t, s.TotalPrice.Equal(decimal.RequireFromString("60.00")), s.TotalPrice.String())
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), s.DateOfSale)
		assert.Equal(t, 5, b.Stock, "stock is not decremented")
	})

	t.Run("whole stock can be sold", func(t *testing.T) {
		b, c := fixtures()
		_, err := NewSale(b, c, day, 5)
		assert.NoError(t, err)
	})

	t.Run("oversell rejected", func(t *testing.T) {
		b, c := fixtures()
		_, err := NewSale(b, c, day, 10)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		b, c := fixtures()
		_, err := NewSale(b, c, day, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("missing reference rejected", func(t *testing.T) {
		b, _ := fixtures()
		_, err := NewSale(b, nil, day, 1)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}

func TestCalculateTotal(t *testing.T) {
	total := CalculateTotal(decimal.RequireFromString("12.99"), 3)
	assert.Equal(t, "38.97", total.StringFixed(2))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishSaleCreated(context.Background(), &Sale{}))
}
