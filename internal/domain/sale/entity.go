package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
)

// Sale sale entity
// Notes:
// 1. References exactly one Book and one Customer by ID (no ownership)
// 2. TotalPrice is a snapshot of quantity × unit price at insertion and never recomputed
// 3. DateOfSale is a calendar date; the time of day is dropped
type Sale struct {
	ID           uint
	BookID       uint
	CustomerID   uint
	DateOfSale   time.Time
	QuantitySold int
	TotalPrice   decimal.Decimal
}

// NewSale creates a sale of quantity copies of b to c on the given day.
// Rules:
// - quantity must be > 0
// - quantity must not exceed the book's current stock
// The book's stock is left untouched.
func NewSale(b *book.Book, c *customer.Customer, day time.Time, quantity int) (*Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if b == nil || c == nil {
		return nil, ErrInvalidIdentifier
	}
	if !b.HasStock(quantity) {
		return nil, ErrInsufficientStock
	}
	return &Sale{
		BookID:       b.ID,
		CustomerID:   c.ID,
		DateOfSale:   TruncateToDay(day),
		QuantitySold: quantity,
		TotalPrice:   CalculateTotal(b.Price, quantity),
	}, nil
}

// CalculateTotal unit price × quantity
func CalculateTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// TruncateToDay drops the clock part of t, keeping its location
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
