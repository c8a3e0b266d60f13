package sale

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository sale repository interface
// Notes:
// 1. Create must run inside the transaction carried by ctx
// 2. Report queries are read-only joins/aggregates, in store order
type Repository interface {
	// Create inserts a sale and back-fills its ID
	Create(ctx context.Context, sale *Sale) error

	// Count number of stored sales
	Count(ctx context.Context) (int64, error)

	// HistoryByCustomer sales of one customer joined to their books
	HistoryByCustomer(ctx context.Context, customerID uint) ([]PurchaseRecord, error)

	// RevenueByGenre SUM(total_price) over sales whose book has exactly this genre; zero when none
	RevenueByGenre(ctx context.Context, genre string) (decimal.Decimal, error)

	// SoldBookReport every sale joined to its book and customer
	SoldBookReport(ctx context.Context) ([]SoldBookRow, error)

	// RevenueReport SUM(total_price) grouped by book genre
	RevenueReport(ctx context.Context) ([]GenreRevenue, error)
}
