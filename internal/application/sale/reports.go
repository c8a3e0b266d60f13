package sale

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-console/internal/domain/sale"
)

// ReportsUseCase read-only sale reports
type ReportsUseCase struct {
	saleRepo sale.Repository
}

// NewReportsUseCase creates the reports use case
func NewReportsUseCase(saleRepo sale.Repository) *ReportsUseCase {
	return &ReportsUseCase{saleRepo: saleRepo}
}

// RevenueByGenre total price of all sales of books with exactly this genre, zero when none
func (uc *ReportsUseCase) RevenueByGenre(ctx context.Context, genre string) (decimal.Decimal, error) {
	return uc.saleRepo.RevenueByGenre(ctx, genre)
}

// SoldBooks every sale with its book title and customer name
func (uc *ReportsUseCase) SoldBooks(ctx context.Context) ([]sale.SoldBookRow, error) {
	return uc.saleRepo.SoldBookReport(ctx)
}

// RevenuePerGenre revenue grouped by genre
func (uc *ReportsUseCase) RevenuePerGenre(ctx context.Context) ([]sale.GenreRevenue, error) {
	return uc.saleRepo.RevenueReport(ctx)
}
