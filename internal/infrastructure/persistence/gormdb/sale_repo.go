package gormdb

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-console/internal/domain/sale"
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// money columns are decimal(10,2); sqlite sums them as floats
const moneyScale = 2

// saleRepository sale repository implementation
// Notes:
// 1. Create must be called inside TxManager.Transaction
// 2. Reports are explicit joins projected into row structs (no Preload)
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates the sale repository
func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &saleRepository{db: db}
}

// Create inserts a sale; the Book/Customer associations are never written
func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := &SaleModel{
		BookID:       s.BookID,
		CustomerID:   s.CustomerID,
		DateOfSale:   s.DateOfSale,
		QuantitySold: s.QuantitySold,
		TotalPrice:   s.TotalPrice,
	}

	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create sale")
	}

	s.ID = model.ID
	return nil
}

// Count number of sales
func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&SaleModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "failed to count sales")
	}
	return total, nil
}

type purchaseRow struct {
	DateOfSale   time.Time
	QuantitySold int
	Title        string
	Price        decimal.Decimal
}

// HistoryByCustomer
// SELECT s.date_of_sale, s.quantity_sold, b.title, b.price
// FROM sales s INNER JOIN books b ON b.book_id = s.book_id WHERE s.customer_id = ?
func (r *saleRepository) HistoryByCustomer(ctx context.Context, customerID uint) ([]sale.PurchaseRecord, error) {
	var rows []purchaseRow
	err := getDB(ctx, r.db).Model(&SaleModel{}).
		Select("sales.date_of_sale AS date_of_sale, sales.quantity_sold AS quantity_sold, books.title AS title, books.price AS price").
		Joins("INNER JOIN books ON books.book_id = sales.book_id").
		Where("sales.customer_id = ?", customerID).
		Order("sales.sale_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query purchase history")
	}

	records := make([]sale.PurchaseRecord, len(rows))
	for i, row := range rows {
		records[i] = sale.PurchaseRecord{
			DateOfSale:   row.DateOfSale,
			QuantitySold: row.QuantitySold,
			Title:        row.Title,
			Price:        row.Price,
		}
	}
	return records, nil
}

// RevenueByGenre SUM(total_price) of one genre; NULL (no sales) becomes zero
func (r *saleRepository) RevenueByGenre(ctx context.Context, genre string) (decimal.Decimal, error) {
	var out struct {
		Revenue decimal.NullDecimal
	}
	err := getDB(ctx, r.db).Model(&SaleModel{}).
		Select("SUM(sales.total_price) AS revenue").
		Joins("INNER JOIN books ON books.book_id = sales.book_id").
		Where("books.genre = ?", genre).
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, apperrors.Wrap(err, "failed to calculate revenue")
	}

	if !out.Revenue.Valid {
		return decimal.Zero, nil
	}
	return out.Revenue.Decimal.Round(moneyScale), nil
}

type soldBookRow struct {
	Title        string
	CustomerName string
	DateOfSale   time.Time
}

// SoldBookReport every sale with its book title and customer name
func (r *saleRepository) SoldBookReport(ctx context.Context) ([]sale.SoldBookRow, error) {
	var rows []soldBookRow
	err := getDB(ctx, r.db).Model(&SaleModel{}).
		Select("books.title AS title, customers.name AS customer_name, sales.date_of_sale AS date_of_sale").
		Joins("INNER JOIN books ON books.book_id = sales.book_id").
		Joins("INNER JOIN customers ON customers.customer_id = sales.customer_id").
		Order("sales.sale_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query sold book report")
	}

	report := make([]sale.SoldBookRow, len(rows))
	for i, row := range rows {
		report[i] = sale.SoldBookRow{
			Title:        row.Title,
			CustomerName: row.CustomerName,
			DateOfSale:   row.DateOfSale,
		}
	}
	return report, nil
}

type genreRevenueRow struct {
	Genre   string
	Revenue decimal.NullDecimal
}

// RevenueReport SUM(total_price) GROUP BY books.genre
func (r *saleRepository) RevenueReport(ctx context.Context) ([]sale.GenreRevenue, error) {
	var rows []genreRevenueRow
	err := getDB(ctx, r.db).Model(&SaleModel{}).
		Select("books.genre AS genre, SUM(sales.total_price) AS revenue").
		Joins("INNER JOIN books ON books.book_id = sales.book_id").
		Group("books.genre").
		Order("books.genre").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query revenue report")
	}

	report := make([]sale.GenreRevenue, len(rows))
	for i, row := range rows {
		report[i] = sale.GenreRevenue{
			Genre:   row.Genre,
			Revenue: row.Revenue.Decimal.Round(moneyScale),
		}
	}
	return report, nil
}
