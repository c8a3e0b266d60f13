package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord one line of a customer's purchase history (sale joined to its book)
type PurchaseRecord struct {
	DateOfSale   time.Time
	QuantitySold int
	Title        string
	Price        decimal.Decimal
}

// SoldBookRow one line of the sold book report (sale joined to book and customer)
type SoldBookRow struct {
	Title        string
	CustomerName string
	DateOfSale   time.Time
}

// GenreRevenue summed total price of all sales of one genre
type GenreRevenue struct {
	Genre   string
	Revenue decimal.Decimal
}
