package gormdb

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookModel GORM book model
// Notes:
// 1. Persistence model with GORM tags; domain/book.Book stays tag-free
// 2. CHECK constraints mirror the domain rules (price > 0, stock >= 0)
type BookModel struct {
	ID              uint            `gorm:"column:book_id;primaryKey;autoIncrement"`
	Title           string          `gorm:"column:title;size:255;not null"`
	Author          string          `gorm:"column:author;size:255;not null;index"`
	Genre           string          `gorm:"column:genre;size:100;not null;index"`
	Price           decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null;check:chk_books_price,price > 0"`
	QuantityInStock int             `gorm:"column:quantity_in_stock;not null;check:chk_books_quantity_in_stock,quantity_in_stock >= 0"`
}

// TableName table name
func (BookModel) TableName() string {
	return "books"
}

// CustomerModel GORM customer model
type CustomerModel struct {
	ID    uint   `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:name;size:255;not null"`
	Email string `gorm:"column:email;size:255"`
	Phone string `gorm:"column:phone;size:50"`
}

// TableName table name
func (CustomerModel) TableName() string {
	return "customers"
}

// SaleModel GORM sale model
// Book and Customer exist only so AutoMigrate emits the foreign keys;
// inserts omit associations.
type SaleModel struct {
	ID           uint            `gorm:"column:sale_id;primaryKey;autoIncrement"`
	BookID       uint            `gorm:"column:book_id;not null;index"`
	Book         BookModel       `gorm:"foreignKey:BookID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CustomerID   uint            `gorm:"column:customer_id;not null;index"`
	Customer     CustomerModel   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	DateOfSale   time.Time       `gorm:"column:date_of_sale;type:date"`
	QuantitySold int             `gorm:"column:quantity_sold;not null;check:chk_sales_quantity_sold,quantity_sold >= 0"`
	TotalPrice   decimal.Decimal `gorm:"column:total_price;type:decimal(10,2);not null;check:chk_sales_total_price,total_price >= 0"`
}

// TableName table name
func (SaleModel) TableName() string {
	return "sales"
}
