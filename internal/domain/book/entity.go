package book

import (
	"github.com/shopspring/decimal"
)

// Book book entity (aggregate root)
// Notes:
// 1. Price is a decimal to keep sale totals exact
// 2. Stock is the quantity in stock; sales check it but do not consume it
// 3. Books are inserted by the seed loader, never deleted
type Book struct {
	ID     uint
	Title  string
	Author string
	Genre  string
	Price  decimal.Decimal
	Stock  int
}

// NewBook creates a book for direct insertion
func NewBook(title, author, genre string, price decimal.Decimal, stock int) (*Book, error) {
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	return &Book{
		Title:  title,
		Author: author,
		Genre:  genre,
		Price:  price,
		Stock:  stock,
	}, nil
}

// Rename sets a new title
func (b *Book) Rename(title string) {
	b.Title = title
}

// ChangeAuthor sets a new author
func (b *Book) ChangeAuthor(author string) {
	b.Author = author
}

// ChangeGenre sets a new genre
func (b *Book) ChangeGenre(genre string) {
	b.Genre = genre
}

// UpdatePrice updates the price
// Rule: price must be > 0
func (b *Book) UpdatePrice(newPrice decimal.Decimal) error {
	if !newPrice.IsPositive() {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	return nil
}

// UpdateStock updates the quantity in stock
// Rule: stock can not be negative
func (b *Book) UpdateStock(newStock int) error {
	if newStock < 0 {
		return ErrInvalidStock
	}
	b.Stock = newStock
	return nil
}

// HasStock reports whether quantity copies are available
func (b *Book) HasStock(quantity int) bool {
	return b.Stock >= quantity
}
