package book

import (
	"context"
)

// Repository book repository interface
// Notes:
// 1. Defined by the domain, implemented in infrastructure/persistence/gormdb
// 2. Every method joins the transaction carried by ctx, if any
type Repository interface {
	// Create inserts a book and back-fills its ID
	Create(ctx context.Context, book *Book) error

	// FindByID returns ErrBookNotFound when absent
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update saves every editable column of the book.
	// It does not report a missing row; callers resolve the book first.
	Update(ctx context.Context, book *Book) error

	// ListByGenre exact match on genre
	ListByGenre(ctx context.Context, genre string) ([]*Book, error)

	// ListByAuthor exact match on author
	ListByAuthor(ctx context.Context, author string) ([]*Book, error)

	// Count number of stored books
	Count(ctx context.Context) (int64, error)
}
