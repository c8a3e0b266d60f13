package book

import (
	"context"
)

// Service book domain service
type Service interface {
	// GetBookByID lookup by identifier
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// SaveBook persists an edited book
	SaveBook(ctx context.Context, book *Book) error

	// ListByGenre books whose genre equals genre
	ListByGenre(ctx context.Context, genre string) ([]*Book, error)

	// ListByAuthor books whose author equals author
	ListByAuthor(ctx context.Context, author string) ([]*Book, error)
}

type service struct {
	repo Repository
}

// NewService creates the book domain service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// SaveBook re-checks the column invariants before writing, then saves all columns.
// The row must still exist; a vanished row yields ErrBookNotFound.
func (s *service) SaveBook(ctx context.Context, book *Book) error {
	if !book.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if book.Stock < 0 {
		return ErrInvalidStock
	}
	if _, err := s.repo.FindByID(ctx, book.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, book)
}

func (s *service) ListByGenre(ctx context.Context, genre string) ([]*Book, error) {
	return s.repo.ListByGenre(ctx, genre)
}

func (s *service) ListByAuthor(ctx context.Context, author string) ([]*Book, error) {
	return s.repo.ListByAuthor(ctx, author)
}
