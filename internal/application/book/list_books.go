package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
)

// ListBooksUseCase book listing by exact genre or author
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase creates the listing use case
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// BookListItem one row of a listing
type BookListItem struct {
	Title  string
	Author string
	Genre  string
	Price  decimal.Decimal
	Stock  int
}

// ByGenre books whose genre equals genre, in store order
func (uc *ListBooksUseCase) ByGenre(ctx context.Context, genre string) ([]BookListItem, error) {
	books, err := uc.bookService.ListByGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	return toListItems(books), nil
}

// ByAuthor books whose author equals author, in store order
func (uc *ListBooksUseCase) ByAuthor(ctx context.Context, author string) ([]BookListItem, error) {
	books, err := uc.bookService.ListByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return toListItems(books), nil
}

func toListItems(books []*book.Book) []BookListItem {
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = BookListItem{
			Title:  b.Title,
			Author: b.Author,
			Genre:  b.Genre,
			Price:  b.Price,
			Stock:  b.Stock,
		}
	}
	return list
}
