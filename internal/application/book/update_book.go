package book

import (
	"context"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
)

// UpdateBookUseCase book details editing use case
// Notes:
// 1. Lookup resolves the book the operator is about to edit
// 2. Edits are applied to the entity in memory by the caller, column by column
// 3. Commit writes every column in one transaction; the row is re-resolved inside it
type UpdateBookUseCase struct {
	bookService book.Service
	txManager   *gormdb.TxManager
}

// NewUpdateBookUseCase creates the use case
func NewUpdateBookUseCase(bookService book.Service, txManager *gormdb.TxManager) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Lookup returns book.ErrBookNotFound for an unknown id
func (uc *UpdateBookUseCase) Lookup(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookService.GetBookByID(ctx, id)
}

// Commit persists the edited book, rolling back on any error
func (uc *UpdateBookUseCase) Commit(ctx context.Context, b *book.Book) error {
	return uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.bookService.SaveBook(ctx, b)
	})
}
