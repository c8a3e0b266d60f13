package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// bookRepository book repository implementation
// Notes:
// 1. Implements domain/book.Repository
// 2. Converts between the domain entity and BookModel
// 3. Translates gorm.ErrRecordNotFound into book.ErrBookNotFound
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates the book repository
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create inserts a book
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create book")
	}

	b.ID = model.ID
	return nil
}

// FindByID finds a book by identifier
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("book_id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}

	return toBookEntity(&model), nil
}

// Update writes every editable column.
// Existence is checked by the caller inside the same transaction: MySQL reports zero
// affected rows for an unchanged row, so RowsAffected can not tell "missing" apart.
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("book_id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":             b.Title,
			"author":            b.Author,
			"genre":             b.Genre,
			"price":             b.Price,
			"quantity_in_stock": b.Stock,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update book")
	}
	return nil
}

// ListByGenre books with exactly this genre
func (r *bookRepository) ListByGenre(ctx context.Context, genre string) ([]*book.Book, error) {
	return r.listWhere(ctx, "genre = ?", genre)
}

// ListByAuthor books with exactly this author
func (r *bookRepository) ListByAuthor(ctx context.Context, author string) ([]*book.Book, error) {
	return r.listWhere(ctx, "author = ?", author)
}

// Count number of books
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "failed to count books")
	}
	return total, nil
}

func (r *bookRepository) listWhere(ctx context.Context, query string, arg string) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Where(query, arg).
		Order("book_id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list books")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// =========================================
// model conversion
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		Price:           b.Price,
		QuantityInStock: b.Stock,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:     model.ID,
		Title:  model.Title,
		Author: model.Author,
		Genre:  model.Genre,
		Price:  model.Price,
		Stock:  model.QuantityInStock,
	}
}
