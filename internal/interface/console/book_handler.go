package console

import (
	"context"
	"strings"

	appbook "github.com/xiebiao/bookstore-console/internal/application/book"
	"github.com/xiebiao/bookstore-console/internal/domain/book"
)

// BookHandler book actions (1, 2, 3)
type BookHandler struct {
	updateBookUseCase *appbook.UpdateBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
}

// NewBookHandler creates the book handler
func NewBookHandler(updateBookUseCase *appbook.UpdateBookUseCase, listBooksUseCase *appbook.ListBooksUseCase) *BookHandler {
	return &BookHandler{
		updateBookUseCase: updateBookUseCase,
		listBooksUseCase:  listBooksUseCase,
	}
}

// UpdateDetails edits any column of one book, committing on sub-menu exit
func (h *BookHandler) UpdateDetails(ctx context.Context, p *Prompter) error {
	id, err := p.AskInt(ctx, "Enter id of the book.", "ID should be an integer number.")
	if err != nil {
		return err
	}

	b, err := h.updateBookUseCase.Lookup(ctx, toID(id))
	if err != nil {
		return respondError(p, err)
	}

	for {
		p.Println("Choose column you want to update")
		p.Println("1: title")
		p.Println("2: author")
		p.Println("3: genre")
		p.Println("4: price")
		p.Println("5: quantity in stock")
		p.Println("0: exit")

		choice, err := p.ReadLine(ctx)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			title, err := p.Ask(ctx, "Input new title.")
			if err != nil {
				return err
			}
			b.Rename(title)
		case "2":
			author, err := p.Ask(ctx, "Input new author.")
			if err != nil {
				return err
			}
			b.ChangeAuthor(author)
		case "3":
			genre, err := p.Ask(ctx, "Input new genre.")
			if err != nil {
				return err
			}
			b.ChangeGenre(genre)
		case "4":
			price, err := p.AskPositiveDecimal(ctx, "Input new price.", book.ErrInvalidPrice.Message)
			if err != nil {
				return err
			}
			if err := b.UpdatePrice(price); err != nil {
				return respondError(p, err)
			}
		case "5":
			stock, err := p.AskNonNegativeInt(ctx, "Input quantity in stock.", book.ErrInvalidStock.Message)
			if err != nil {
				return err
			}
			if err := b.UpdateStock(stock); err != nil {
				return respondError(p, err)
			}
		case "0":
			if err := h.updateBookUseCase.Commit(ctx, b); err != nil {
				return respondError(p, err)
			}
			p.Println("Details were successfully updated.")
			return nil
		default:
			p.Println("Invalid choice. Try again.")
		}
	}
}

// ListByGenre prints the books of one genre.
// The Genre column repeats the operator's input.
func (h *BookHandler) ListByGenre(ctx context.Context, p *Prompter) error {
	genre, err := p.Ask(ctx, "Input genre: ")
	if err != nil {
		return err
	}

	books, err := h.listBooksUseCase.ByGenre(ctx, genre)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		p.Println("There is no book with given genre.")
		return nil
	}

	printBookHeader(p)
	for _, b := range books {
		p.Printf(bookRowFormat, b.Title, b.Author, genre, b.Price.InexactFloat64(), b.Stock)
	}
	return nil
}

// ListByAuthor prints the books written by one author
func (h *BookHandler) ListByAuthor(ctx context.Context, p *Prompter) error {
	author, err := p.Ask(ctx, "Input author: ")
	if err != nil {
		return err
	}

	books, err := h.listBooksUseCase.ByAuthor(ctx, author)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		p.Println("There is no book written by given author.")
		return nil
	}

	printBookHeader(p)
	for _, b := range books {
		p.Printf(bookRowFormat, b.Title, b.Author, b.Genre, b.Price.InexactFloat64(), b.Stock)
	}
	return nil
}

func printBookHeader(p *Prompter) {
	p.Printf(bookHeaderFormat, "Book Title", "Author", "Genre", "Price", "Quantity In Stock")
	p.Println(bookRule)
}
