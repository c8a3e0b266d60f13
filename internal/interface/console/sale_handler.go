package console

import (
	"context"

	appsale "github.com/xiebiao/bookstore-console/internal/application/sale"
	"github.com/xiebiao/bookstore-console/internal/domain/sale"
)

// SaleHandler sale and report actions (6, 7, 8, 9)
type SaleHandler struct {
	processSaleUseCase *appsale.ProcessSaleUseCase
	reportsUseCase     *appsale.ReportsUseCase
}

// NewSaleHandler creates the sale handler
func NewSaleHandler(processSaleUseCase *appsale.ProcessSaleUseCase, reportsUseCase *appsale.ReportsUseCase) *SaleHandler {
	return &SaleHandler{
		processSaleUseCase: processSaleUseCase,
		reportsUseCase:     reportsUseCase,
	}
}

// RevenueByGenre prints the revenue of one genre, 0.00 when it has no sales
func (h *SaleHandler) RevenueByGenre(ctx context.Context, p *Prompter) error {
	genre, err := p.Ask(ctx, "Input the genre you want to calculate revenue for.")
	if err != nil {
		return err
	}

	revenue, err := h.reportsUseCase.RevenueByGenre(ctx, genre)
	if err != nil {
		return err
	}

	p.Printf("Total revenue of %s is %.2f\n", genre, revenue.InexactFloat64())
	return nil
}

// ProcessNewSale reads book id, customer id and quantity, then records the sale.
// Both ids are resolved only after the quantity has been entered.
func (h *SaleHandler) ProcessNewSale(ctx context.Context, p *Prompter) error {
	bookID, err := p.AskInt(ctx, "Enter id of the book.", "ID should be an integer number.")
	if err != nil {
		return err
	}
	customerID, err := p.AskInt(ctx, "Enter id of the customer.", "ID should be an integer number.")
	if err != nil {
		return err
	}
	quantity, err := p.AskPositiveInt(ctx, "Enter quantity sold.", sale.ErrInvalidQuantity.Message)
	if err != nil {
		return err
	}

	result, err := h.processSaleUseCase.Execute(ctx, appsale.ProcessSaleRequest{
		BookID:     toID(bookID),
		CustomerID: toID(customerID),
		Quantity:   quantity,
	})
	if err != nil {
		return respondError(p, err)
	}

	p.Printf("Sale was successfully processed. Total price: %s\n", result.TotalPrice.StringFixed(2))
	return nil
}

// SoldBookReport prints every sale with book title and customer name
func (h *SaleHandler) SoldBookReport(ctx context.Context, p *Prompter) error {
	rows, err := h.reportsUseCase.SoldBooks(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		p.Println("No report was found.")
		return nil
	}

	p.Printf(soldBookFormat, "Book Title", "Customer Name", "Date of Sale")
	p.Println(soldBookRule)
	for _, r := range rows {
		p.Printf(soldBookFormat, r.Title, r.CustomerName, r.DateOfSale.Format(dateLayout))
	}
	return nil
}

// RevenueByGenreReport prints the revenue of every genre that has sales
func (h *SaleHandler) RevenueByGenreReport(ctx context.Context, p *Prompter) error {
	rows, err := h.reportsUseCase.RevenuePerGenre(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		p.Println("No sale was made.")
		return nil
	}

	for _, r := range rows {
		p.Printf("Genre: %-20s, Revenue: %s\n", r.Genre, r.Revenue.String())
	}
	return nil
}
