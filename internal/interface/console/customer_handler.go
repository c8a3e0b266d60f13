package console

import (
	"context"
	"strings"

	appcustomer "github.com/xiebiao/bookstore-console/internal/application/customer"
)

// CustomerHandler customer actions (4, 5)
type CustomerHandler struct {
	updateCustomerUseCase  *appcustomer.UpdateCustomerUseCase
	purchaseHistoryUseCase *appcustomer.PurchaseHistoryUseCase
}

// NewCustomerHandler creates the customer handler
func NewCustomerHandler(
	updateCustomerUseCase *appcustomer.UpdateCustomerUseCase,
	purchaseHistoryUseCase *appcustomer.PurchaseHistoryUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		updateCustomerUseCase:  updateCustomerUseCase,
		purchaseHistoryUseCase: purchaseHistoryUseCase,
	}
}

// UpdateInformation edits name, email or phone of one customer.
// A rejected email or phone is reported once and the sub-menu stays open.
// Exiting the sub-menu always commits.
func (h *CustomerHandler) UpdateInformation(ctx context.Context, p *Prompter) error {
	id, err := p.AskInt(ctx, "Enter id of the customer.", "ID should be an integer number.")
	if err != nil {
		return err
	}

	c, err := h.updateCustomerUseCase.Lookup(ctx, toID(id))
	if err != nil {
		return respondError(p, err)
	}

	for {
		p.Println("Choose column you want to update")
		p.Println("1: name")
		p.Println("2: email")
		p.Println("3: phone")
		p.Println("0: exit")

		choice, err := p.ReadLine(ctx)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			name, err := p.Ask(ctx, "Input new name.")
			if err != nil {
				return err
			}
			c.Rename(name)
		case "2":
			email, err := p.Ask(ctx, "Input new email.")
			if err != nil {
				return err
			}
			if err := c.ChangeEmail(strings.TrimSpace(email)); err != nil {
				if err := respondError(p, err); err != nil {
					return err
				}
			}
		case "3":
			phone, err := p.Ask(ctx, "Input new phone number.")
			if err != nil {
				return err
			}
			if err := c.ChangePhone(strings.TrimSpace(phone)); err != nil {
				if err := respondError(p, err); err != nil {
					return err
				}
			}
		case "0":
			if err := h.updateCustomerUseCase.Commit(ctx, c); err != nil {
				return respondError(p, err)
			}
			p.Println("Information was successfully updated.")
			return nil
		default:
			p.Println("Invalid choice. Try again.")
		}
	}
}

// PurchaseHistory prints every sale of one customer
func (h *CustomerHandler) PurchaseHistory(ctx context.Context, p *Prompter) error {
	id, err := p.AskInt(ctx, "Enter id of the customer.", "ID should be an integer number.")
	if err != nil {
		return err
	}

	records, err := h.purchaseHistoryUseCase.Execute(ctx, toID(id))
	if err != nil {
		return respondError(p, err)
	}
	if len(records) == 0 {
		p.Println("Customer with given id didn't purchase any book.")
		return nil
	}

	for _, r := range records {
		p.Printf("Title: %-20s, Date: %-10s, Price: %-10.2f, Quantity: %d\n",
			r.Title, r.DateOfSale.Format(dateLayout), r.Price.InexactFloat64(), r.QuantitySold)
	}
	return nil
}
