package customer

import (
	"context"

	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	"github.com/xiebiao/bookstore-console/internal/domain/sale"
)

// PurchaseHistoryUseCase lists the sales of one customer
type PurchaseHistoryUseCase struct {
	customerService customer.Service
	saleRepo        sale.Repository
}

// NewPurchaseHistoryUseCase creates the use case
func NewPurchaseHistoryUseCase(customerService customer.Service, saleRepo sale.Repository) *PurchaseHistoryUseCase {
	return &PurchaseHistoryUseCase{
		customerService: customerService,
		saleRepo:        saleRepo,
	}
}

// Execute returns customer.ErrCustomerNotFound for an unknown id,
// an empty slice for a customer without purchases.
func (uc *PurchaseHistoryUseCase) Execute(ctx context.Context, customerID uint) ([]sale.PurchaseRecord, error) {
	if _, err := uc.customerService.GetCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	return uc.saleRepo.HistoryByCustomer(ctx, customerID)
}
