package customer

import (
	"context"

	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
)

// UpdateCustomerUseCase customer information editing use case
// Rejected email or phone edits never reach the entity, so Commit always writes
// whatever state the entity is in, even when nothing was changed.
type UpdateCustomerUseCase struct {
	customerService customer.Service
	txManager       *gormdb.TxManager
}

// NewUpdateCustomerUseCase creates the use case
func NewUpdateCustomerUseCase(customerService customer.Service, txManager *gormdb.TxManager) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerService: customerService,
		txManager:       txManager,
	}
}

// Lookup returns customer.ErrCustomerNotFound for an unknown id
func (uc *UpdateCustomerUseCase) Lookup(ctx context.Context, id uint) (*customer.Customer, error) {
	return uc.customerService.GetCustomerByID(ctx, id)
}

// Commit persists the edited customer in one transaction
func (uc *UpdateCustomerUseCase) Commit(ctx context.Context, c *customer.Customer) error {
	return uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.customerService.SaveCustomer(ctx, c)
	})
}
