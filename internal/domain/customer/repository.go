package customer

import (
	"context"
)

// Repository customer repository interface
type Repository interface {
	// Create inserts a customer and back-fills its ID
	Create(ctx context.Context, customer *Customer) error

	// FindByID returns ErrCustomerNotFound when absent
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// Update saves name, email and phone
	Update(ctx context.Context, customer *Customer) error

	// Count number of stored customers
	Count(ctx context.Context) (int64, error)
}
