package customer

import (
	"context"
)

// Service customer domain service
type Service interface {
	// GetCustomerByID lookup by identifier
	GetCustomerByID(ctx context.Context, id uint) (*Customer, error)

	// SaveCustomer persists an edited customer
	SaveCustomer(ctx context.Context, customer *Customer) error
}

type service struct {
	repo Repository
}

// NewService creates the customer domain service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCustomerByID(ctx context.Context, id uint) (*Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// SaveCustomer writes the customer back. Email and phone were validated when they were
// changed on the entity, so no re-validation happens here.
func (s *service) SaveCustomer(ctx context.Context, customer *Customer) error {
	if _, err := s.repo.FindByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, customer)
}
