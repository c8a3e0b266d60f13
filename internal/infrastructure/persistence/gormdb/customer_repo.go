package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// customerRepository customer repository implementation
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates the customer repository
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

// Create inserts a customer
func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := &CustomerModel{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create customer")
	}

	c.ID = model.ID
	return nil
}

// FindByID finds a customer by identifier
func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	err := getDB(ctx, r.db).Where("customer_id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query customer")
	}

	return &customer.Customer{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
		Phone: model.Phone,
	}, nil
}

// Update writes name, email and phone
func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	err := getDB(ctx, r.db).Model(&CustomerModel{}).
		Where("customer_id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":  c.Name,
			"email": c.Email,
			"phone": c.Phone,
		}).Error

	if err != nil {
		return apperrors.Wrap(err, "failed to update customer")
	}
	return nil
}

// Count number of customers
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(&CustomerModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "failed to count customers")
	}
	return total, nil
}
