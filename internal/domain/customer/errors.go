package customer

import (
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// customer domain errors
var (
	// ErrCustomerNotFound no customer with the given identifier
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "There is no customer with given identifier.")

	// ErrInvalidEmail email does not match local@domain.tld
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "Not valid email was given.")

	// ErrInvalidPhone phone is not all digits
	ErrInvalidPhone = apperrors.New(apperrors.ErrCodeInvalidParams, "Not valid phone number was given.")
)
