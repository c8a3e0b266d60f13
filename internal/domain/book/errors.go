package book

import (
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// book domain errors
var (
	// ErrBookNotFound no book with the given identifier
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "There is no book with given identifier.")

	// ErrInvalidPrice price must be positive
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "Price should be a positive floating point number.")

	// ErrInvalidStock stock must not be negative
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "Quantity in stock should be a non-negative integer number.")
)
