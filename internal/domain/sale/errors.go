package sale

import (
	apperrors "github.com/xiebiao/bookstore-console/pkg/errors"
)

// sale domain errors
var (
	// ErrInvalidQuantity quantity sold must be a positive integer
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "Quantity should be a positive integer number.")

	// ErrInvalidIdentifier book or customer reference did not resolve
	ErrInvalidIdentifier = apperrors.New(apperrors.ErrCodeNotFound, "Not valid identifier was passed.")

	// ErrInsufficientStock requested quantity exceeds quantity in stock
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "There isn't enough quantity of book in stock.")
)
