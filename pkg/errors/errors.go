package errors

import (
	"errors"
	"fmt"
)

// AppError application error carrying a stable code.
// Notes:
// 1. Code lets callers branch on the kind of failure without string matching
// 2. Message is the operator-facing text
// 3. Err is the underlying cause; it goes to the log, never to the console
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps a system error (database, broker) as an internal AppError
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf formats the message and wraps err
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// Error codes
// =========================================
// - 4xxxx: operator-correctable (bad input, business rule)
// - 5xxxx: store or broker failure

const (
	// system (50000-50099)
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeBrokerError   = 50002

	// not found (40400-40499)
	ErrCodeNotFound         = 40400
	ErrCodeCustomerNotFound = 40401
	ErrCodeBookNotFound     = 40402
	ErrCodeSaleNotFound     = 40403

	// business rules (40000-40099)
	ErrCodeBusinessError     = 40000
	ErrCodeInsufficientStock = 40001

	// invalid input (40900-40999)
	ErrCodeInvalidParams = 40900
	ErrCodeInvalidConfig = 40901
)

var (
	ErrInternal      = New(ErrCodeInternal, "internal error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid parameters")
)

// IsAppError reports whether err is (or wraps) an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping foreign errors as internal
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal error")
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code int) bool {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Code == code {
			return true
		}
		err = appErr.Err
	}
	return false
}
