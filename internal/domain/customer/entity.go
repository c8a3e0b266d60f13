package customer

import (
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
)

// Customer customer entity (aggregate root)
// Email and phone are only checked when changed; stored rows are trusted.
type Customer struct {
	ID    uint
	Name  string
	Email string
	Phone string
}

// NewCustomer creates a customer for direct insertion
func NewCustomer(name, email, phone string) *Customer {
	return &Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

// Rename sets a new name
func (c *Customer) Rename(name string) {
	c.Name = name
}

// ChangeEmail sets a new email
// Rule: local@domain.tld, TLD of 2+ letters. On failure the field is unchanged.
func (c *Customer) ChangeEmail(email string) error {
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// ChangePhone sets a new phone number
// Rule: decimal digits only. On failure the field is unchanged.
func (c *Customer) ChangePhone(phone string) error {
	if !IsValidPhone(phone) {
		return ErrInvalidPhone
	}
	c.Phone = phone
	return nil
}

// IsValidEmail reports whether email has the local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether phone is a non-empty run of decimal digits
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
