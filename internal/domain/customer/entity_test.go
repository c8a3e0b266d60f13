package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "paul.atreides+dune@arrakis.io", "x_y%z@mail-host.example.org"}
	invalid := []string{"not-an-email", "@b.co", "a@b", "a@b.c", "a b@c.de", ""}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("5551234"))
	assert.True(t, IsValidPhone("0"))
	assert.False(t, IsValidPhone(""))
	assert.False(t, IsValidPhone("+15551234"))
	assert.False(t, IsValidPhone("555-1234"))
}

func TestCustomer_ChangeEmail(t *testing.T) {
	c := NewCustomer("Paul", "paul@arrakis.io", "5551234")

	err := c.ChangeEmail("not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, "paul@arrakis.io", c.Email, "invalid email leaves the field unchanged")

	assert.NoError(t, c.ChangeEmail("muaddib@fremen.org"))
	assert.Equal(t, "muaddib@fremen.org", c.Email)
}

func TestCustomer_ChangePhone(t *testing.T) {
	c := NewCustomer("Paul", "paul@arrakis.io", "5551234")

	assert.ErrorIs(t, c.ChangePhone("call me"), ErrInvalidPhone)
	assert.Equal(t, "5551234", c.Phone)

	assert.NoError(t, c.ChangePhone("5550000"))
	assert.Equal(t, "5550000", c.Phone)
}

func TestCustomer_Rename(t *testing.T) {
	c := NewCustomer("Paul", "paul@arrakis.io", "5551234")
	c.Rename("Muad'Dib")
	assert.Equal(t, "Muad'Dib", c.Name)
}
