// Package customer provides the Customer entity of the order tracking system.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// MaxPhoneLength bounds the free-form phone number.
const MaxPhoneLength = 32

// Customer places orders. The email is optional but unique among customers that
// have one. The phone is optional and not unique.
type Customer struct {
	id            kernel.ID
	name          string
	email         string
	phone         string
	createdAt     time.Time
	isConstructed bool
}

// NewCustomer creates a customer that is not persisted yet. An empty email or
// phone means none.
func NewCustomer(name, email, phone string, now time.Time) (*Customer, error) {
	c := &Customer{createdAt: now.UTC(), isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(id kernel.ID, name, email, phone string, createdAt time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c, err := NewCustomer(name, email, phone, createdAt)
	if err != nil {
		return nil, err
	}

	c.id = id
	c.createdAt = createdAt
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.ID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Email is empty when the customer has none.
func (c *Customer) Email() string {
	return c.email
}

// Phone is empty when the customer has none.
func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// AssignID records the identity generated by the store.
func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}

	c.email = strings.ToLower(email)
	return nil
}

// setPhone accepts digits with the usual separators and an optional leading +.
func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}

	if len(phone) > MaxPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("longer than %d characters", MaxPhoneLength))
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case strings.ContainsRune(" -().", r):
		default:
			return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("unexpected character %q", r))
		}
	}
	if digits == 0 {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q has no digits", phone))
	}

	c.phone = phone
	return nil
}
