// Package product provides the Product entity of the order tracking system.
//
// A product carries the current catalogue price. Orders never read it after
// creation: each order item keeps its own unit price snapshot, so ChangePrice
// affects only orders created afterwards.
package product

import (
	"errors"
	"strings"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalogue entry identified by a unique SKU.
type Product struct {
	id            kernel.ID
	name          string
	sku           string
	price         kernel.Money
	createdAt     time.Time
	isConstructed bool
}

// NewProduct creates a product that is not persisted yet.
//
// Example:
//
//	p, err := product.NewProduct("Widget", "SKU-001", kernel.MustMoney("9.99"), time.Now())
func NewProduct(name, sku string, price kernel.Money, now time.Time) (*Product, error) {
	p := &Product{price: price, createdAt: now.UTC(), isConstructed: true}

	if err := errors.Join(
		p.setName(name),
		p.setSKU(sku),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id kernel.ID, name, sku string, price kernel.Money, createdAt time.Time) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, err := NewProduct(name, sku, price, createdAt)
	if err != nil {
		return nil, err
	}

	p.id = id
	p.createdAt = createdAt
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) SKU() string {
	return p.sku
}

// Price is the current catalogue price.
func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// ChangePrice sets a new catalogue price.
func (p *Product) ChangePrice(price kernel.Money) {
	p.price = price
}

// AssignID records the identity generated by the store.
func (p *Product) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if strings.ContainsAny(sku, " \t\n") {
		return errs.NewValueIsInvalidError("sku")
	}
	p.sku = strings.ToUpper(sku)
	return nil
}
