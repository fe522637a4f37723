package commands

import (
	"context"
	"time"

	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
)

type demoCustomer struct {
	name  string
	email string
}

type demoProduct struct {
	name  string
	sku   string
	price string
}

var (
	demoCustomers = []demoCustomer{
		{name: "Alice Johnson", email: "alice@corp.com"},
		{name: "Bob Smith", email: "bob@agency.com"},
	}

	demoProducts = []demoProduct{
		{name: "Widget", sku: "SKU-001", price: "9.99"},
		{name: "Gadget", sku: "SKU-002", price: "19.99"},
		{name: "Laptop Stand", sku: "SKU-LP-100", price: "29.99"},
		{name: "USB-C Hub", sku: "SKU-USB-200", price: "45.50"},
		{name: "Monitor 24in", sku: "SKU-MON-300", price: "120.00"},
	}
)

// SeedDemoDataResult counts the rows a seeding run actually inserted.
type SeedDemoDataResult struct {
	CustomersCreated int
	ProductsCreated  int
}

// SeedDemoDataCommandHandler inserts the demo customers and products.
//
// Rows are keyed by email and SKU and inserted only when absent, so running the
// seed repeatedly leaves the store unchanged after the first run.
type SeedDemoDataCommandHandler struct {
	uowFactory UoWFactory
}

func NewSeedDemoDataCommandHandler(uowFactory UoWFactory) SeedDemoDataCommandHandler {
	return SeedDemoDataCommandHandler{uowFactory: uowFactory}
}

func (h *SeedDemoDataCommandHandler) Handle(ctx context.Context) (SeedDemoDataResult, error) {
	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedDemoDataResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result SeedDemoDataResult

	customerRepo := uow.CustomerRepository()
	for _, dc := range demoCustomers {
		c, err := customer.NewCustomer(dc.name, dc.email, "", now)
		if err != nil {
			return SeedDemoDataResult{}, err
		}

		created, err := customerRepo.AddIfAbsent(ctx, c)
		if err != nil {
			return SeedDemoDataResult{}, err
		}
		if created {
			result.CustomersCreated++
		}
	}

	productRepo := uow.ProductRepository()
	for _, dp := range demoProducts {
		p, err := product.NewProduct(dp.name, dp.sku, kernel.MustMoney(dp.price), now)
		if err != nil {
			return SeedDemoDataResult{}, err
		}

		created, err := productRepo.AddIfAbsent(ctx, p)
		if err != nil {
			return SeedDemoDataResult{}, err
		}
		if created {
			result.ProductsCreated++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return SeedDemoDataResult{}, err
	}

	return result, nil
}
