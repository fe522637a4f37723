package product_test

import (
	"testing"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("should create product", func(t *testing.T) {
		p, err := product.NewProduct("Widget", " sku-001 ", kernel.MustMoney("9.99"), now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsZero())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, "SKU-001", p.SKU())
		assert.Equal(t, "9.99", p.Price().String())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		p, err := product.NewProduct("Sample", "FREE-1", kernel.Money{}, now)

		require.NoError(t, err)
		assert.Equal(t, "0.00", p.Price().String())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		p, err := product.NewProduct("", "", kernel.MustMoney("1.00"), now)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "sku")
	})

	t.Run("should reject sku with spaces", func(t *testing.T) {
		_, err := product.NewProduct("Widget", "SKU 001", kernel.MustMoney("1.00"), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_ChangePrice(t *testing.T) {
	id, _ := kernel.NewID(1)
	p, err := product.RestoreProduct(id, "Widget", "SKU-001", kernel.MustMoney("9.99"), time.Now())
	require.NoError(t, err)

	p.ChangePrice(kernel.MustMoney("12.00"))

	assert.Equal(t, "12.00", p.Price().String())
	assert.True(t, p.ID().IsEqual(id))
}

func TestProduct_Validate(t *testing.T) {
	var p *product.Product
	assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
}
