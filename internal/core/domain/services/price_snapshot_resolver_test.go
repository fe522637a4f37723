package services_test

import (
	"context"
	"testing"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/product"
	"ordertracking/internal/core/domain/services"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductSource struct {
	products map[int64]*product.Product
	calls    map[int64]int
}

func newFakeProductSource(t *testing.T, prices map[int64]string) *fakeProductSource {
	t.Helper()
	src := &fakeProductSource{products: map[int64]*product.Product{}, calls: map[int64]int{}}
	for id, price := range prices {
		pid, err := kernel.NewID(id)
		require.NoError(t, err)
		p, err := product.RestoreProduct(pid, "Product", "SKU-"+pid.String(), kernel.MustMoney(price), time.Now())
		require.NoError(t, err)
		src.products[id] = p
	}
	return src
}

func (f *fakeProductSource) GetForSnapshot(_ context.Context, id kernel.ID) (*product.Product, error) {
	f.calls[id.Int64()]++
	p, ok := f.products[id.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.Int64())
	}
	return p, nil
}

func id(t *testing.T, value int64) kernel.ID {
	t.Helper()
	v, err := kernel.NewID(value)
	require.NoError(t, err)
	return v
}

func TestPriceSnapshotResolver_Resolve(t *testing.T) {
	t.Run("should return current price", func(t *testing.T) {
		src := newFakeProductSource(t, map[int64]string{1: "9.99"})
		resolver := services.NewPriceSnapshotResolver(src)

		price, err := resolver.Resolve(t.Context(), id(t, 1))

		require.NoError(t, err)
		assert.Equal(t, "9.99", price.String())
	})

	t.Run("should keep first snapshot for repeated product", func(t *testing.T) {
		src := newFakeProductSource(t, map[int64]string{1: "9.99"})
		resolver := services.NewPriceSnapshotResolver(src)

		first, err := resolver.Resolve(t.Context(), id(t, 1))
		require.NoError(t, err)
		src.products[1].ChangePrice(kernel.MustMoney("50.00"))
		second, err := resolver.Resolve(t.Context(), id(t, 1))
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, 1, src.calls[1])
	})

	t.Run("should surface not found", func(t *testing.T) {
		resolver := services.NewPriceSnapshotResolver(newFakeProductSource(t, nil))

		_, err := resolver.Resolve(t.Context(), id(t, 99))

		require.Error(t, err)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestPriceSnapshotResolver_ResolveItems(t *testing.T) {
	t.Run("should build items with snapshots", func(t *testing.T) {
		src := newFakeProductSource(t, map[int64]string{1: "9.99", 2: "19.99"})
		resolver := services.NewPriceSnapshotResolver(src)

		items, err := resolver.ResolveItems(t.Context(), []services.Line{
			{ProductID: id(t, 1), Quantity: 2},
			{ProductID: id(t, 2), Quantity: 1},
		})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "19.98", items[0].Subtotal().String())
		assert.Equal(t, "19.99", items[1].UnitPrice().String())
	})

	t.Run("should stop at first unknown product", func(t *testing.T) {
		src := newFakeProductSource(t, map[int64]string{1: "9.99"})
		resolver := services.NewPriceSnapshotResolver(src)

		items, err := resolver.ResolveItems(t.Context(), []services.Line{
			{ProductID: id(t, 5), Quantity: 1},
			{ProductID: id(t, 1), Quantity: 1},
		})

		require.Error(t, err)
		assert.Nil(t, items)
		assert.Contains(t, err.Error(), "line 1")
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
		assert.Zero(t, src.calls[1])
	})

	t.Run("should reject invalid quantity", func(t *testing.T) {
		src := newFakeProductSource(t, map[int64]string{1: "9.99"})
		resolver := services.NewPriceSnapshotResolver(src)

		_, err := resolver.ResolveItems(t.Context(), []services.Line{{ProductID: id(t, 1), Quantity: 0}})

		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("should reject empty input", func(t *testing.T) {
		resolver := services.NewPriceSnapshotResolver(newFakeProductSource(t, nil))

		_, err := resolver.ResolveItems(t.Context(), nil)

		require.ErrorIs(t, err, services.ErrNoLines)
	})
}
