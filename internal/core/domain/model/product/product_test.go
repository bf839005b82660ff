package product_test

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, quantity int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Tomatoes", "Vegetables", mustMoney(t, "3.40"), quantity)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product", func(t *testing.T) {
		farmerID := kernel.NewUUID()

		p, err := product.NewProduct(kernel.NewUUID(), farmerID, "Tomatoes", "Vegetables", mustMoney(t, "3.40"), 12)

		require.NoError(t, err)
		assert.Equal(t, "Tomatoes", p.Name())
		assert.Equal(t, "Vegetables", p.Category())
		assert.Equal(t, "3.40", p.Price().String())
		assert.Equal(t, 12, p.Quantity())
		assert.True(t, p.IsOwnedBy(farmerID))
		assert.Nil(t, p.Description())
		assert.NoError(t, p.Validate())
	})

	t.Run("should reject name and category outside bounds", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "T", strings.Repeat("c", 101), mustMoney(t, "1.00"), 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "name length")
		assert.Contains(t, err.Error(), "category length")
	})

	t.Run("should accept zero stock and reject negative stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Eggs", "Dairy", mustMoney(t, "0.00"), 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Quantity())

		_, err = product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Eggs", "Dairy", mustMoney(t, "0.00"), -1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Eggs", "Dairy", kernel.Money{}, 1)

		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("should decrement stock", func(t *testing.T) {
		p := newProduct(t, 5)

		require.NoError(t, p.Reserve(3))

		assert.Equal(t, 2, p.Quantity())
	})

	t.Run("should allow taking the whole stock", func(t *testing.T) {
		p := newProduct(t, 5)

		require.NoError(t, p.Reserve(5))

		assert.Equal(t, 0, p.Quantity())
	})

	t.Run("should reject more than available", func(t *testing.T) {
		p := newProduct(t, 2)

		err := p.Reserve(3)

		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.Requested)
		assert.Equal(t, 2, stockErr.Available)
		assert.Equal(t, 2, p.Quantity())
	})

	t.Run("should reject quantity below one", func(t *testing.T) {
		p := newProduct(t, 2)

		for _, qty := range []int{0, -4} {
			assert.ErrorIs(t, p.Reserve(qty), product.ErrInsufficientStock)
		}
		assert.Equal(t, 2, p.Quantity())
	})

	t.Run("should never go negative over repeated reservations", func(t *testing.T) {
		p := newProduct(t, 5)

		require.NoError(t, p.Reserve(3))
		err := p.Reserve(3)

		assert.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 2, p.Quantity())
	})
}

func TestProduct_Changes(t *testing.T) {
	t.Run("should change price", func(t *testing.T) {
		p := newProduct(t, 1)

		require.NoError(t, p.ChangePrice(mustMoney(t, "9.99")))

		assert.Equal(t, "9.99", p.Price().String())
	})

	t.Run("should change quantity including zero", func(t *testing.T) {
		p := newProduct(t, 4)

		require.NoError(t, p.ChangeQuantity(0))
		assert.Equal(t, 0, p.Quantity())

		assert.Error(t, p.ChangeQuantity(-1))
		assert.Equal(t, 0, p.Quantity())
	})

	t.Run("should rename and recategorize", func(t *testing.T) {
		p := newProduct(t, 1)

		require.NoError(t, p.Rename("Cherry tomatoes"))
		require.NoError(t, p.ChangeCategory("Fruit"))
		assert.Error(t, p.Rename("x"))

		assert.Equal(t, "Cherry tomatoes", p.Name())
		assert.Equal(t, "Fruit", p.Category())
	})

	t.Run("should set and clear description", func(t *testing.T) {
		p := newProduct(t, 1)
		desc := "Grown outdoors"

		p.ChangeDescription(&desc)
		require.NotNil(t, p.Description())
		assert.Equal(t, desc, *p.Description())

		p.ChangeDescription(nil)
		assert.Nil(t, p.Description())
	})
}
