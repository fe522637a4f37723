package customer_test

import (
	"testing"
	"time"

	"ordertracking/internal/core/domain/model/customer"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should create customer with email", func(t *testing.T) {
		c, err := customer.NewCustomer("  Alice ", "Alice@Example.com", "", now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsZero())
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "alice@example.com", c.Email())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("should allow missing email", func(t *testing.T) {
		c, err := customer.NewCustomer("Bob", "", "", now)

		require.NoError(t, err)
		assert.Empty(t, c.Email())
		assert.Empty(t, c.Phone())
	})

	t.Run("should keep a trimmed phone", func(t *testing.T) {
		c, err := customer.NewCustomer("Bob", "", "  +1 (555) 010-0200 ", now)

		require.NoError(t, err)
		assert.Equal(t, "+1 (555) 010-0200", c.Phone())
	})

	t.Run("should reject malformed phones", func(t *testing.T) {
		for _, phone := range []string{
			"call me",
			"555+0100",
			"()-",
			"+1 555 0100 0100 0100 0100 0100 0100",
		} {
			_, err := customer.NewCustomer("Bob", "", phone, now)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, phone)
		}
	})

	t.Run("should reject empty name and malformed email together", func(t *testing.T) {
		c, err := customer.NewCustomer(" ", "not-an-email", "", now)

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject display-name addresses", func(t *testing.T) {
		_, err := customer.NewCustomer("Bob", "Bob <bob@example.com>", "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreCustomer(t *testing.T) {
	id, _ := kernel.NewID(3)
	created := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	c, err := customer.RestoreCustomer(id, "Carol", "carol@example.com", "+44 20 7946 0958", created)

	require.NoError(t, err)
	assert.True(t, c.ID().IsEqual(id))
	assert.Equal(t, "+44 20 7946 0958", c.Phone())
	assert.Equal(t, created, c.CreatedAt())

	_, err = customer.RestoreCustomer(kernel.ID{}, "Carol", "", "", created)
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestCustomer_AssignID(t *testing.T) {
	c, err := customer.NewCustomer("Dave", "", "", time.Now())
	require.NoError(t, err)

	require.Error(t, c.AssignID(kernel.ID{}))

	id, _ := kernel.NewID(11)
	require.NoError(t, c.AssignID(id))
	assert.Equal(t, int64(11), c.ID().Int64())
}
