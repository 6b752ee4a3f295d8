package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bankwebapp/models"
)

func TestMemoryCustomerStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns saved record", func(t *testing.T) {
		s := NewMemoryCustomerStore()
		saved, err := s.Save(ctx, models.Customer{ID: "c1", Name: "Ada", City: models.CityAnkara})
		require.NoError(t, err)
		assert.Equal(t, "c1", saved.ID)

		got, found, err := s.Get(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, saved, got)
	})

	t.Run("get reports missing record", func(t *testing.T) {
		s := NewMemoryCustomerStore()
		_, found, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save overwrites by id", func(t *testing.T) {
		s := NewMemoryCustomerStore()
		_, err := s.Save(ctx, models.Customer{ID: "c1", Name: "Ada"})
		require.NoError(t, err)
		_, err = s.Save(ctx, models.Customer{ID: "c1", Name: "Grace"})
		require.NoError(t, err)

		got, found, err := s.Get(ctx, "c1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Grace", got.Name)

		all, err := s.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("delete is a no-op for missing ids", func(t *testing.T) {
		s := NewMemoryCustomerStore()
		require.NoError(t, s.Delete(ctx, "nope"))

		_, err := s.Save(ctx, models.Customer{ID: "c1"})
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, "c1"))
		require.NoError(t, s.Delete(ctx, "c1"))

		_, found, err := s.Get(ctx, "c1")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMemoryAccountStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips an account", func(t *testing.T) {
		s := NewMemoryAccountStore()
		account := models.Account{
			ID:         "a1",
			CustomerID: "c1",
			Balance:    decimal.NewFromInt(1000),
			City:       models.CityAnkara,
			Currency:   models.CurrencyUSD,
		}
		_, err := s.Save(ctx, account)
		require.NoError(t, err)

		got, found, err := s.Get(ctx, "a1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "c1", got.CustomerID)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("getAll returns every account", func(t *testing.T) {
		s := NewMemoryAccountStore()
		_, err := s.Save(ctx, models.Account{ID: "a1"})
		require.NoError(t, err)
		_, err = s.Save(ctx, models.Account{ID: "a2"})
		require.NoError(t, err)

		all, err := s.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := NewMemoryAccountStore()
		_, err := s.Save(ctx, models.Account{ID: "a1"})
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, "a1"))
		require.NoError(t, s.Delete(ctx, "a1"))
	})
}
