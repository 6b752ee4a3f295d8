package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-bankwebapp/models"
	"go-bankwebapp/store"
)

func newCustomerService() *CustomerService {
	return NewCustomerService(store.NewMemoryCustomerStore(), zap.NewNop())
}

func TestCustomerServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the customer", func(t *testing.T) {
		s := newCustomerService()
		customer, err := s.Create(ctx, CreateCustomerRequest{
			ID:          "c1",
			Name:        "Ada Lovelace",
			DateOfBirth: 1990,
			Address:     "Kizilay",
			City:        models.CityAnkara,
		})
		require.NoError(t, err)
		assert.Equal(t, "c1", customer.ID)
		assert.Equal(t, "Ada Lovelace", customer.Name)
		assert.Equal(t, models.CityAnkara, customer.City)

		got, err := s.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, customer, got)
	})

	t.Run("create with an existing id overwrites", func(t *testing.T) {
		s := newCustomerService()
		_, err := s.Create(ctx, CreateCustomerRequest{ID: "c1", Name: "Ada", City: models.CityAnkara})
		require.NoError(t, err)
		_, err = s.Create(ctx, CreateCustomerRequest{ID: "c1", Name: "Grace", City: models.CityIstanbul})
		require.NoError(t, err)

		got, err := s.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Grace", got.Name)
	})
}

func TestCustomerServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id yields the empty record", func(t *testing.T) {
		s := newCustomerService()
		got, err := s.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})

	t.Run("getAll returns every customer", func(t *testing.T) {
		s := newCustomerService()
		_, err := s.Create(ctx, CreateCustomerRequest{ID: "c1", Name: "Ada", City: models.CityAnkara})
		require.NoError(t, err)
		_, err = s.Create(ctx, CreateCustomerRequest{ID: "c2", Name: "Grace", City: models.CityIstanbul})
		require.NoError(t, err)

		all, err := s.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestCustomerServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites mutable fields, id untouched", func(t *testing.T) {
		s := newCustomerService()
		_, err := s.Create(ctx, CreateCustomerRequest{
			ID: "c1", Name: "Ada", DateOfBirth: 1990, Address: "Kizilay", City: models.CityAnkara,
		})
		require.NoError(t, err)

		updated, err := s.Update(ctx, "c1", UpdateCustomerRequest{
			Name: "Ada L.", DateOfBirth: 1991, Address: "Kadikoy", City: models.CityIstanbul,
		})
		require.NoError(t, err)
		assert.Equal(t, "c1", updated.ID)
		assert.Equal(t, "Ada L.", updated.Name)
		assert.Equal(t, 1991, updated.DateOfBirth)
		assert.Equal(t, models.CityIstanbul, updated.City)
	})

	t.Run("missing id yields the empty record and creates nothing", func(t *testing.T) {
		s := newCustomerService()
		updated, err := s.Update(ctx, "ghost", UpdateCustomerRequest{Name: "Nobody", City: models.CityAnkara})
		require.NoError(t, err)
		assert.True(t, updated.IsEmpty())

		all, err := s.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the customer", func(t *testing.T) {
		s := newCustomerService()
		_, err := s.Create(ctx, CreateCustomerRequest{ID: "c1", Name: "Ada", City: models.CityAnkara})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, "c1"))
		got, err := s.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})

	t.Run("deleting a missing id is a no-op", func(t *testing.T) {
		s := newCustomerService()
		require.NoError(t, s.Delete(ctx, "nope"))
	})
}
