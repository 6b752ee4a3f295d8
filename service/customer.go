// Package service holds the business rules of the bank: plain CRUD over
// customers, and account operations gated on the referenced customer
// existing. Domain rejections (missing record, unknown customer, not enough
// balance) come back as an empty record with a nil error; only store faults
// are returned as errors.
package service

import (
	"context"

	"go.uber.org/zap"

	"go-bankwebapp/models"
	"go-bankwebapp/store"
)

// CreateCustomerRequest carries the fields for a new customer. The id is
// chosen by the caller.
type CreateCustomerRequest struct {
	ID          string      `json:"id" binding:"required"`
	Name        string      `json:"name"`
	DateOfBirth int         `json:"dateOfBirth"`
	Address     string      `json:"address"`
	City        models.City `json:"city" binding:"required,city"`
}

// UpdateCustomerRequest carries the mutable customer fields. The id cannot
// change.
type UpdateCustomerRequest struct {
	Name        string      `json:"name"`
	DateOfBirth int         `json:"dateOfBirth"`
	Address     string      `json:"address"`
	City        models.City `json:"city" binding:"required,city"`
}

// CustomerService owns customer records. It performs no cross-entity checks;
// the account side calls into it to resolve customer references.
type CustomerService struct {
	customers store.CustomerStore
	log       *zap.Logger
}

// NewCustomerService creates a CustomerService over the given store.
func NewCustomerService(customers store.CustomerStore, log *zap.Logger) *CustomerService {
	return &CustomerService{customers: customers, log: log}
}

// Create persists the customer described by req and returns it. If a record
// with the same id already exists it is overwritten; uniqueness is the
// caller's concern.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (models.Customer, error) {
	customer := models.Customer{
		ID:          req.ID,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		City:        req.City,
	}
	saved, err := s.customers.Save(ctx, customer)
	if err != nil {
		return models.Customer{}, err
	}
	s.log.Info("customer created", zap.String("customer_id", saved.ID))
	return saved, nil
}

// GetByID returns the customer with the given id, or the empty record when
// there is none.
func (s *CustomerService) GetByID(ctx context.Context, id string) (models.Customer, error) {
	customer, found, err := s.customers.Get(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	if !found {
		return models.Customer{}, nil
	}
	return customer, nil
}

// GetAll returns every customer in store iteration order.
func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	return s.customers.GetAll(ctx)
}

// Update overwrites the mutable fields of the customer with the given id and
// returns the updated record. A missing id yields the empty record and never
// creates anything.
func (s *CustomerService) Update(ctx context.Context, id string, req UpdateCustomerRequest) (models.Customer, error) {
	customer, found, err := s.customers.Get(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}
	if !found {
		s.log.Warn("update of unknown customer", zap.String("customer_id", id))
		return models.Customer{}, nil
	}

	customer.Name = req.Name
	customer.DateOfBirth = req.DateOfBirth
	customer.Address = req.Address
	customer.City = req.City

	return s.customers.Save(ctx, customer)
}

// Delete removes the customer with the given id. Deleting a missing id is a
// no-op. Accounts referencing the customer are left untouched; the reference
// is only ever checked when an account is written.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("customer deleted", zap.String("customer_id", id))
	return nil
}
