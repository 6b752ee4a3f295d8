package store

import (
	"context"
	"sync"

	"go-bankwebapp/models"
)

// MemoryCustomerStore holds customer records in memory behind a RWMutex.
type MemoryCustomerStore struct {
	mu        sync.RWMutex
	customers map[string]models.Customer
}

// NewMemoryCustomerStore creates an empty in-memory customer store.
func NewMemoryCustomerStore() *MemoryCustomerStore {
	return &MemoryCustomerStore{customers: make(map[string]models.Customer)}
}

func (s *MemoryCustomerStore) Get(_ context.Context, id string) (models.Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customer, exists := s.customers[id]
	return customer, exists, nil
}

func (s *MemoryCustomerStore) GetAll(_ context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customers := make([]models.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (s *MemoryCustomerStore) Save(_ context.Context, customer models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[customer.ID] = customer
	return customer, nil
}

func (s *MemoryCustomerStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.customers, id)
	return nil
}

// MemoryAccountStore holds account records in memory behind a RWMutex.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

// NewMemoryAccountStore creates an empty in-memory account store.
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]models.Account)}
}

func (s *MemoryAccountStore) Get(_ context.Context, id string) (models.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, exists := s.accounts[id]
	return account, exists, nil
}

func (s *MemoryAccountStore) GetAll(_ context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (s *MemoryAccountStore) Save(_ context.Context, account models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return account, nil
}

func (s *MemoryAccountStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
	return nil
}
