package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-bankwebapp/models"
	"go-bankwebapp/store"
)

// CreateAccountRequest carries the fields for a new account. The customerId
// must resolve to an existing customer or the creation is rejected.
type CreateAccountRequest struct {
	ID         string          `json:"id" binding:"required"`
	CustomerID string          `json:"customerId" binding:"required"`
	Balance    decimal.Decimal `json:"balance"`
	City       models.City     `json:"city" binding:"required,city"`
	Currency   models.Currency `json:"currency" binding:"required,currency"`
}

// UpdateAccountRequest carries the mutable account fields. The account id
// cannot change; the customerId can, and is re-validated when it does.
type UpdateAccountRequest struct {
	CustomerID string          `json:"customerId" binding:"required"`
	Balance    decimal.Decimal `json:"balance"`
	City       models.City     `json:"city" binding:"required,city"`
	Currency   models.Currency `json:"currency" binding:"required,currency"`
}

// AccountService owns account records. Every write that names a customer
// resolves it through the CustomerService first; money movement touches only
// the balance.
type AccountService struct {
	accounts  store.AccountStore
	customers *CustomerService
	log       *zap.Logger
}

// NewAccountService creates an AccountService over the given store, resolving
// customer references through customers.
func NewAccountService(accounts store.AccountStore, customers *CustomerService, log *zap.Logger) *AccountService {
	return &AccountService{accounts: accounts, customers: customers, log: log}
}

// Create persists a new account for req.CustomerID. When the customer does
// not exist the empty record is returned and nothing is stored.
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (models.Account, error) {
	customer, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return models.Account{}, err
	}
	if customer.IsEmpty() {
		s.log.Warn("account create rejected, unknown customer",
			zap.String("account_id", req.ID),
			zap.String("customer_id", req.CustomerID))
		return models.Account{}, nil
	}

	account := models.Account{
		ID:         req.ID,
		CustomerID: req.CustomerID,
		Balance:    req.Balance,
		City:       req.City,
		Currency:   req.Currency,
	}
	saved, err := s.accounts.Save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}
	s.log.Info("account created",
		zap.String("account_id", saved.ID),
		zap.String("customer_id", saved.CustomerID))
	return saved, nil
}

// Update overwrites the mutable fields of the account with the given id. The
// customer reference is validated before the account is even looked up; an
// unknown customer or an unknown account id both yield the empty record with
// no store mutation.
func (s *AccountService) Update(ctx context.Context, id string, req UpdateAccountRequest) (models.Account, error) {
	customer, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return models.Account{}, err
	}
	if customer.IsEmpty() {
		s.log.Warn("account update rejected, unknown customer",
			zap.String("account_id", id),
			zap.String("customer_id", req.CustomerID))
		return models.Account{}, nil
	}

	account, found, err := s.accounts.Get(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	if !found {
		return models.Account{}, nil
	}

	account.CustomerID = req.CustomerID
	account.Balance = req.Balance
	account.City = req.City
	account.Currency = req.Currency

	return s.accounts.Save(ctx, account)
}

// GetByID returns the account with the given id, or the empty record when
// there is none.
func (s *AccountService) GetByID(ctx context.Context, id string) (models.Account, error) {
	account, found, err := s.accounts.Get(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	if !found {
		return models.Account{}, nil
	}
	return account, nil
}

// GetAll returns every account in store iteration order.
func (s *AccountService) GetAll(ctx context.Context) ([]models.Account, error) {
	return s.accounts.GetAll(ctx)
}

// Delete removes the account with the given id; missing ids are a no-op. The
// customer the account pointed at is untouched.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("account deleted", zap.String("account_id", id))
	return nil
}

// Withdraw subtracts amount from the account's balance. A missing account or
// an amount above the current balance leaves the store untouched and yields
// the empty record; withdrawing the exact balance is allowed and leaves the
// account at zero. The balance check and the save are separate store calls,
// so concurrent withdrawals race on the balance.
func (s *AccountService) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (models.Account, error) {
	account, found, err := s.accounts.Get(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	if !found {
		return models.Account{}, nil
	}
	if amount.GreaterThan(account.Balance) {
		s.log.Warn("withdrawal rejected, insufficient balance",
			zap.String("account_id", id),
			zap.String("amount", amount.String()),
			zap.String("balance", account.Balance.String()))
		return models.Account{}, nil
	}

	account.Balance = account.Balance.Sub(amount)
	saved, err := s.accounts.Save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}
	s.log.Info("withdrawal applied",
		zap.String("account_id", id),
		zap.String("amount", amount.String()),
		zap.String("balance", saved.Balance.String()))
	return saved, nil
}

// Deposit adds amount to the account's balance. There is no upper bound; a
// missing account yields the empty record.
func (s *AccountService) Deposit(ctx context.Context, id string, amount decimal.Decimal) (models.Account, error) {
	account, found, err := s.accounts.Get(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	if !found {
		return models.Account{}, nil
	}

	account.Balance = account.Balance.Add(amount)
	saved, err := s.accounts.Save(ctx, account)
	if err != nil {
		return models.Account{}, err
	}
	s.log.Info("deposit applied",
		zap.String("account_id", id),
		zap.String("amount", amount.String()),
		zap.String("balance", saved.Balance.String()))
	return saved, nil
}
