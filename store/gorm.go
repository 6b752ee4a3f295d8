package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-bankwebapp/models"
)

// OpenSQLite opens (or creates) a SQLite database at path and migrates the
// customer and account tables. Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Account{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// GormCustomerStore implements CustomerStore on a GORM database.
type GormCustomerStore struct {
	db *gorm.DB
}

// NewGormCustomerStore creates a customer store backed by db.
func NewGormCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{db: db}
}

func (s *GormCustomerStore) Get(ctx context.Context, id string) (models.Customer, bool, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, false, nil
		}
		return models.Customer{}, false, fmt.Errorf("failed to load customer %s: %w", id, err)
	}
	return customer, true, nil
}

func (s *GormCustomerStore) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *GormCustomerStore) Save(ctx context.Context, customer models.Customer) (models.Customer, error) {
	// gorm's Save upserts on the primary key, matching the
	// insert-or-overwrite contract of the store.
	if err := s.db.WithContext(ctx).Save(&customer).Error; err != nil {
		return models.Customer{}, fmt.Errorf("failed to save customer %s: %w", customer.ID, err)
	}
	return customer, nil
}

func (s *GormCustomerStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	return nil
}

// GormAccountStore implements AccountStore on a GORM database.
type GormAccountStore struct {
	db *gorm.DB
}

// NewGormAccountStore creates an account store backed by db.
func NewGormAccountStore(db *gorm.DB) *GormAccountStore {
	return &GormAccountStore{db: db}
}

func (s *GormAccountStore) Get(ctx context.Context, id string) (models.Account, bool, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Account{}, false, nil
		}
		return models.Account{}, false, fmt.Errorf("failed to load account %s: %w", id, err)
	}
	return account, true, nil
}

func (s *GormAccountStore) GetAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *GormAccountStore) Save(ctx context.Context, account models.Account) (models.Account, error) {
	if err := s.db.WithContext(ctx).Save(&account).Error; err != nil {
		return models.Account{}, fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	return account, nil
}

func (s *GormAccountStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Account{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return nil
}
