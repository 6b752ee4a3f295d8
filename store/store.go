// Package store provides the keyed record stores the services persist into.
// Records are keyed by their caller-supplied id; Save is insert-or-overwrite
// and Delete of a missing id is a no-op. Each call is individually atomic,
// nothing spans calls.
package store

import (
	"context"

	"go-bankwebapp/models"
)

// CustomerStore persists customer records.
type CustomerStore interface {
	Get(ctx context.Context, id string) (models.Customer, bool, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	Save(ctx context.Context, customer models.Customer) (models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// AccountStore persists account records.
type AccountStore interface {
	Get(ctx context.Context, id string) (models.Account, bool, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, account models.Account) (models.Account, error)
	Delete(ctx context.Context, id string) error
}
