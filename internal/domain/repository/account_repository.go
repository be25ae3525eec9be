// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"hosting/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when a store-level uniqueness constraint rejects a new account.
	ErrAccountExists = errors.New("account with this username or email already exists")
	// ErrItemNotFound is returned when a ledger item cannot be removed because it is absent.
	ErrItemNotFound = errors.New("ledger item not found")
)

// AccountRepository is the credential store. It also owns the per-account
// ledger lists, which live inside the account document.
type AccountRepository interface {
	// FindByID retrieves an account by its store-assigned identifier.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// FindByEmail retrieves an account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsernameOrEmail retrieves any account whose username or email matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error)

	// Create persists a new account and sets its ID.
	Create(ctx context.Context, account *entity.Account) error

	// PushItem appends an item to one of the account's ledger lists and sets the item's ID.
	PushItem(ctx context.Context, accountID string, kind entity.LedgerKind, item *entity.LedgerItem) error

	// ListItems returns one of the account's ledger lists in insertion order.
	ListItems(ctx context.Context, accountID string, kind entity.LedgerKind) ([]entity.LedgerItem, error)

	// PullItem removes the item with the given ID from one of the account's ledger lists.
	PullItem(ctx context.Context, accountID string, kind entity.LedgerKind, itemID string) error
}
