// Package memory keeps accounts and the catalog in process memory. It backs
// local runs and end-to-end tests; nothing survives a restart.
package memory

import (
	"sync"

	"hosting/internal/domain/entity"

	"github.com/google/uuid"
)

// Store is the shared in-memory state behind both repositories.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
	order    []string // account ids in insertion order
	products map[string]*entity.Product
	catalog  []string // service ids in insertion order
	newID    func() string
}

// NewStore creates an empty store that assigns UUIDv4 identifiers.
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*entity.Account),
		products: make(map[string]*entity.Product),
		newID:    func() string { return uuid.NewString() },
	}
}

func cloneAccount(a *entity.Account) *entity.Account {
	out := *a
	out.Services = cloneItems(a.Services)
	out.Cart = cloneItems(a.Cart)

	return &out
}

func cloneItems(items []entity.LedgerItem) []entity.LedgerItem {
	out := make([]entity.LedgerItem, len(items))
	copy(out, items)

	return out
}

func cloneProduct(p *entity.Product) *entity.Product {
	out := *p

	return &out
}
