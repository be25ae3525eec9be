package entity

import "github.com/shopspring/decimal"

// DefaultLedgerDuration is used when an item is added without a duration.
const DefaultLedgerDuration = 30

// LedgerKind names one of the two per-account item lists.
type LedgerKind string

const (
	// LedgerKindServices is the list of services an account subscribed to.
	LedgerKindServices LedgerKind = "services"
	// LedgerKindCart is the account's shopping cart.
	LedgerKindCart LedgerKind = "cart"
)

// IsValid checks if the LedgerKind is a known value.
func (k LedgerKind) IsValid() bool {
	switch k {
	case LedgerKindServices, LedgerKindCart:
		return true
	default:
		return false
	}
}

// LedgerItem is a sub-document owned by an account. ID is generated by the
// store when the item is pushed and is what removal addresses.
type LedgerItem struct {
	ID        string
	ServiceID string
	Price     decimal.Decimal
	Duration  int
}
