// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the authentication record of a registered customer.
// Username and Email are each unique across all accounts.
type Account struct {
	ID           string       // Opaque identifier assigned by the store on creation; immutable afterwards.
	Username     string       // Unique display/login name.
	Email        string       // Unique email address, the canonical login identifier.
	PasswordHash string       // bcrypt digest of the password. Never the plaintext, never sent to clients.
	Role         Role         // Carried as data only; no endpoint gates on it.
	CreatedAt    time.Time    // Set once when the account is created.
	Services     []LedgerItem // Hosting services the account subscribed to.
	Cart         []LedgerItem // Items waiting for checkout.
}

// PublicAccount is the projection of an Account that may leave the service.
type PublicAccount struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the outward-safe projection of the account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		Username: a.Username,
		Email:    a.Email,
	}
}

// Items returns the ledger list of the given kind.
func (a *Account) Items(kind LedgerKind) []LedgerItem {
	if kind == LedgerKindCart {
		return a.Cart
	}

	return a.Services
}
