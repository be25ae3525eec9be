// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"hosting/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string // Empty means entity.RoleUser.
}

// LoginInput defines the data required to log in. Identifier carries the email.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// RegisterOutput is the public projection of the new account.
type RegisterOutput struct {
	Account entity.PublicAccount
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	AccountID   string
}

// AuthUsecase is the authentication boundary: it turns credentials into a
// token and a token back into the account id the dependent services trust.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Authorize returns the token subject. It does not check that the account still exists.
	Authorize(ctx context.Context, token string) (accountID string, err error)
}
