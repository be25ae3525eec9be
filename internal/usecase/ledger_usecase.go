package usecase

import (
	"context"

	"hosting/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddItemInput describes an item added to the services list or the cart.
type AddItemInput struct {
	ServiceID string
	Price     decimal.Decimal
	Duration  int // Zero means entity.DefaultLedgerDuration.
}

// LedgerUsecase manages the per-account services list and cart. The account
// id always comes from an authorized token.
type LedgerUsecase interface {
	AddItem(ctx context.Context, accountID string, kind entity.LedgerKind, input *AddItemInput) (*entity.LedgerItem, error)
	ListItems(ctx context.Context, accountID string, kind entity.LedgerKind) ([]entity.LedgerItem, error)
	RemoveItem(ctx context.Context, accountID string, kind entity.LedgerKind, itemID string) error
}
