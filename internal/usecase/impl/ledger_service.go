package impl

import (
	"context"
	"log/slog"

	deliverycontext "hosting/internal/delivery/context"
	"hosting/internal/domain/entity"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/domain/repository"
	"hosting/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ledgerService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *ledgerService) AddItem(ctx context.Context, accountID string, kind entity.LedgerKind, input *usecase.AddItemInput) (*entity.LedgerItem, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown ledger %q", kind)
	}

	duration := input.Duration
	if duration == 0 {
		duration = entity.DefaultLedgerDuration
	}

	item := &entity.LedgerItem{
		ServiceID: input.ServiceID,
		Price:     input.Price,
		Duration:  duration,
	}

	if err := srv.accountRepo.PushItem(ctx, accountID, kind, item); err != nil {
		return nil, srv.mapError(err, kind, "failed to add ledger item")
	}

	srv.log(ctx).Info("Ledger item added",
		slog.String("accountID", accountID),
		slog.String("ledger", string(kind)),
		slog.String("serviceID", item.ServiceID),
	)

	return item, nil
}

func (srv *ledgerService) ListItems(ctx context.Context, accountID string, kind entity.LedgerKind) ([]entity.LedgerItem, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown ledger %q", kind)
	}

	items, err := srv.accountRepo.ListItems(ctx, accountID, kind)
	if err != nil {
		return nil, srv.mapError(err, kind, "failed to list ledger items")
	}

	return items, nil
}

func (srv *ledgerService) RemoveItem(ctx context.Context, accountID string, kind entity.LedgerKind, itemID string) error {
	if !kind.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown ledger %q", kind)
	}

	if err := srv.accountRepo.PullItem(ctx, accountID, kind, itemID); err != nil {
		return srv.mapError(err, kind, "failed to remove ledger item")
	}

	srv.log(ctx).Info("Ledger item removed",
		slog.String("accountID", accountID),
		slog.String("ledger", string(kind)),
		slog.String("itemID", itemID),
	)

	return nil
}

func (srv *ledgerService) mapError(err error, kind entity.LedgerKind, msg string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrAccountNotFound, msg)
	case errors.Is(err, repository.ErrItemNotFound):
		if kind == entity.LedgerKindCart {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, msg)
		}

		return errors.Wrap(domainerrors.ErrServiceItemNotFound, msg)
	default:
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
}
