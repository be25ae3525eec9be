package impl

import (
	"context"
	"testing"
	"time"

	"hosting/internal/domain/entity"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/infra/auth"
	"hosting/internal/infra/persistence/memory"
	"hosting/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type accountFlow struct {
	auth   usecase.AuthUsecase
	ledger usecase.LedgerUsecase
	clock  *steppingClock
}

func newAccountFlow(t *testing.T, store *memory.Store) accountFlow {
	t.Helper()

	clock := &steppingClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens, err := auth.NewJWTServiceWithClock("flow-test-secret", "HS256", clock.Now)
	require.NoError(t, err)

	accounts := memory.NewAccountRepository(store)
	logger := newDiscardLogger()

	return accountFlow{
		auth: NewAuthService(AuthServiceParams{
			AccountRepo:  accounts,
			Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
			TokenService: tokens,
			Logger:       logger,
		}),
		ledger: NewLedgerService(LedgerServiceParams{AccountRepo: accounts, Logger: logger}),
		clock:  clock,
	}
}

func TestAccountFlow_RegisterLoginAndExpire(t *testing.T) {
	ctx := context.Background()
	flow := newAccountFlow(t, memory.NewStore())

	registered, err := flow.auth.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "a@x.io", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Account.Username)

	_, err = flow.auth.Register(ctx, &usecase.RegisterInput{Username: "alice2", Email: "a@x.io", Password: "other"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)

	_, err = flow.auth.Login(ctx, &usecase.LoginInput{Identifier: "a@x.io", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	login, err := flow.auth.Login(ctx, &usecase.LoginInput{Identifier: "a@x.io", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, flow.clock.Now().Add(10*time.Minute), login.ExpiresAt)

	accountID, err := flow.auth.Authorize(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.AccountID, accountID)

	flow.clock.Advance(10*time.Minute + time.Second)

	_, err = flow.auth.Authorize(ctx, login.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAccountFlow_LedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	flow := newAccountFlow(t, memory.NewStore())

	_, err := flow.auth.Register(ctx, &usecase.RegisterInput{Username: "bob", Email: "b@x.io", Password: "pw"})
	require.NoError(t, err)
	login, err := flow.auth.Login(ctx, &usecase.LoginInput{Identifier: "b@x.io", Password: "pw"})
	require.NoError(t, err)

	first, err := flow.ledger.AddItem(ctx, login.AccountID, entity.LedgerKindCart, &usecase.AddItemInput{ServiceID: "vps-s", Price: decimal.RequireFromString("9.99")})
	require.NoError(t, err)
	second, err := flow.ledger.AddItem(ctx, login.AccountID, entity.LedgerKindCart, &usecase.AddItemInput{ServiceID: "vps-s", Price: decimal.RequireFromString("9.99")})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := flow.ledger.ListItems(ctx, login.AccountID, entity.LedgerKindCart)
	require.NoError(t, err)
	require.Len(t, items, 2)

	services, err := flow.ledger.ListItems(ctx, login.AccountID, entity.LedgerKindServices)
	require.NoError(t, err)
	assert.Empty(t, services)

	require.NoError(t, flow.ledger.RemoveItem(ctx, login.AccountID, entity.LedgerKindCart, first.ID))
	err = flow.ledger.RemoveItem(ctx, login.AccountID, entity.LedgerKindCart, first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)

	items, err = flow.ledger.ListItems(ctx, login.AccountID, entity.LedgerKindCart)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

// Authorize checks only the token. A token minted for an account that the
// current store does not hold still authorizes; ledger operations then fail
// with account not found.
func TestAccountFlow_TokenOutlivesAccount(t *testing.T) {
	ctx := context.Background()
	flow := newAccountFlow(t, memory.NewStore())

	_, err := flow.auth.Register(ctx, &usecase.RegisterInput{Username: "carol", Email: "c@x.io", Password: "pw"})
	require.NoError(t, err)
	login, err := flow.auth.Login(ctx, &usecase.LoginInput{Identifier: "c@x.io", Password: "pw"})
	require.NoError(t, err)

	wiped := newAccountFlow(t, memory.NewStore())

	accountID, err := wiped.auth.Authorize(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.AccountID, accountID)

	_, err = wiped.ledger.ListItems(ctx, accountID, entity.LedgerKindServices)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
