package memory

import (
	"context"
	"sync"
	"testing"

	"hosting/internal/domain/entity"
	"hosting/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewStore())

	account := &entity.Account{Username: "alice", Email: "alice@example.com", PasswordHash: "digest", Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, account))
	assert.NotEmpty(t, account.ID)

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	byUsername, err := repo.FindByUsernameOrEmail(ctx, "alice", "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byUsername.ID)

	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_CreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewStore())

	require.NoError(t, repo.Create(ctx, &entity.Account{Username: "alice", Email: "alice@example.com"}))

	err := repo.Create(ctx, &entity.Account{Username: "alice2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, repository.ErrAccountExists)

	err = repo.Create(ctx, &entity.Account{Username: "alice", Email: "alice2@example.com"})
	assert.ErrorIs(t, err, repository.ErrAccountExists)
}

func TestAccountRepository_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewStore())

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, &entity.Account{Username: string(rune('a' + i)), Email: "same@example.com"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewStore())

	account := &entity.Account{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	found.Email = "changed@example.com"

	again, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", again.Email)
}

func TestAccountRepository_Ledger(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewStore())

	account := &entity.Account{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, account))

	first := &entity.LedgerItem{ServiceID: "vps-small", Price: decimal.RequireFromString("9.99"), Duration: 30}
	second := &entity.LedgerItem{ServiceID: "vps-large", Price: decimal.RequireFromString("29.50"), Duration: 90}
	require.NoError(t, repo.PushItem(ctx, account.ID, entity.LedgerKindCart, first))
	require.NoError(t, repo.PushItem(ctx, account.ID, entity.LedgerKindCart, second))
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	cart, err := repo.ListItems(ctx, account.ID, entity.LedgerKindCart)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, "vps-small", cart[0].ServiceID)
	assert.Equal(t, "vps-large", cart[1].ServiceID)

	services, err := repo.ListItems(ctx, account.ID, entity.LedgerKindServices)
	require.NoError(t, err)
	assert.Empty(t, services)

	require.NoError(t, repo.PullItem(ctx, account.ID, entity.LedgerKindCart, first.ID))
	err = repo.PullItem(ctx, account.ID, entity.LedgerKindCart, first.ID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	err = repo.PullItem(ctx, account.ID, entity.LedgerKindServices, second.ID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	cart, err = repo.ListItems(ctx, account.ID, entity.LedgerKindCart)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, second.ID, cart[0].ID)

	err = repo.PushItem(ctx, "missing", entity.LedgerKindServices, &entity.LedgerItem{ServiceID: "x"})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	_, err = repo.ListItems(ctx, "missing", entity.LedgerKindServices)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewAccountRepository(NewStore())
	err := repo.Create(ctx, &entity.Account{Username: "alice", Email: "alice@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())

	vps := &entity.Product{ServiceID: "vps-small", Name: "VPS", Price: decimal.RequireFromString("9.99"), Duration: 30}
	require.NoError(t, repo.Create(ctx, vps))
	require.NoError(t, repo.Create(ctx, &entity.Product{ServiceID: "mail", Name: "Mail"}))

	err := repo.Create(ctx, &entity.Product{ServiceID: "vps-small"})
	assert.ErrorIs(t, err, repository.ErrProductExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "vps-small", list[0].ServiceID)

	name := "VPS Small"
	updated, err := repo.Update(ctx, "vps-small", entity.ProductUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "VPS Small", updated.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(updated.Price))
	assert.Equal(t, 30, updated.Duration)

	_, err = repo.Update(ctx, "nope", entity.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	taken := "mail"
	_, err = repo.Update(ctx, "vps-small", entity.ProductUpdate{ServiceID: &taken})
	assert.ErrorIs(t, err, repository.ErrProductExists)

	renamed := "vps-s"
	_, err = repo.Update(ctx, "vps-small", entity.ProductUpdate{ServiceID: &renamed})
	require.NoError(t, err)
	_, err = repo.FindByServiceID(ctx, "vps-small")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	found, err := repo.FindByServiceID(ctx, "vps-s")
	require.NoError(t, err)
	assert.Equal(t, "VPS Small", found.Name)

	require.NoError(t, repo.Delete(ctx, "vps-s"))
	assert.ErrorIs(t, repo.Delete(ctx, "vps-s"), repository.ErrProductNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "mail", list[0].ServiceID)
}
