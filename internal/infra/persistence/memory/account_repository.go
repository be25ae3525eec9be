package memory

import (
	"context"
	"slices"

	"hosting/internal/domain/entity"
	"hosting/internal/domain/repository"
)

type accountRepository struct {
	store *Store
}

// NewAccountRepository returns an AccountRepository backed by store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	account, ok := repo.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findFirst(ctx, func(a *entity.Account) bool {
		return a.Email == email
	})
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error) {
	return repo.findFirst(ctx, func(a *entity.Account) bool {
		return a.Username == username || a.Email == email
	})
}

func (repo *accountRepository) findFirst(ctx context.Context, match func(*entity.Account) bool) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, id := range repo.store.order {
		if account := repo.store.accounts[id]; match(account) {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// Create enforces username and email uniqueness under the write lock.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return repository.ErrAccountExists
		}
	}

	account.ID = repo.store.newID()
	repo.store.accounts[account.ID] = cloneAccount(account)
	repo.store.order = append(repo.store.order, account.ID)

	return nil
}

func (repo *accountRepository) PushItem(ctx context.Context, accountID string, kind entity.LedgerKind, item *entity.LedgerItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	account, ok := repo.store.accounts[accountID]
	if !ok {
		return repository.ErrAccountNotFound
	}

	item.ID = repo.store.newID()
	if kind == entity.LedgerKindCart {
		account.Cart = append(account.Cart, *item)
	} else {
		account.Services = append(account.Services, *item)
	}

	return nil
}

func (repo *accountRepository) ListItems(ctx context.Context, accountID string, kind entity.LedgerKind) ([]entity.LedgerItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	account, ok := repo.store.accounts[accountID]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneItems(account.Items(kind)), nil
}

func (repo *accountRepository) PullItem(ctx context.Context, accountID string, kind entity.LedgerKind, itemID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	account, ok := repo.store.accounts[accountID]
	if !ok {
		return repository.ErrAccountNotFound
	}

	items := account.Items(kind)
	idx := slices.IndexFunc(items, func(it entity.LedgerItem) bool { return it.ID == itemID })
	if idx < 0 {
		return repository.ErrItemNotFound
	}

	items = slices.Delete(items, idx, idx+1)
	if kind == entity.LedgerKindCart {
		account.Cart = items
	} else {
		account.Services = items
	}

	return nil
}
