package postgres

import (
	"context"

	"hosting/internal/domain/entity"
	"hosting/internal/domain/repository"
	"hosting/internal/errors"
	"hosting/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves an account with both ledger lists.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrAccountNotFound
	}

	return repo.first(ctx, "failed to find account by id", "id = ?", accountID)
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(ctx, "failed to find account by email", "email = ?", email)
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error) {
	return repo.first(ctx, "failed to find account by username or email", "username = ? OR email = ?", username, email)
}

func (repo *accountRepository) first(ctx context.Context, msg string, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where(query, args...).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toAccountDomain(&accountM), nil
}

// Create inserts the account row. The unique indexes on username and email
// reject a concurrent duplicate.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.ID = uuid.New()

	if err := repo.db.WithContext(ctx).Omit("Items").Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountExists
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = accountM.ID.String()

	return nil
}

// PushItem inserts a ledger row. The foreign key rejects unknown accounts.
func (repo *accountRepository) PushItem(ctx context.Context, accountID string, kind entity.LedgerKind, item *entity.LedgerItem) error {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return repository.ErrAccountNotFound
	}

	itemM := fromLedgerItem(ownerID, kind, item)
	itemM.ID = uuid.New()

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return errors.Wrapf(err, "failed to push %s item", kind)
	}

	item.ID = itemM.ID.String()

	return nil
}

func (repo *accountRepository) ListItems(ctx context.Context, accountID string, kind entity.LedgerKind) ([]entity.LedgerItem, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, repository.ErrAccountNotFound
	}

	var itemsM []model.LedgerItemModel
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := accountExists(tx, ownerID); err != nil {
			return err
		}

		return tx.Where("account_id = ? AND kind = ?", ownerID, string(kind)).
			Order("seq").
			Find(&itemsM).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, err
		}

		return nil, errors.Wrapf(err, "failed to list %s items", kind)
	}

	return toLedgerDomain(itemsM), nil
}

// PullItem deletes one ledger row of the account.
func (repo *accountRepository) PullItem(ctx context.Context, accountID string, kind entity.LedgerKind, itemID string) error {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return repository.ErrAccountNotFound
	}
	rowID, err := uuid.Parse(itemID)
	if err != nil {
		return repository.ErrItemNotFound
	}

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := accountExists(tx, ownerID); err != nil {
			return err
		}

		result := tx.Where("id = ? AND account_id = ? AND kind = ?", rowID, ownerID, string(kind)).
			Delete(&model.LedgerItemModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrItemNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) || errors.Is(err, repository.ErrItemNotFound) {
			return err
		}

		return errors.Wrapf(err, "failed to pull %s item", kind)
	}

	return nil
}

func accountExists(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&model.AccountModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
