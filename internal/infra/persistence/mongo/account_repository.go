package mongo

import (
	"context"

	"hosting/internal/domain/entity"
	"hosting/internal/domain/repository"
	"hosting/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// accountRepository implements repository.AccountRepository on the 'user_db' collection.
type accountRepository struct {
	coll *mongodriver.Collection
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *mongodriver.Database) repository.AccountRepository {
	return &accountRepository{coll: db.Collection(accountsCollection)}
}

func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrAccountNotFound
	}

	return repo.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, "failed to find account by id")
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}}, "failed to find account by email")
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}}

	return repo.findOne(ctx, filter, "failed to find account by username or email")
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.D, msg string) (*entity.Account, error) {
	var doc accountDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	account, err := toAccountDomain(&doc)
	if err != nil {
		return nil, errors.Wrap(err, msg)
	}

	return account, nil
}

// Create inserts the account. A unique index violation means a concurrent
// registration won the race.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	doc, err := fromAccountDomain(account)
	if err != nil {
		return err
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return repository.ErrAccountExists
		}

		return errors.Wrap(err, "failed to insert account")
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		account.ID = oid.Hex()
	}

	return nil
}

func (repo *accountRepository) PushItem(ctx context.Context, accountID string, kind entity.LedgerKind, item *entity.LedgerItem) error {
	oid, err := bson.ObjectIDFromHex(accountID)
	if err != nil {
		return repository.ErrAccountNotFound
	}

	doc, err := fromLedgerItem(&entity.LedgerItem{
		ServiceID: item.ServiceID,
		Price:     item.Price,
		Duration:  item.Duration,
	})
	if err != nil {
		return err
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$push", Value: bson.D{{Key: string(kind), Value: doc}}}},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s item", kind)
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}

	item.ID = doc.ID.Hex()

	return nil
}

func (repo *accountRepository) ListItems(ctx context.Context, accountID string, kind entity.LedgerKind) ([]entity.LedgerItem, error) {
	oid, err := bson.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, repository.ErrAccountNotFound
	}

	var doc accountDocument
	err = repo.coll.FindOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		options.FindOne().SetProjection(bson.D{{Key: string(kind), Value: 1}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrapf(err, "failed to list %s items", kind)
	}

	docs := doc.Services
	if kind == entity.LedgerKindCart {
		docs = doc.Cart
	}

	items, err := toLedgerDomain(docs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s items", kind)
	}

	return items, nil
}

// PullItem removes a sub-document by id. A matched account with nothing
// modified means the item was already gone.
func (repo *accountRepository) PullItem(ctx context.Context, accountID string, kind entity.LedgerKind, itemID string) error {
	oid, err := bson.ObjectIDFromHex(accountID)
	if err != nil {
		return repository.ErrAccountNotFound
	}
	itemOID, err := bson.ObjectIDFromHex(itemID)
	if err != nil {
		return repository.ErrItemNotFound
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: string(kind), Value: bson.D{{Key: "_id", Value: itemOID}}}}}},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to pull %s item", kind)
	}
	if result.MatchedCount == 0 {
		return repository.ErrAccountNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}
