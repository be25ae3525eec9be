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

// productRepository implements repository.ProductRepository on the 'service_db' collection.
type productRepository struct {
	coll *mongodriver.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongodriver.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

func byServiceID(serviceID string) bson.D {
	return bson.D{{Key: "serviceId", Value: serviceID}}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	doc, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return repository.ErrProductExists
		}

		return errors.Wrap(err, "failed to insert product")
	}

	return nil
}

func (repo *productRepository) FindByServiceID(ctx context.Context, serviceID string) (*entity.Product, error) {
	var doc productDocument
	if err := repo.coll.FindOne(ctx, byServiceID(serviceID)).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&doc)
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		product, err := toProductDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (repo *productRepository) Update(ctx context.Context, serviceID string, update entity.ProductUpdate) (*entity.Product, error) {
	set, err := productSetFields(update)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	err = repo.coll.FindOneAndUpdate(ctx,
		byServiceID(serviceID),
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, repository.ErrProductExists
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return toProductDomain(&doc)
}

func (repo *productRepository) Delete(ctx context.Context, serviceID string) error {
	result, err := repo.coll.DeleteOne(ctx, byServiceID(serviceID))
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
