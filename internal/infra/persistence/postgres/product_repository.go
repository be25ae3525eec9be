package postgres

import (
	"context"

	"hosting/internal/domain/entity"
	"hosting/internal/domain/repository"
	"hosting/internal/errors"
	"hosting/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements repository.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = uuid.New()

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProductExists
		}

		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) FindByServiceID(ctx context.Context, serviceID string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("service_id = ?", serviceID).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productsM []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("service_id").Find(&productsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// Update writes only the present fields and returns the stored row.
func (repo *productRepository) Update(ctx context.Context, serviceID string, update entity.ProductUpdate) (*entity.Product, error) {
	var productM model.ProductModel
	result := repo.db.WithContext(ctx).
		Model(&productM).
		Clauses(clause.Returning{}).
		Where("service_id = ?", serviceID).
		Updates(productUpdateColumns(update))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrProductExists
		}

		return nil, errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Delete(ctx context.Context, serviceID string) error {
	result := repo.db.WithContext(ctx).Where("service_id = ?", serviceID).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
