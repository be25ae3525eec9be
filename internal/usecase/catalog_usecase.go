package usecase

import (
	"context"

	"hosting/internal/domain/entity"
)

// CatalogUsecase defines the product catalog operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, serviceID string, update entity.ProductUpdate) (*entity.Product, error)
	DeleteProduct(ctx context.Context, serviceID string) error
}
