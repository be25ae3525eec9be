package repository

import (
	"context"

	"hosting/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when no product has the requested service ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductExists is returned when a service ID is already taken.
	ErrProductExists = errors.New("product already exists")
)

// ProductRepository defines the catalog persistence operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByServiceID retrieves a product by its business key.
	FindByServiceID(ctx context.Context, serviceID string) (*entity.Product, error)

	// List returns every product in the catalog.
	List(ctx context.Context) ([]*entity.Product, error)

	// Update applies the present fields of update and returns the stored result.
	Update(ctx context.Context, serviceID string, update entity.ProductUpdate) (*entity.Product, error)

	// Delete removes a product by its business key.
	Delete(ctx context.Context, serviceID string) error
}
