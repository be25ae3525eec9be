package memory

import (
	"context"
	"slices"

	"hosting/internal/domain/entity"
	"hosting/internal/domain/repository"
)

type productRepository struct {
	store *Store
}

// NewProductRepository returns a ProductRepository backed by store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, exists := repo.store.products[product.ServiceID]; exists {
		return repository.ErrProductExists
	}

	repo.store.products[product.ServiceID] = cloneProduct(product)
	repo.store.catalog = append(repo.store.catalog, product.ServiceID)

	return nil
}

func (repo *productRepository) FindByServiceID(ctx context.Context, serviceID string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	product, ok := repo.store.products[serviceID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(product), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	products := make([]*entity.Product, 0, len(repo.store.catalog))
	for _, serviceID := range repo.store.catalog {
		products = append(products, cloneProduct(repo.store.products[serviceID]))
	}

	return products, nil
}

// Update may rename the service ID; the new key must be free.
func (repo *productRepository) Update(ctx context.Context, serviceID string, update entity.ProductUpdate) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	current, ok := repo.store.products[serviceID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	updated := cloneProduct(current)
	update.Apply(updated)

	if updated.ServiceID != serviceID {
		if _, taken := repo.store.products[updated.ServiceID]; taken {
			return nil, repository.ErrProductExists
		}
		delete(repo.store.products, serviceID)
		repo.store.catalog[slices.Index(repo.store.catalog, serviceID)] = updated.ServiceID
	}
	repo.store.products[updated.ServiceID] = updated

	return cloneProduct(updated), nil
}

func (repo *productRepository) Delete(ctx context.Context, serviceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.products[serviceID]; !ok {
		return repository.ErrProductNotFound
	}

	delete(repo.store.products, serviceID)
	repo.store.catalog = slices.DeleteFunc(repo.store.catalog, func(id string) bool { return id == serviceID })

	return nil
}
