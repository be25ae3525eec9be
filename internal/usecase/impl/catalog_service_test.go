package impl

import (
	"context"
	"testing"

	"hosting/internal/domain/entity"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/domain/repository"
	mockRepo "hosting/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (*catalogService, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	}).(*catalogService)

	return srv, productRepo
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ServiceID: "vps-s", Name: "Small VPS", Price: decimal.RequireFromString("9.99"), Duration: 30}

	t.Run("created", func(t *testing.T) {
		srv, repo := createTestCatalogService(t)
		repo.EXPECT().Create(ctx, product).Return(nil)

		created, err := srv.CreateProduct(ctx, product)
		require.NoError(t, err)
		assert.Same(t, product, created)
	})

	t.Run("duplicate service id", func(t *testing.T) {
		srv, repo := createTestCatalogService(t)
		repo.EXPECT().Create(ctx, product).Return(repository.ErrProductExists)

		_, err := srv.CreateProduct(ctx, product)
		assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)
	})

	t.Run("store failure", func(t *testing.T) {
		srv, repo := createTestCatalogService(t)
		repo.EXPECT().Create(ctx, product).Return(errors.New("disk full"))

		_, err := srv.CreateProduct(ctx, product)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	srv, repo := createTestCatalogService(t)
	products := []*entity.Product{{ServiceID: "a"}, {ServiceID: "b"}}
	repo.EXPECT().List(ctx).Return(products, nil)

	got, err := srv.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	name := "Bigger VPS"
	renamed := "vps-m"

	t.Run("empty update never reaches the store", func(t *testing.T) {
		srv, _ := createTestCatalogService(t)

		_, err := srv.UpdateProduct(ctx, "vps-s", entity.ProductUpdate{})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyUpdate)
	})

	t.Run("partial update", func(t *testing.T) {
		srv, repo := createTestCatalogService(t)
		repo.EXPECT().
			Update(ctx, "vps-s", mock.MatchedBy(func(u entity.ProductUpdate) bool {
				return u.Name != nil && *u.Name == name && u.Price == nil
			})).
			Return(&entity.Product{ServiceID: "vps-s", Name: name}, nil)

		updated, err := srv.UpdateProduct(ctx, "vps-s", entity.ProductUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		srv, repo := createTestCatalogService(t)
		repo.EXPECT().Update(ctx, "nope", mock.Anything).Return(nil, repository.ErrProductNotFound)

		_, err := srv.UpdateProduct(ctx, "nope", entity.ProductUpdate{Name: &name})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("rename onto taken service id", func(t *testing.T) {
		srv, repo := createTestCatalogService(t)
		repo.EXPECT().Update(ctx, "vps-s", mock.Anything).Return(nil, repository.ErrProductExists)

		_, err := srv.UpdateProduct(ctx, "vps-s", entity.ProductUpdate{ServiceID: &renamed})
		assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	srv, repo := createTestCatalogService(t)
	repo.EXPECT().Delete(ctx, "vps-s").Return(nil).Once()
	repo.EXPECT().Delete(ctx, "vps-s").Return(repository.ErrProductNotFound).Once()

	require.NoError(t, srv.DeleteProduct(ctx, "vps-s"))
	assert.ErrorIs(t, srv.DeleteProduct(ctx, "vps-s"), domainerrors.ErrProductNotFound)
}
