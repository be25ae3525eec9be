package impl

import (
	"context"
	"log/slog"

	deliverycontext "hosting/internal/delivery/context"
	"hosting/internal/domain/entity"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/domain/repository"
	"hosting/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductExists) {
			return nil, errors.Wrapf(domainerrors.ErrProductAlreadyExists, "service id %q", product.ServiceID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("serviceID", product.ServiceID))

	return product, nil
}

// UpdateProduct overwrites only the fields present in update.
func (srv *catalogService) UpdateProduct(ctx context.Context, serviceID string, update entity.ProductUpdate) (*entity.Product, error) {
	if update.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrEmptyUpdate)
	}

	product, err := srv.productRepo.Update(ctx, serviceID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "service id %q", serviceID)
		case errors.Is(err, repository.ErrProductExists):
			return nil, errors.Wrapf(domainerrors.ErrProductAlreadyExists, "renaming service id %q", serviceID)
		default:
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
		}
	}

	srv.log(ctx).Info("Product updated", slog.String("serviceID", product.ServiceID))

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, serviceID string) error {
	if err := srv.productRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrapf(domainerrors.ErrProductNotFound, "service id %q", serviceID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("serviceID", serviceID))

	return nil
}
