package postgres

import (
	"hosting/internal/domain/entity"
	"hosting/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
		CreatedAt:    account.CreatedAt,
	}
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:           accountM.ID.String(),
		Username:     accountM.Username,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		Role:         entity.RoleOrDefault(accountM.Role),
		CreatedAt:    accountM.CreatedAt,
		Services:     []entity.LedgerItem{},
		Cart:         []entity.LedgerItem{},
	}

	for _, itemM := range accountM.Items {
		item := toLedgerItem(&itemM)
		if entity.LedgerKind(itemM.Kind) == entity.LedgerKindCart {
			account.Cart = append(account.Cart, item)
		} else {
			account.Services = append(account.Services, item)
		}
	}

	return account
}

func fromLedgerItem(accountID uuid.UUID, kind entity.LedgerKind, item *entity.LedgerItem) *model.LedgerItemModel {
	return &model.LedgerItemModel{
		AccountID: accountID,
		Kind:      string(kind),
		ServiceID: item.ServiceID,
		Price:     item.Price,
		Duration:  item.Duration,
	}
}

func toLedgerItem(itemM *model.LedgerItemModel) entity.LedgerItem {
	return entity.LedgerItem{
		ID:        itemM.ID.String(),
		ServiceID: itemM.ServiceID,
		Price:     itemM.Price,
		Duration:  itemM.Duration,
	}
}

func toLedgerDomain(itemsM []model.LedgerItemModel) []entity.LedgerItem {
	items := make([]entity.LedgerItem, 0, len(itemsM))
	for i := range itemsM {
		items = append(items, toLedgerItem(&itemsM[i]))
	}

	return items
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ServiceID:   product.ServiceID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Duration:    product.Duration,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ServiceID:   productM.ServiceID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		Duration:    productM.Duration,
	}
}

// productUpdateColumns maps the present fields of update to column values.
func productUpdateColumns(update entity.ProductUpdate) map[string]any {
	columns := make(map[string]any)
	if update.ServiceID != nil {
		columns["service_id"] = *update.ServiceID
	}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Price != nil {
		columns["price"] = *update.Price
	}
	if update.Duration != nil {
		columns["duration"] = *update.Duration
	}

	return columns
}
