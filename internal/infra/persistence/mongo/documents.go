package mongo

import (
	"time"

	"hosting/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection names are shared with the deployments that predate this service.
const (
	accountsCollection = "user_db"
	productsCollection = "service_db"
)

// accountDocument mirrors a document of the 'user_db' collection. The ledger
// lists are embedded sub-documents, each with its own ObjectID.
type accountDocument struct {
	ID           bson.ObjectID    `bson:"_id,omitempty"`
	Username     string           `bson:"username"`
	Email        string           `bson:"email"`
	PasswordHash string           `bson:"password"`
	Role         string           `bson:"role"`
	CreatedAt    time.Time        `bson:"createdAt"`
	Services     []ledgerDocument `bson:"services"`
	Cart         []ledgerDocument `bson:"cart"`
}

// Price fields are written as Decimal128 and read back from any numeric BSON
// type, since older documents store prices as doubles.
type ledgerDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	ServiceID string        `bson:"serviceId"`
	Price     any           `bson:"price"`
	Duration  int           `bson:"duration"`
}

// productDocument mirrors a document of the 'service_db' collection.
type productDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	ServiceID   string        `bson:"serviceId"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	Price       any           `bson:"price"`
	Duration    int           `bson:"duration"`
}

func toDecimal128(d decimal.Decimal) (bson.Decimal128, error) {
	d128, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return bson.Decimal128{}, errors.Wrapf(err, "price %s does not fit decimal128", d.String())
	}

	return d128, nil
}

// fromStoredPrice decodes a price field. An absent field reads as zero.
func fromStoredPrice(v any) (decimal.Decimal, error) {
	switch price := v.(type) {
	case nil:
		return decimal.Zero, nil
	case bson.Decimal128:
		if price == (bson.Decimal128{}) {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(price.String())
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "invalid stored price %s", price.String())
		}

		return d, nil
	case float64:
		return decimal.NewFromFloat(price), nil
	case int32:
		return decimal.NewFromInt32(price), nil
	case int64:
		return decimal.NewFromInt(price), nil
	default:
		return decimal.Zero, errors.Errorf("unsupported stored price type %T", v)
	}
}

func fromAccountDomain(account *entity.Account) (*accountDocument, error) {
	services, err := fromLedgerDomain(account.Services)
	if err != nil {
		return nil, err
	}
	cart, err := fromLedgerDomain(account.Cart)
	if err != nil {
		return nil, err
	}

	doc := &accountDocument{
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
		CreatedAt:    account.CreatedAt,
		Services:     services,
		Cart:         cart,
	}
	if account.ID != "" {
		oid, err := bson.ObjectIDFromHex(account.ID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid account id")
		}
		doc.ID = oid
	}

	return doc, nil
}

func toAccountDomain(doc *accountDocument) (*entity.Account, error) {
	services, err := toLedgerDomain(doc.Services)
	if err != nil {
		return nil, err
	}
	cart, err := toLedgerDomain(doc.Cart)
	if err != nil {
		return nil, err
	}

	return &entity.Account{
		ID:           doc.ID.Hex(),
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         entity.RoleOrDefault(doc.Role),
		CreatedAt:    doc.CreatedAt,
		Services:     services,
		Cart:         cart,
	}, nil
}

func fromLedgerItem(item *entity.LedgerItem) (ledgerDocument, error) {
	price, err := toDecimal128(item.Price)
	if err != nil {
		return ledgerDocument{}, err
	}

	doc := ledgerDocument{
		ServiceID: item.ServiceID,
		Price:     price,
		Duration:  item.Duration,
	}
	if item.ID != "" {
		oid, err := bson.ObjectIDFromHex(item.ID)
		if err != nil {
			return ledgerDocument{}, errors.Wrap(err, "invalid ledger item id")
		}
		doc.ID = oid
	} else {
		doc.ID = bson.NewObjectID()
	}

	return doc, nil
}

func fromLedgerDomain(items []entity.LedgerItem) ([]ledgerDocument, error) {
	docs := make([]ledgerDocument, 0, len(items))
	for i := range items {
		doc, err := fromLedgerItem(&items[i])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func toLedgerDomain(docs []ledgerDocument) ([]entity.LedgerItem, error) {
	items := make([]entity.LedgerItem, 0, len(docs))
	for _, doc := range docs {
		price, err := fromStoredPrice(doc.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.LedgerItem{
			ID:        doc.ID.Hex(),
			ServiceID: doc.ServiceID,
			Price:     price,
			Duration:  doc.Duration,
		})
	}

	return items, nil
}

func fromProductDomain(product *entity.Product) (*productDocument, error) {
	price, err := toDecimal128(product.Price)
	if err != nil {
		return nil, err
	}

	return &productDocument{
		ServiceID:   product.ServiceID,
		Name:        product.Name,
		Description: product.Description,
		Price:       price,
		Duration:    product.Duration,
	}, nil
}

func toProductDomain(doc *productDocument) (*entity.Product, error) {
	price, err := fromStoredPrice(doc.Price)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ServiceID:   doc.ServiceID,
		Name:        doc.Name,
		Description: doc.Description,
		Price:       price,
		Duration:    doc.Duration,
	}, nil
}

// productSetFields builds the $set document for the present fields of update.
func productSetFields(update entity.ProductUpdate) (bson.D, error) {
	set := bson.D{}
	if update.ServiceID != nil {
		set = append(set, bson.E{Key: "serviceId", Value: *update.ServiceID})
	}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Price != nil {
		price, err := toDecimal128(*update.Price)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "price", Value: price})
	}
	if update.Duration != nil {
		set = append(set, bson.E{Key: "duration", Value: *update.Duration})
	}

	return set, nil
}
