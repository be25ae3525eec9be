package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. ServiceID is the business key.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceID   string          `gorm:"type:varchar(100);uniqueIndex:uniq_products_service_id;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Duration    int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// All returns every model the relational store migrates.
func All() []any {
	return []any{&AccountModel{}, &LedgerItemModel{}, &ProductModel{}}
}
