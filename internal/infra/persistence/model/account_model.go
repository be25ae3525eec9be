// Package model holds the GORM persistence models of the relational store.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex:uniq_accounts_username;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:uniq_accounts_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:user"`
	CreatedAt    time.Time

	Items []LedgerItemModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// LedgerItemModel mirrors the 'ledger_items' table. Kind separates the
// services list from the cart; Seq keeps insertion order.
type LedgerItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq       int64           `gorm:"type:bigserial;<-:false"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_items_account_kind,priority:1"`
	Kind      string          `gorm:"type:varchar(16);not null;index:idx_ledger_items_account_kind,priority:2"`
	ServiceID string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Duration  int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LedgerItemModel) TableName() string {
	return "ledger_items"
}
