package entity

import "github.com/shopspring/decimal"

// Product is a hosting service offered in the catalog. ServiceID is the
// business key clients use to address it.
type Product struct {
	ServiceID   string          `json:"serviceId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"` // Billing period in days.
}

// ProductUpdate carries a partial product change. Nil fields are left untouched.
type ProductUpdate struct {
	ServiceID   *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Duration    *int
}

// IsEmpty reports whether the update would change nothing.
func (u ProductUpdate) IsEmpty() bool {
	return u.ServiceID == nil &&
		u.Name == nil &&
		u.Description == nil &&
		u.Price == nil &&
		u.Duration == nil
}

// Apply merges the present fields of the update into p.
func (u ProductUpdate) Apply(p *Product) {
	if u.ServiceID != nil {
		p.ServiceID = *u.ServiceID
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Duration != nil {
		p.Duration = *u.Duration
	}
}
