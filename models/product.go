package models

import (
	"gorm.io/datatypes"
)

// ═══════════════════════════════════════════════════════════
// Catalog Product Model (GORM + remote table JSON shape)
// ═══════════════════════════════════════════════════════════

// Product is one catalog item. JSON tags match the column names of the
// hosted products table, so the same struct decodes REST responses and
// maps onto the Postgres source.
//
// Optional numeric fields are pointers: a nil Price renders as
// "price unavailable" downstream, a nil SortOrder sorts last.
type Product struct {
	ID          string         `json:"id" gorm:"type:text;primaryKey"`
	Name        string         `json:"name" gorm:"not null;index"`
	Price       *float64       `json:"price" gorm:"type:numeric(12,2);check:price >= 0"`
	Image       string         `json:"img" gorm:"column:img"`
	Category    string         `json:"category" gorm:"index"`
	Subcategory string         `json:"subcategory" gorm:"index"`
	Producer    string         `json:"producer" gorm:"index"`
	Description string         `json:"description"`
	Slug        string         `json:"slug" gorm:"index"`
	InBox       string         `json:"inBox" gorm:"column:in_box"`
	Archived    bool           `json:"archived" gorm:"not null;default:false;index"`
	SortOrder   *int           `json:"order" gorm:"column:sort_order;index"`
	Meta        datatypes.JSON `json:"meta,omitempty" gorm:"type:jsonb"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// PriceValue returns the price with a nil price treated as 0,
// the defaulting used for sorting and cart totals.
func (p *Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
