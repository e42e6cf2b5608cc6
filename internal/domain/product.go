package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	SKU         string              `gorm:"column:sku;type:text;not null" json:"sku"`
	Name        string              `gorm:"type:text;not null" json:"name"`
	Description *string             `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"price"`
	Currency    *string             `gorm:"type:text" json:"currency,omitempty"`
	ImageURL    *string             `gorm:"type:text" json:"image_url,omitempty"`
	ProductURL  *string             `gorm:"type:text" json:"product_url,omitempty"`
	StockQty    int                 `gorm:"not null" json:"stock_qty"`
	Tags        pq.StringArray      `gorm:"type:text[]" json:"tags"`
	UpdatedAt   time.Time           `gorm:"type:timestamp with time zone;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

type ProductFilter struct {
	TenantID uuid.UUID
	SKU      string
	Limit    int
	Offset   int
}
