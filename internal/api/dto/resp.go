package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenantResponse never carries the tenant's public token.
type TenantResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme Outdoor"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// ProvisionedTenantResponse is returned once, when the tenant is created. It
// is the only place the public token is ever exposed.
type ProvisionedTenantResponse struct {
	ID          uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Acme Outdoor"`
	PublicToken string    `json:"public_token" example:"Jr0yQ4m9n2o0zBqS3jH7yqv8o5eUuX1k"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type OffboardResponse struct {
	TenantID uuid.UUID `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status   string    `json:"status" example:"queued"`
}

type ProductResponse struct {
	ID          uuid.UUID        `json:"id" example:"9b2f2a0e-1c4e-4f64-9a53-1f3e4c2b8d10"`
	SKU         string           `json:"sku" example:"TENT-2P"`
	Name        string           `json:"name" example:"Two person tent"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"249.90"`
	Currency    *string          `json:"currency,omitempty" example:"EUR"`
	ImageURL    *string          `json:"image_url,omitempty"`
	ProductURL  *string          `json:"product_url,omitempty"`
	StockQty    int              `json:"stock_qty" example:"12"`
	Tags        []string         `json:"tags"`
	UpdatedAt   time.Time        `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit" example:"50"`
	Offset   int               `json:"offset" example:"0"`
}

type DocumentResponse struct {
	ID        uuid.UUID `json:"id" example:"1f0e8b8a-7a0c-4d6e-a5e4-52f6f1c1d0aa"`
	Title     string    `json:"title" example:"Shipping policy"`
	Content   string    `json:"content" example:"We ship within 3 business days."`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Limit     int                `json:"limit" example:"50"`
	Offset    int                `json:"offset" example:"0"`
}

type ChunkResponse struct {
	ID           uuid.UUID `json:"id"`
	DocumentID   uuid.UUID `json:"document_id"`
	ChunkIndex   int       `json:"chunk_index" example:"0"`
	Content      string    `json:"content"`
	SourceTitle  *string   `json:"source_title,omitempty"`
	HasEmbedding bool      `json:"has_embedding" example:"true"`
	CreatedAt    time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type ChunkListResponse struct {
	DocumentID uuid.UUID       `json:"document_id"`
	Chunks     []ChunkResponse `json:"chunks"`
}
