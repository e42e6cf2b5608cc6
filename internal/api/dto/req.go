package dto

import (
	"github.com/shopspring/decimal"
)

type CreateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Outdoor"`
}

type ProductRequest struct {
	SKU         string           `json:"sku" binding:"required" example:"TENT-2P"`
	Name        string           `json:"name" binding:"required" example:"Two person tent"`
	Description *string          `json:"description" example:"Lightweight three season tent"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string" example:"249.90"`
	Currency    *string          `json:"currency" example:"EUR"`
	ImageURL    *string          `json:"image_url" example:"https://cdn.example.com/tent.jpg"`
	ProductURL  *string          `json:"product_url" example:"https://shop.example.com/tent"`
	StockQty    *int             `json:"stock_qty" example:"12"`
	Tags        []string         `json:"tags" example:"camping,tents"`
}

type DocumentRequest struct {
	Title   string `json:"title" binding:"required" example:"Shipping policy"`
	Content string `json:"content" binding:"required" example:"We ship within 3 business days."`
}

type ChunkRequest struct {
	ChunkIndex  int       `json:"chunk_index" example:"0"`
	Content     string    `json:"content" binding:"required" example:"We ship within 3 business days."`
	SourceTitle *string   `json:"source_title" example:"Shipping policy"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

type ReplaceChunksRequest struct {
	Chunks []ChunkRequest `json:"chunks" binding:"dive"`
}

// ListQuery is bound from the query string of list endpoints.
type ListQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500" example:"50"`
	Offset int    `form:"offset" binding:"omitempty,min=0" example:"0"`
	SKU    string `form:"sku" example:"TENT-2P"`
}
