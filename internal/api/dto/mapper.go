package dto

import (
	"github.com/pgvector/pgvector-go"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

func FromTenant(tenant *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		CreatedAt: tenant.CreatedAt,
	}
}

func FromProduct(product *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Currency:    product.Currency,
		ImageURL:    product.ImageURL,
		ProductURL:  product.ProductURL,
		StockQty:    product.StockQty,
		Tags:        []string(product.Tags),
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Price.Valid {
		price := product.Price.Decimal
		resp.Price = &price
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

func FromDocument(document *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:        document.ID,
		Title:     document.Title,
		Content:   document.Content,
		UpdatedAt: document.UpdatedAt,
	}
}

func FromRagChunk(chunk *domain.RagChunk) ChunkResponse {
	return ChunkResponse{
		ID:           chunk.ID,
		DocumentID:   chunk.DocumentID,
		ChunkIndex:   chunk.ChunkIndex,
		Content:      chunk.Content,
		SourceTitle:  chunk.SourceTitle,
		HasEmbedding: chunk.HasEmbedding(),
		CreatedAt:    chunk.CreatedAt,
	}
}

// ToRagChunk converts a request chunk; tenant and document ids are filled in
// by the repository.
func (r *ChunkRequest) ToRagChunk() domain.RagChunk {
	chunk := domain.RagChunk{
		ChunkIndex:  r.ChunkIndex,
		Content:     r.Content,
		SourceTitle: r.SourceTitle,
	}
	if r.Embedding != nil {
		v := pgvector.NewVector(r.Embedding)
		chunk.Embedding = &v
	}
	return chunk
}
