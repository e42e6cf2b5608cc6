package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

// Every tenant-scoped method takes the resolved tenant id explicitly and
// filters on it; there is no row-level security behind these queries.

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetByPublicToken(ctx context.Context, token string) (*domain.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

//go:generate mockery --name DocumentRepository --output ../mocks
type DocumentRepository interface {
	Create(ctx context.Context, document *domain.Document) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error)
	Update(ctx context.Context, document *domain.Document) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

//go:generate mockery --name RagChunkRepository --output ../mocks
type RagChunkRepository interface {
	ReplaceForDocument(ctx context.Context, tenantID, documentID uuid.UUID, chunks []domain.RagChunk) error
	ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.RagChunk, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Product() ProductRepository
	Document() DocumentRepository
	RagChunk() RagChunkRepository
}
