package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/repository"
)

type postgresRepository struct {
	tenantRepo   repository.TenantRepository
	productRepo  repository.ProductRepository
	documentRepo repository.DocumentRepository
	ragChunkRepo repository.RagChunkRepository
}

func NewPostgresRepository(db *gorm.DB) repository.Repository {
	return &postgresRepository{
		tenantRepo:   NewTenantRepository(db),
		productRepo:  NewProductRepository(db),
		documentRepo: NewDocumentRepository(db),
		ragChunkRepo: NewRagChunkRepository(db),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Product() repository.ProductRepository {
	return r.productRepo
}

func (r *postgresRepository) Document() repository.DocumentRepository {
	return r.documentRepo
}

func (r *postgresRepository) RagChunk() repository.RagChunkRepository {
	return r.ragChunkRepo
}
