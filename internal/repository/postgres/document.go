package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, document *domain.Document) error {
	if document.TenantID == uuid.Nil {
		return translateError(errMissingTenant)
	}
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}

	return translateError(r.db.WithContext(ctx).Create(document).Error)
}

func (r *DocumentRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Document, error) {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return nil, translateError(err)
	}

	var document domain.Document
	if err := db.First(&document, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &document, nil
}

func (r *DocumentRepository) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	db, err := tenantScope(r.db, ctx, filter.TenantID)
	if err != nil {
		return nil, translateError(err)
	}

	var documents []domain.Document
	if err := db.Scopes(pageScope(filter.Limit, filter.Offset)).
		Order("updated_at DESC").
		Find(&documents).Error; err != nil {
		return nil, translateError(err)
	}
	return documents, nil
}

func (r *DocumentRepository) Update(ctx context.Context, document *domain.Document) error {
	db, err := tenantScope(r.db, ctx, document.TenantID)
	if err != nil {
		return translateError(err)
	}

	result := db.Model(document).Select("Title", "Content", "UpdatedAt").Updates(document)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the document and, by cascade, its rag_chunks.
func (r *DocumentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return translateError(err)
	}

	result := db.Delete(&domain.Document{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
