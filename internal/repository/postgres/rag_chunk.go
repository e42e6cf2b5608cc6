package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

const chunkBatchSize = 100

type RagChunkRepository struct {
	db *gorm.DB
}

func NewRagChunkRepository(db *gorm.DB) *RagChunkRepository {
	return &RagChunkRepository{db: db}
}

// ReplaceForDocument swaps the whole chunk set of one document in a single
// transaction. The document must belong to tenantID.
func (r *RagChunkRepository) ReplaceForDocument(ctx context.Context, tenantID, documentID uuid.UUID, chunks []domain.RagChunk) error {
	if err := domain.ValidateChunks(chunks); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped, err := tenantScope(tx, ctx, tenantID)
		if err != nil {
			return err
		}

		var document domain.Document
		if err := scoped.Select("id").First(&document, "id = ?", documentID).Error; err != nil {
			return err
		}

		if err := tx.Where("tenant_id = ? AND document_id = ?", tenantID, documentID).
			Delete(&domain.RagChunk{}).Error; err != nil {
			return fmt.Errorf("delete existing chunks: %w", err)
		}

		if len(chunks) == 0 {
			return nil
		}

		for i := range chunks {
			if chunks[i].ID == uuid.Nil {
				chunks[i].ID = uuid.New()
			}
			chunks[i].TenantID = tenantID
			chunks[i].DocumentID = documentID
		}

		return tx.CreateInBatches(chunks, chunkBatchSize).Error
	})

	return translateError(err)
}

// ListByDocument returns the chunks of one document ordered by chunk_index.
func (r *RagChunkRepository) ListByDocument(ctx context.Context, tenantID, documentID uuid.UUID) ([]domain.RagChunk, error) {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return nil, translateError(err)
	}

	var chunks []domain.RagChunk
	if err := db.Where("document_id = ?", documentID).
		Order("chunk_index ASC").
		Find(&chunks).Error; err != nil {
		return nil, translateError(err)
	}
	return chunks, nil
}

func (r *RagChunkRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return 0, translateError(err)
	}

	var count int64
	if err := db.Model(&domain.RagChunk{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
