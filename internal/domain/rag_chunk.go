package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the fixed width of rag_chunks.embedding (vector(768)).
const EmbeddingDimensions = 768

// RagChunk is a segment of a Document. ChunkIndex is zero-based and unique per
// document; it defines display and retrieval order.
type RagChunk struct {
	ID          uuid.UUID        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	DocumentID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_rag_chunks_document_chunk" json:"document_id"`
	ChunkIndex  int              `gorm:"not null;uniqueIndex:uq_rag_chunks_document_chunk" json:"chunk_index"`
	Content     string           `gorm:"type:text;not null" json:"content"`
	SourceTitle *string          `gorm:"type:text" json:"source_title,omitempty"`
	Embedding   *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt   time.Time        `gorm:"type:timestamp with time zone;autoCreateTime" json:"created_at"`
}

func (RagChunk) TableName() string {
	return "rag_chunks"
}

// HasEmbedding reports whether the chunk carries a vector.
func (c *RagChunk) HasEmbedding() bool {
	return c.Embedding != nil
}

// ValidateEmbedding accepts a nil vector or one with exactly EmbeddingDimensions components.
func ValidateEmbedding(v []float32) error {
	if v == nil {
		return nil
	}
	if len(v) != EmbeddingDimensions {
		return fmt.Errorf("%w: expected %d embedding dimensions, got %d",
			ErrIntegrityViolation, EmbeddingDimensions, len(v))
	}
	return nil
}

// ValidateChunks checks the per-document invariants of a chunk set before it is written.
func ValidateChunks(chunks []RagChunk) error {
	seen := make(map[int]struct{}, len(chunks))
	for i := range chunks {
		c := &chunks[i]
		if c.ChunkIndex < 0 {
			return fmt.Errorf("%w: chunk_index must be >= 0, got %d", ErrIntegrityViolation, c.ChunkIndex)
		}
		if _, dup := seen[c.ChunkIndex]; dup {
			return fmt.Errorf("%w: duplicate chunk_index %d", ErrIntegrityViolation, c.ChunkIndex)
		}
		seen[c.ChunkIndex] = struct{}{}
		if c.Embedding != nil {
			if err := ValidateEmbedding(c.Embedding.Slice()); err != nil {
				return fmt.Errorf("chunk %d: %w", c.ChunkIndex, err)
			}
		}
	}
	return nil
}
