package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

type RagChunkRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *RagChunkRepository
	documents *DocumentRepository
	ctx       context.Context
	tenant    *domain.Tenant
	other     *domain.Tenant
	doc       *domain.Document
}

func (s *RagChunkRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewRagChunkRepository(s.db)
	s.documents = NewDocumentRepository(s.db)
	s.ctx = context.Background()
	s.tenant = seedTenant(s.T(), s.db, "Acme", "tok-acme")
	s.other = seedTenant(s.T(), s.db, "Other", "tok-other")

	s.doc = &domain.Document{TenantID: s.tenant.ID, Title: "Shipping", Content: "We ship worldwide."}
	s.Require().NoError(s.documents.Create(s.ctx, s.doc))
}

func TestRagChunkRepository(t *testing.T) {
	suite.Run(t, new(RagChunkRepositoryTestSuite))
}

func embedding(n int) *pgvector.Vector {
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(i) / float32(n)
	}
	v := pgvector.NewVector(values)
	return &v
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_OrdersByIndex() {
	err := s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 2, Content: "third"},
		{ChunkIndex: 0, Content: "first", Embedding: embedding(domain.EmbeddingDimensions)},
		{ChunkIndex: 1, Content: "second"},
	})
	s.Require().NoError(err)

	chunks, err := s.repo.ListByDocument(s.ctx, s.tenant.ID, s.doc.ID)
	s.Require().NoError(err)
	s.Require().Len(chunks, 3)
	s.Equal("first", chunks[0].Content)
	s.Equal("second", chunks[1].Content)
	s.Equal("third", chunks[2].Content)
	s.Require().True(chunks[0].HasEmbedding())
	s.Len(chunks[0].Embedding.Slice(), domain.EmbeddingDimensions)
	s.False(chunks[1].HasEmbedding())
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_ReplacesPreviousSet() {
	s.Require().NoError(s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "old-0"},
		{ChunkIndex: 1, Content: "old-1"},
	}))
	s.Require().NoError(s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "new-0"},
	}))

	chunks, err := s.repo.ListByDocument(s.ctx, s.tenant.ID, s.doc.ID)
	s.Require().NoError(err)
	s.Require().Len(chunks, 1)
	s.Equal("new-0", chunks[0].Content)
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_EmptyClears() {
	s.Require().NoError(s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "a"},
	}))
	s.Require().NoError(s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, nil))

	n, err := s.repo.CountByTenant(s.ctx, s.tenant.ID)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_RejectsWrongDimensions() {
	err := s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "a", Embedding: embedding(3)},
	})

	s.ErrorIs(err, domain.ErrIntegrityViolation)
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_RejectsDuplicateIndex() {
	err := s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "a"},
		{ChunkIndex: 0, Content: "b"},
	})

	s.ErrorIs(err, domain.ErrIntegrityViolation)
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_FailureKeepsPreviousSet() {
	s.Require().NoError(s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "keep"},
	}))

	err := s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: -1, Content: "bad"},
	})
	s.ErrorIs(err, domain.ErrIntegrityViolation)

	chunks, err := s.repo.ListByDocument(s.ctx, s.tenant.ID, s.doc.ID)
	s.Require().NoError(err)
	s.Require().Len(chunks, 1)
	s.Equal("keep", chunks[0].Content)
}

func (s *RagChunkRepositoryTestSuite) TestReplaceForDocument_OtherTenantDocumentIsNotFound() {
	err := s.repo.ReplaceForDocument(s.ctx, s.other.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "a"},
	})

	s.ErrorIs(err, domain.ErrNotFound)
}

// insert writes a chunk straight to the table, skipping the repository's
// own checks, so the store constraints are exercised directly.
func (s *RagChunkRepositoryTestSuite) insert(chunk *domain.RagChunk) error {
	chunk.ID = uuid.New()
	return translateError(s.db.WithContext(s.ctx).Create(chunk).Error)
}

func (s *RagChunkRepositoryTestSuite) TestStore_DuplicateIndexHitsConstraint() {
	s.Require().NoError(s.insert(&domain.RagChunk{
		TenantID: s.tenant.ID, DocumentID: s.doc.ID, ChunkIndex: 0, Content: "a",
	}))

	err := s.insert(&domain.RagChunk{
		TenantID: s.tenant.ID, DocumentID: s.doc.ID, ChunkIndex: 0, Content: "b",
	})

	s.ErrorIs(err, domain.ErrIntegrityViolation)
}

func (s *RagChunkRepositoryTestSuite) TestStore_UnknownDocumentIsIntegrityViolation() {
	err := s.insert(&domain.RagChunk{
		TenantID: s.tenant.ID, DocumentID: uuid.New(), ChunkIndex: 0, Content: "a",
	})

	s.ErrorIs(err, domain.ErrIntegrityViolation)
}

func (s *RagChunkRepositoryTestSuite) TestStore_ChunkOfOtherTenantsDocumentIsRejected() {
	err := s.insert(&domain.RagChunk{
		TenantID: s.other.ID, DocumentID: s.doc.ID, ChunkIndex: 0, Content: "leak",
	})

	s.ErrorIs(err, domain.ErrIntegrityViolation)

	n, err := s.repo.CountByTenant(s.ctx, s.other.ID)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RagChunkRepositoryTestSuite) TestDocumentDelete_CascadesToChunks() {
	s.Require().NoError(s.repo.ReplaceForDocument(s.ctx, s.tenant.ID, s.doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "a"},
	}))

	s.Require().NoError(s.documents.Delete(s.ctx, s.tenant.ID, s.doc.ID))

	n, err := s.repo.CountByTenant(s.ctx, s.tenant.ID)
	s.Require().NoError(err)
	s.Zero(n)
}
