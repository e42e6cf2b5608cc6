package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

type TenantRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *TenantRepository
	ctx  context.Context
}

func (s *TenantRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewTenantRepository(s.db)
	s.ctx = context.Background()
}

func TestTenantRepository(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}

func (s *TenantRepositoryTestSuite) TestCreate_AssignsIDAndCreatedAt() {
	tenant, err := s.repo.Create(s.ctx, &domain.Tenant{Name: "Acme", PublicToken: "tok-acme"})

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, tenant.ID)
	s.False(tenant.CreatedAt.IsZero())
}

func (s *TenantRepositoryTestSuite) TestCreate_DuplicateTokenIsIntegrityViolation() {
	_, err := s.repo.Create(s.ctx, &domain.Tenant{Name: "A", PublicToken: "same"})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &domain.Tenant{Name: "B", PublicToken: "same"})

	s.ErrorIs(err, domain.ErrIntegrityViolation)
}

func (s *TenantRepositoryTestSuite) TestGetByPublicToken() {
	created := seedTenant(s.T(), s.db, "Acme", "tok-acme")

	found, err := s.repo.GetByPublicToken(s.ctx, "tok-acme")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Acme", found.Name)

	_, err = s.repo.GetByPublicToken(s.ctx, "tok-other")
	s.ErrorIs(err, domain.ErrNotFound)

	// exact match only
	_, err = s.repo.GetByPublicToken(s.ctx, "TOK-ACME")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *TenantRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())

	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *TenantRepositoryTestSuite) TestList_OmitsNothing() {
	seedTenant(s.T(), s.db, "A", "tok-a")
	seedTenant(s.T(), s.db, "B", "tok-b")

	tenants, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.Len(tenants, 2)
}

func (s *TenantRepositoryTestSuite) TestDelete_CascadesToOwnedRows() {
	tenant := seedTenant(s.T(), s.db, "Acme", "tok-acme")
	other := seedTenant(s.T(), s.db, "Other", "tok-other")

	products := NewProductRepository(s.db)
	documents := NewDocumentRepository(s.db)
	chunks := NewRagChunkRepository(s.db)

	s.Require().NoError(products.Create(s.ctx, &domain.Product{TenantID: tenant.ID, SKU: "A-1", Name: "Mug"}))
	s.Require().NoError(products.Create(s.ctx, &domain.Product{TenantID: other.ID, SKU: "B-1", Name: "Cup"}))
	doc := &domain.Document{TenantID: tenant.ID, Title: "FAQ", Content: "..."}
	s.Require().NoError(documents.Create(s.ctx, doc))
	s.Require().NoError(chunks.ReplaceForDocument(s.ctx, tenant.ID, doc.ID, []domain.RagChunk{
		{ChunkIndex: 0, Content: "a"},
		{ChunkIndex: 1, Content: "b"},
	}))

	s.Require().NoError(s.repo.Delete(s.ctx, tenant.ID))

	var count int64
	s.Require().NoError(s.db.Model(&domain.Product{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	s.Zero(count)
	s.Require().NoError(s.db.Model(&domain.Document{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	s.Zero(count)
	s.Require().NoError(s.db.Model(&domain.RagChunk{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	s.Zero(count)

	// the other tenant is untouched
	n, err := products.CountByTenant(s.ctx, other.ID)
	s.Require().NoError(err)
	s.EqualValues(1, n)
}

func (s *TenantRepositoryTestSuite) TestDelete_MissingTenant() {
	tenant := seedTenant(s.T(), s.db, "Acme", "tok-acme")
	s.Require().NoError(s.repo.Delete(s.ctx, tenant.ID))

	err := s.repo.Delete(s.ctx, tenant.ID)

	s.ErrorIs(err, domain.ErrNotFound)
}
