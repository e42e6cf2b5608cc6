package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, translateError(err)
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// GetByPublicToken is an exact match served by the unique index on public_token.
func (r *TenantRepository) GetByPublicToken(ctx context.Context, token string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "public_token = ?", token).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// Delete removes the tenant; products, documents and rag_chunks go with it
// through ON DELETE CASCADE. Deleting an absent tenant returns ErrNotFound.
func (r *TenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tenants).Error; err != nil {
		return nil, translateError(err)
	}
	return tenants, nil
}
