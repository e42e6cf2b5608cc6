package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if product.TenantID == uuid.Nil {
		return translateError(errMissingTenant)
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}

	return translateError(r.db.WithContext(ctx).Create(product).Error)
}

func (r *ProductRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Product, error) {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return nil, translateError(err)
	}

	var product domain.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	db, err := tenantScope(r.db, ctx, filter.TenantID)
	if err != nil {
		return nil, translateError(err)
	}

	if filter.SKU != "" {
		db = db.Where("sku = ?", filter.SKU)
	}

	var products []domain.Product
	if err := db.Scopes(pageScope(filter.Limit, filter.Offset)).
		Order("updated_at DESC").
		Find(&products).Error; err != nil {
		return nil, translateError(err)
	}
	return products, nil
}

// Update writes every mutable column of product; updated_at is refreshed.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	db, err := tenantScope(r.db, ctx, product.TenantID)
	if err != nil {
		return translateError(err)
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}

	result := db.Model(product).Select("*").Omit("ID", "TenantID").Updates(product)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return translateError(err)
	}

	result := db.Delete(&domain.Product{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	db, err := tenantScope(r.db, ctx, tenantID)
	if err != nil {
		return 0, translateError(err)
	}

	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
