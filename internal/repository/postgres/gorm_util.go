package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errMissingTenant = errors.New("tenant id is required for tenant-scoped queries")

// tenantScope returns a handle whose queries are restricted to tenantID.
func tenantScope(db *gorm.DB, ctx context.Context, tenantID uuid.UUID) (*gorm.DB, error) {
	if tenantID == uuid.Nil {
		return nil, errMissingTenant
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// pageScope applies limit/offset when set.
func pageScope(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}
