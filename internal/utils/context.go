package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	TenantIDKey ContextKey = "tenant_id"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrNoTenantInContext   = errors.New("no resolved tenant in context")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a uuid")
)

// WithTenantID stores a resolved tenant id on ctx.
func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, TenantIDKey, tenantID)
}

// GetTenantIDFromContext returns the tenant resolved from the shop token.
func GetTenantIDFromContext(c context.Context) (uuid.UUID, error) {
	value := c.Value(TenantIDKey)
	if value == nil {
		return uuid.Nil, ErrNoTenantInContext
	}

	tenantID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrInvalidTenantIDType
	}
	if tenantID == uuid.Nil {
		return uuid.Nil, ErrNoTenantInContext
	}

	return tenantID, nil
}

// GetSubjectFromContext returns the "sub" claim of the admin JWT, if any.
func GetSubjectFromContext(c context.Context) (string, error) {
	claims, ok := c.Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return "", ErrNoClaimsInContext
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return sub, nil
}
