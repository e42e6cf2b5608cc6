package utils

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTenantIDFromContext(t *testing.T) {
	id := uuid.New()

	got, err := GetTenantIDFromContext(WithTenantID(context.Background(), id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = GetTenantIDFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoTenantInContext)

	_, err = GetTenantIDFromContext(context.WithValue(context.Background(), TenantIDKey, id.String()))
	assert.ErrorIs(t, err, ErrInvalidTenantIDType)

	_, err = GetTenantIDFromContext(WithTenantID(context.Background(), uuid.Nil))
	assert.ErrorIs(t, err, ErrNoTenantInContext)
}

func TestGetSubjectFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClaimsKey, jwt.MapClaims{"sub": "ops@example.com"})

	sub, err := GetSubjectFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", sub)

	_, err = GetSubjectFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoClaimsInContext)
}
