package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/metrics"
	"github.com/kingrain94/shop-rag-api/internal/service"
	"github.com/kingrain94/shop-rag-api/internal/utils"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

const ShopTokenHeader = "X-Shop-Token"

// UnauthenticatedMessage is returned for both missing and unknown tokens.
const UnauthenticatedMessage = "invalid or missing shop token"

type TenantResolver interface {
	Resolve(ctx context.Context, credential string) (uuid.UUID, error)
}

type TenantAuthMiddleware struct {
	resolver TenantResolver
	logger   *logger.Logger
}

func NewTenantAuthMiddleware(resolver TenantResolver, logger *logger.Logger) *TenantAuthMiddleware {
	return &TenantAuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// TenantAuth resolves X-Shop-Token to a tenant and stores the id on both the
// gin context and the request context. The token itself is never logged.
func (m *TenantAuthMiddleware) TenantAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(ShopTokenHeader)

		tenantID, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				reason := metrics.AuthInvalid
				if service.IsMissingToken(err) {
					reason = metrics.AuthMissing
				}
				metrics.TenantAuthTotal.WithLabelValues(reason).Inc()
				m.logger.Debug("Rejected shop token",
					zap.String("reason", reason),
					zap.String("ip", c.ClientIP()))

				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": UnauthenticatedMessage})
				return
			}

			metrics.TenantAuthTotal.WithLabelValues(metrics.AuthError).Inc()
			m.logger.Error("Tenant lookup failed", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "tenant lookup unavailable"})
			return
		}

		metrics.TenantAuthTotal.WithLabelValues(metrics.AuthOK).Inc()
		c.Set(string(utils.TenantIDKey), tenantID)
		c.Request = c.Request.WithContext(utils.WithTenantID(c.Request.Context(), tenantID))
		c.Next()
	}
}
