package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/shop-rag-api/internal/utils"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

// RequestLogger writes one access log entry per request. Query strings and
// headers are left out so shop tokens cannot leak into logs.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if tenantID, err := utils.GetTenantIDFromContext(c.Request.Context()); err == nil {
			fields = append(fields, zap.String("tenant_id", tenantID.String()))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Warn("Request failed", fields...)
		default:
			log.Info("Request", fields...)
		}
	}
}
