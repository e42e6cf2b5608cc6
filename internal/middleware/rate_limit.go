package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/utils"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

const rateLimitWindow = time.Minute

// RateCounter counts hits on key within a fixed window. It returns the count
// including this hit and the time left until the window resets.
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter returns a fixed-window counter backed by INCR/EXPIRE.
func NewRedisCounter(client *redis.Client) RateCounter {
	return &redisCounter{client: client}
}

func (r *redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}

type RateLimitMiddleware struct {
	counter RateCounter
	config  *config.Config
	logger  *logger.Logger
}

// NewRateLimitMiddleware builds the limiter. A nil counter disables limiting.
func NewRateLimitMiddleware(counter RateCounter, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		counter: counter,
		config:  config,
		logger:  logger,
	}
}

// TenantRateLimit limits requests per resolved tenant. It must run after TenantAuth.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := utils.GetTenantIDFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Tenant required for rate limiting"})
			return
		}

		m.limit(c, fmt.Sprintf("rate_limit:tenant:%s", tenantID), m.tenantLimit(), "Rate limit exceeded")
	}
}

// GlobalRateLimit limits requests per client IP.
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.limit(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int, message string) {
	if m.counter == nil || limit <= 0 {
		c.Next()
		return
	}

	current, ttl, err := m.counter.Hit(c.Request.Context(), key, rateLimitWindow)
	if err != nil {
		// fail open
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	// TTL is negative when the key has no expiry or is already gone
	if ttl <= 0 {
		ttl = rateLimitWindow
	}
	reset := strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	remaining := max(int64(limit)-current, 0)

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
	c.Header("X-RateLimit-Reset", reset)

	if current > int64(limit) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
		})
		return
	}

	c.Next()
}

func (m *RateLimitMiddleware) tenantLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000
}
