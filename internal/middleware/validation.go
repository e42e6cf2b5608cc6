package middleware

import (
	"net/http"
	"net/textproto"
	"regexp"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

// credentialHeaders are never inspected or rewritten; shop tokens are
// base64url and may legitimately contain "--".
var credentialHeaders = []string{
	textproto.CanonicalMIMEHeaderKey("Authorization"),
	textproto.CanonicalMIMEHeaderKey(ShopTokenHeader),
}

var suspiciousPatterns = compilePatterns(
	// SQL injection
	`(?i)(\bUNION\b.*\bSELECT\b)`,
	`(?i)(\bDROP\b.*\bTABLE\b)`,
	`(?i)(\bALTER\b.*\bTABLE\b)`,
	`(?i)(\bINSERT\b.*\bINTO\b)`,
	`/\*.*\*/`,
	// XSS
	`(?i)<script.*?>`,
	`(?i)javascript:`,
	`(?i)<iframe.*?>`,
	// path traversal
	`\.\./`,
	`\.\.\\`,
	`(?i)%2e%2e%2f`,
	`(?i)%2e%2e%5c`,
)

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips NUL and control characters from query values and
// non-credential headers.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Debug("Sanitized query parameter", zap.String("key", key))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		for key, values := range c.Request.Header {
			if slices.Contains(credentialHeaders, key) {
				continue
			}
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Debug("Sanitized header", zap.String("key", key))
					c.Request.Header[key][i] = sanitized
				}
			}
		}

		c.Next()
	}
}

// ValidateContentType ensures only allowed content types on requests with a body.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete ||
			c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := strings.TrimSpace(strings.Split(c.GetHeader("Content-Type"), ";")[0])
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}

		if !slices.Contains(allowedTypes, contentType) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error":         "Unsupported Content-Type",
				"allowed_types": allowedTypes,
			})
			return
		}

		c.Next()
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         "Request body too large",
				"max_size":      maxSize,
				"received_size": c.Request.ContentLength,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects requests whose path, query or headers look
// like injection attempts. Bodies are not inspected: product descriptions and
// documents are free text.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		if containsSuspiciousPattern(c.Request.URL.Path) {
			m.reject(c, zap.String("path", c.Request.URL.Path))
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if containsSuspiciousPattern(value) {
					m.reject(c, zap.String("query_key", key))
					return
				}
			}
		}

		for key, values := range c.Request.Header {
			if slices.Contains(credentialHeaders, key) {
				continue
			}
			for _, value := range values {
				if containsSuspiciousPattern(value) {
					m.reject(c, zap.String("header", key))
					return
				}
			}
		}

		c.Next()
	}
}

func (m *ValidationMiddleware) reject(c *gin.Context, field zap.Field) {
	m.logger.Warn("Blocked suspicious request", field, zap.String("ip", c.ClientIP()))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

func sanitizeString(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, input)
}

func containsSuspiciousPattern(input string) bool {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
