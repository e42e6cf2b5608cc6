package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/utils"
)

// AuthMiddleware guards the operator (admin) API with HS256 JWTs. Shop
// clients authenticate with X-Shop-Token instead, see TenantAuthMiddleware.
type AuthMiddleware struct {
	config *config.Config
}

func NewAuthMiddleware(config *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.JWTSecretKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin API is not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
			return []byte(m.config.JWTSecretKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Next()
	}
}

// RequireRole middleware checks if the operator has the required role
func (m *AuthMiddleware) RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get(string(utils.ClaimsKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		claimsMap, ok := claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid claims type"})
			return
		}

		if !domain.HasRole(rolesFromClaims(claimsMap), role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// RequireAnyRole passes when the operator holds at least one of roles.
func (m *AuthMiddleware) RequireAnyRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := c.Get(string(utils.ClaimsKey))
		claimsMap, ok := claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		held := rolesFromClaims(claimsMap)
		for _, role := range roles {
			if domain.HasRole(held, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

func (m *AuthMiddleware) GenerateToken(subject string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"exp":   now.Add(time.Duration(m.config.JWTExpirationHours) * time.Hour).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.JWTSecretKey))
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
