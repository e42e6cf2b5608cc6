package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/domain"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	cfg    *config.Config
	auth   *AuthMiddleware
	router *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = &config.Config{JWTSecretKey: "test-secret", JWTExpirationHours: 1}
	s.auth = NewAuthMiddleware(s.cfg)

	s.router = gin.New()
	s.router.GET("/admin", s.auth.JWTAuth(), s.auth.RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	s.router.GET("/lookup", s.auth.JWTAuth(), s.auth.RequireAnyRole(domain.RoleAdmin, domain.RoleSupport), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestAdminToken() {
	token, err := s.auth.GenerateToken("ops", []string{"admin"})
	s.Require().NoError(err)

	s.Equal(http.StatusNoContent, s.do("/admin", "Bearer "+token).Code)
	s.Equal(http.StatusNoContent, s.do("/lookup", "bearer "+token).Code)
}

func (s *AuthMiddlewareTestSuite) TestSupportTokenCannotAdminister() {
	token, err := s.auth.GenerateToken("helpdesk", []string{"support"})
	s.Require().NoError(err)

	s.Equal(http.StatusForbidden, s.do("/admin", "Bearer "+token).Code)
	s.Equal(http.StatusNoContent, s.do("/lookup", "Bearer "+token).Code)
}

func (s *AuthMiddlewareTestSuite) TestMissingAndMalformedHeader() {
	s.Equal(http.StatusUnauthorized, s.do("/admin", "").Code)
	s.Equal(http.StatusUnauthorized, s.do("/admin", "Token abc").Code)
	s.Equal(http.StatusUnauthorized, s.do("/admin", "Bearer not-a-jwt").Code)
}

func (s *AuthMiddlewareTestSuite) TestWrongSecretAndAlgorithm() {
	other := NewAuthMiddleware(&config.Config{JWTSecretKey: "other", JWTExpirationHours: 1})
	token, err := other.GenerateToken("ops", []string{"admin"})
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, s.do("/admin", "Bearer "+token).Code)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"roles": []string{"admin"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, s.do("/admin", "Bearer "+unsigned).Code)
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"roles": []string{"admin"},
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte(s.cfg.JWTSecretKey))
	s.Require().NoError(err)

	s.Equal(http.StatusUnauthorized, s.do("/admin", "Bearer "+token).Code)
}

func (s *AuthMiddlewareTestSuite) TestUnconfiguredSecret() {
	s.cfg.JWTSecretKey = ""

	s.Equal(http.StatusServiceUnavailable, s.do("/admin", "Bearer x").Code)
}
