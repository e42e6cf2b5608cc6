package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/health"
	"github.com/kingrain94/shop-rag-api/internal/middleware"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

const maxRequestBytes = 10 << 20

type Server struct {
	tenant     *TenantHandler
	product    *ProductHandler
	document   *DocumentHandler
	health     *HealthHandler
	auth       *middleware.AuthMiddleware
	tenantAuth *middleware.TenantAuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	logger     *logger.Logger
	globalRate int
}

type ServerDeps struct {
	TenantService   TenantService
	ProductService  ProductService
	DocumentService DocumentService
	DBProbe         health.Probe
	GeminiProbe     health.Probe
	Auth            *middleware.AuthMiddleware
	TenantAuth      *middleware.TenantAuthMiddleware
	RateLimit       *middleware.RateLimitMiddleware
	Validation      *middleware.ValidationMiddleware
	Logger          *logger.Logger
	GlobalRateLimit int
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		tenant:     NewTenantHandler(deps.TenantService, deps.Logger),
		product:    NewProductHandler(deps.ProductService),
		document:   NewDocumentHandler(deps.DocumentService),
		health:     NewHealthHandler(deps.DBProbe, deps.GeminiProbe),
		auth:       deps.Auth,
		tenantAuth: deps.TenantAuth,
		rateLimit:  deps.RateLimit,
		validation: deps.Validation,
		logger:     deps.Logger,
		globalRate: deps.GlobalRateLimit,
	}
}

// Router builds the complete HTTP surface: health probes, metrics, swagger
// and the versioned API.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(s.logger))
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.ShopTokenHeader},
		ExposeHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Error{Error: "route not found"})
	})

	router.GET("/health", s.health.Health)
	router.GET("/health/db", s.health.DB)
	router.GET("/health/gemini", s.health.Gemini)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.SetupRoutes(router.Group("/api/v1"))
	return router
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(maxRequestBytes))
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))

	{
		admin := api.Group("/admin", s.auth.JWTAuth())
		{
			tenants := admin.Group("/tenants")
			tenants.GET("", s.auth.RequireAnyRole(domain.RoleAdmin, domain.RoleSupport), s.tenant.ListTenants)
			tenants.GET("/:id", s.auth.RequireAnyRole(domain.RoleAdmin, domain.RoleSupport), s.tenant.GetTenant)
			tenants.POST("", s.auth.RequireRole(domain.RoleAdmin), s.tenant.CreateTenant)
			tenants.DELETE("/:id", s.auth.RequireRole(domain.RoleAdmin), s.tenant.DeleteTenant)
			tenants.POST("/:id/offboard", s.auth.RequireRole(domain.RoleAdmin), s.tenant.OffboardTenant)
		}

		shop := api.Group("", s.tenantAuth.TenantAuth(), s.rateLimit.TenantRateLimit())
		{
			shop.GET("/me", s.tenant.GetMe)

			products := shop.Group("/products")
			products.POST("", s.product.CreateProduct)
			products.GET("", s.product.ListProducts)
			products.GET("/:id", s.product.GetProduct)
			products.PUT("/:id", s.product.UpdateProduct)
			products.DELETE("/:id", s.product.DeleteProduct)

			documents := shop.Group("/documents")
			documents.POST("", s.document.CreateDocument)
			documents.GET("", s.document.ListDocuments)
			documents.GET("/:id", s.document.GetDocument)
			documents.PUT("/:id", s.document.UpdateDocument)
			documents.DELETE("/:id", s.document.DeleteDocument)
			documents.PUT("/:id/chunks", s.document.ReplaceChunks)
			documents.GET("/:id/chunks", s.document.ListChunks)
		}
	}
}
