package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/shop-rag-api/docs"
	"github.com/kingrain94/shop-rag-api/internal/api"
	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/gemini"
	"github.com/kingrain94/shop-rag-api/internal/health"
	"github.com/kingrain94/shop-rag-api/internal/middleware"
	"github.com/kingrain94/shop-rag-api/internal/repository/postgres"
	"github.com/kingrain94/shop-rag-api/internal/schema"
	"github.com/kingrain94/shop-rag-api/internal/service"
	"github.com/kingrain94/shop-rag-api/internal/service/queue"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

// @title           Shop RAG API
// @version         1.0
// @description     Multi-tenant shop catalog and RAG chunk storage.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey ShopToken
// @in header
// @name X-Shop-Token
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	defer appLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	ctx := context.Background()

	if cfg.RunMigrations {
		if err := schema.Migrate(ctx, cfg.DatabaseURL, appLogger); err != nil {
			appLogger.Fatal("Failed to apply migrations", err)
		}
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	repo := postgres.NewPostgresRepository(db)

	// Redis is optional; without it requests are not rate limited
	var counter middleware.RateCounter
	redisClient, err := config.DefaultRedisConfig().GetClient(ctx)
	if err != nil {
		appLogger.Warn("Redis unavailable, rate limiting disabled")
	} else {
		defer redisClient.Close()
		counter = middleware.NewRedisCounter(redisClient)
	}

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create SQS client", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	var geminiProbe *health.GeminiProbe
	genaiClient, err := config.NewGeminiClient(ctx, cfg)
	switch {
	case errors.Is(err, config.ErrMissingGeminiAPIKey):
		appLogger.Warn("GEMINI_API_KEY not set, Gemini probe will report unavailable")
		geminiProbe = health.NewUnavailableGeminiProbe("Missing GEMINI_API_KEY")
	case err != nil:
		appLogger.Error("Failed to create Gemini client", err)
		geminiProbe = health.NewUnavailableGeminiProbe(err.Error())
	default:
		client := gemini.NewClient(genaiClient.Models, cfg.GeminiModel, cfg.GeminiEmbedModel)
		geminiProbe = health.NewGeminiProbe(client, client.Model(), client.EmbedModel())
	}

	// Initialize services
	tenantService := service.NewTenantService(repo, sqsService)
	productService := service.NewProductService(repo)
	documentService := service.NewDocumentService(repo)

	server := api.NewServer(api.ServerDeps{
		TenantService:   tenantService,
		ProductService:  productService,
		DocumentService: documentService,
		DBProbe:         health.NewDBProbe(cfg.DatabaseURL),
		GeminiProbe:     geminiProbe,
		Auth:            middleware.NewAuthMiddleware(cfg),
		TenantAuth:      middleware.NewTenantAuthMiddleware(tenantService, appLogger),
		RateLimit:       middleware.NewRateLimitMiddleware(counter, cfg, appLogger),
		Validation:      middleware.NewValidationMiddleware(appLogger),
		Logger:          appLogger,
		GlobalRateLimit: cfg.GlobalRateLimit,
	})

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Shop RAG API"
	docs.SwaggerInfo.Description = "Multi-tenant shop catalog and RAG chunk storage"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		appLogger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
}
