package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/repository/postgres"
	"github.com/kingrain94/shop-rag-api/internal/service/queue"
	"github.com/kingrain94/shop-rag-api/internal/worker"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

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

	db, err := config.NewDatabase(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer config.CloseDatabase(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	offboardWorker := worker.NewOffboardWorker(
		queue.NewSQSService(sqsClient, sqsConfig),
		postgres.NewPostgresRepository(db),
		s3Client,
		s3Config.BucketName,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	offboardWorker.Start(ctx)

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down offboard worker...")

	cancel()
	offboardWorker.Stop()
	appLogger.Info("Offboard worker stopped")
}
