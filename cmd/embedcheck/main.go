// Command embedcheck verifies that the configured embedding model returns
// vectors that fit rag_chunks.embedding.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/shop-rag-api/internal/config"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/gemini"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	defer appLogger.Sync()

	// Only Gemini settings matter here; DATABASE_URL may be absent.
	cfg := &config.Config{
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiEmbedModel: os.Getenv("GEMINI_EMBED_MODEL"),
	}
	if cfg.GeminiEmbedModel == "" {
		cfg.GeminiEmbedModel = config.DefaultGeminiEmbedModel
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	genaiClient, err := config.NewGeminiClient(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini client", err)
	}

	client := gemini.NewClient(genaiClient.Models, cfg.GeminiModel, cfg.GeminiEmbedModel)
	fits, err := check(ctx, client, os.Stdout)
	if err != nil {
		appLogger.Fatal("Embedding failed", err)
	}
	if !fits {
		os.Exit(1)
	}
}

type widthReporter interface {
	EmbedModel() string
	EmbedWidth(ctx context.Context, text string) (int, error)
}

// check prints the model and the width it returned, and reports whether that
// width fits rag_chunks.embedding.
func check(ctx context.Context, client widthReporter, out io.Writer) (bool, error) {
	width, err := client.EmbedWidth(ctx, "test")
	if err != nil {
		return false, err
	}

	fmt.Fprintf(out, "model=%s dim=%d\n", client.EmbedModel(), width)
	return width == domain.EmbeddingDimensions, nil
}
