// Package gemini wraps the Gen AI SDK with the two calls this service makes:
// a short text generation and a fixed-width embedding.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

var errEmptyEmbedding = errors.New("model returned no embedding")

// ModelsAPI is satisfied by (*genai.Client).Models.
type ModelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

type Client struct {
	models     ModelsAPI
	model      string
	embedModel string
}

func NewClient(models ModelsAPI, model, embedModel string) *Client {
	return &Client{
		models:     models,
		model:      model,
		embedModel: embedModel,
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) EmbedModel() string {
	return c.embedModel
}

// Generate sends a single text prompt and returns the concatenated text parts.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: generate with %s: %w", domain.ErrExternalService, c.model, err)
	}
	return resp.Text(), nil
}

// EmbedWidth reports how many dimensions the embedding model returned for
// text, without requiring domain.EmbeddingDimensions.
func (c *Client) EmbedWidth(ctx context.Context, text string) (int, error) {
	resp, err := c.models.EmbedContent(ctx, c.embedModel, genai.Text(text), &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr[int32](domain.EmbeddingDimensions),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: embed with %s: %w", domain.ErrExternalService, c.embedModel, err)
	}
	if len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrExternalService, errEmptyEmbedding)
	}
	return len(resp.Embeddings[0].Values), nil
}
