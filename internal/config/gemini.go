package config

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("GEMINI_API_KEY is not configured")

// NewGeminiClient builds the process-wide Gemini client. It returns
// ErrMissingGeminiAPIKey when no key is configured so callers can keep running
// with the generation probe reporting ok:false.
func NewGeminiClient(ctx context.Context, cfg *Config) (*genai.Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}
