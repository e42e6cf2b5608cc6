package health

import (
	"context"
	"time"
)

const (
	defaultGeminiTimeout = 20 * time.Second
	pingPrompt           = "ping"
)

// Generator is the part of the Gemini client the probe needs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiProbe struct {
	generator   Generator
	model       string
	embedModel  string
	unavailable string
	timeout     time.Duration
}

func NewGeminiProbe(generator Generator, model, embedModel string) *GeminiProbe {
	return &GeminiProbe{
		generator:  generator,
		model:      model,
		embedModel: embedModel,
		timeout:    defaultGeminiTimeout,
	}
}

// NewUnavailableGeminiProbe reports reason on every check, for when no client
// could be built at startup (for example "Missing GEMINI_API_KEY").
func NewUnavailableGeminiProbe(reason string) *GeminiProbe {
	return &GeminiProbe{unavailable: reason}
}

func (p *GeminiProbe) Name() string {
	return "gemini"
}

func (p *GeminiProbe) Check(ctx context.Context) Result {
	if p.unavailable != "" {
		return failed("%s", p.unavailable)
	}
	if p.generator == nil {
		return failed("Missing GEMINI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	text, err := p.generator.Generate(ctx, pingPrompt)
	if err != nil {
		return failed("%v", err)
	}

	return Result{
		OK:         true,
		Model:      p.model,
		EmbedModel: p.embedModel,
		Text:       text,
	}
}
