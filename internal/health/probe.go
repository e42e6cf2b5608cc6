// Package health implements the dependency probes behind the /health routes.
// A probe never returns an error or panics; failures are reported in Result.
package health

import (
	"context"
	"fmt"

	"github.com/kingrain94/shop-rag-api/internal/metrics"
)

type Result struct {
	OK         bool   `json:"ok"`
	Result     *int   `json:"result,omitempty"`
	Model      string `json:"model,omitempty"`
	EmbedModel string `json:"embed_model,omitempty"`
	Text       string `json:"text,omitempty"`
	Error      string `json:"error,omitempty"`
}

func failed(format string, args ...any) Result {
	return Result{OK: false, Error: fmt.Sprintf(format, args...)}
}

type Probe interface {
	Name() string
	Check(ctx context.Context) Result
}

// Run executes p, converting a panic into a failed Result, and records the
// outcome in the health_probe_up gauge.
func Run(ctx context.Context, p Probe) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failed("probe panicked: %v", r)
		}

		up := 0.0
		if res.OK {
			up = 1
		}
		metrics.HealthProbeUp.WithLabelValues(p.Name()).Set(up)
	}()

	return p.Check(ctx)
}
