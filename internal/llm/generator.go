package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sevigo/goframe/llms"

	"github.com/sevigo/action-planner/internal/core"
)

// GoframeGenerator adapts a goframe model to core.Generator.
type GoframeGenerator struct {
	model   llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

var _ core.Generator = (*GoframeGenerator)(nil)

// NewGoframeGenerator wraps model. A non-positive timeout means no extra deadline.
func NewGoframeGenerator(model llms.Model, timeout time.Duration, logger *slog.Logger) *GoframeGenerator {
	return &GoframeGenerator{model: model, timeout: timeout, logger: logger}
}

// Generate sends prompt to the model and returns its reply.
func (g *GoframeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := generateWithTimeout(ctx, func(ctx context.Context) (string, error) {
		return g.model.Call(ctx, prompt)
	}, g.timeout)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	g.logger.Debug("generation finished", "duration", time.Since(start), "response_chars", len(resp))
	return resp, nil
}

// generateWithTimeout wraps a generation call with a hard timeout.
func generateWithTimeout(ctx context.Context, call func(context.Context) (string, error), timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := call(ctx)
		resultCh <- result{resp, err}
	}()

	select {
	case res := <-resultCh:
		return res.resp, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
