package planner

import (
	"time"

	"github.com/sevigo/action-planner/internal/llm"
)

const defaultCacheSize = 128

// Option configures an ActionPlanner.
type Option func(*ActionPlanner)

// WithCacheSize sets how many plans are kept per goal. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(p *ActionPlanner) {
		p.cacheSize = size
	}
}

// WithProvider selects provider-specific prompt templates.
func WithProvider(provider llm.ModelProvider) Option {
	return func(p *ActionPlanner) {
		p.provider = provider
	}
}

// WithClock overrides the time source used for Plan.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(p *ActionPlanner) {
		p.now = now
	}
}

// WithIDGenerator overrides how plan IDs are produced.
func WithIDGenerator(newID func() string) Option {
	return func(p *ActionPlanner) {
		p.newID = newID
	}
}
