package domain

import (
	"context"
	"time"
)

// TextGenerator abstracts the generative backend: prompt in, text out.
// Implementations must honor the context and report unreachable or
// malformed-response failures via sentinel errors so callers can degrade
// to a fallback response.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	Healthy(ctx context.Context) bool
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
