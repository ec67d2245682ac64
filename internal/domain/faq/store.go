package faq

import (
	"context"
	"time"
)

// Store caches resolved answers and tracks query popularity. Keys are
// normalized query strings.
type Store interface {
	GetAnswer(ctx context.Context, key string) (string, bool, error)
	SaveAnswer(ctx context.Context, key, answer string, ttl time.Duration) error
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
