package source

import (
	"context"

	"jobseek-engine/internal/domain"
)

// Query is one search request as the adapters see it: the route layer has
// already resolved location shorthands by this point.
type Query struct {
	Term     string
	Location string
	Limit    int
}

// Adapter is one origin-specific fetch+parse+normalize unit. Implementations
// must swallow their own failures: a network error, a malformed payload, or a
// page whose markup drifted all come back as a short (possibly empty) slice,
// or at worst a non-nil error the aggregator logs and treats as empty. An
// adapter never panics past Search.
type Adapter interface {
	Name() string
	Search(ctx context.Context, q Query) ([]domain.NormalizedJob, error)
}
