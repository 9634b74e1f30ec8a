// Package girvan: core types, configuration options, and sentinel
// errors for edge betweenness and Girvan–Newman partitioning.
package girvan

import (
	"context"
	"errors"
)

// Sentinel errors returned by the girvan package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("girvan: graph is nil")

	// ErrBadMaxSteps indicates that WithMaxSteps was given a negative
	// bound; 0 means unlimited.
	ErrBadMaxSteps = errors.New("girvan: MaxSteps must be non-negative")
)

// TieEpsilon is the relative tolerance under which two betweenness
// scores count as tied. Scores are sums of path fractions accumulated
// in different orders per source, so exact float equality would make
// symmetric ties (e.g. the four edges of a 4-cycle) depend on rounding;
// any edge within TieEpsilon of the maximum is removed in the same
// step.
const TieEpsilon = 1e-9

// EdgeKey canonically identifies an undirected edge by its endpoints,
// with U < V. Use NewEdgeKey to construct one.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey returns the canonical key for the unordered pair {a, b}.
func NewEdgeKey(a, b string) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// Options configures the behavior of a Partitioner.
//
// Ctx      – context checked once per removal step for cancellation.
// MaxSteps – stop the sequence after this many removal steps
// (0 = run until no edges remain).
type Options struct {
	Ctx      context.Context
	MaxSteps int
}

// Option represents a functional option for configuring a Partitioner.
type Option func(*Options)

// WithContext sets a custom context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of removal steps the sequence performs.
// Negative values cause New to return ErrBadMaxSteps; 0 (default) means
// unlimited.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: background context, unlimited steps.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
	}
}
