// Package builder: shared configuration and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch on semantics with errors.Is(err, ErrX).
//   - Implementations attach context via fmt.Errorf("...: %w", ...).
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cloven/core"
)

// ErrTooFewVertices indicates that a numeric parameter (n, clique count,
// clique size) is smaller than the allowed minimum for the requested
// generator.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside
// the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// defaultPrefix is prepended to every generated vertex index.
const defaultPrefix = "v"

// uniformWeight is the weight every edge carries on weighted graphs.
const uniformWeight = int64(1)

// Options configures the shared behavior of all generators.
//
// Prefix   – vertex ID prefix; IDs are Prefix + decimal index.
// Weighted – build a weighted graph; every edge gets weight 1.
type Options struct {
	Prefix   string
	Weighted bool
}

// Option represents a functional option for configuring a generator.
type Option func(*Options)

// WithPrefix overrides the default "v" vertex ID prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix != "" {
			o.Prefix = prefix
		}
	}
}

// WithWeighted makes the generated graph weighted; every emitted edge
// carries the uniform weight 1.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// DefaultOptions returns the generator defaults: prefix "v", unweighted.
func DefaultOptions() Options {
	return Options{Prefix: defaultPrefix, Weighted: false}
}

// resolve folds functional options into a concrete Options value.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newGraph allocates the target graph for a resolved configuration.
func (o Options) newGraph() *core.Graph {
	if o.Weighted {
		return core.NewGraph(core.WithWeighted())
	}

	return core.NewGraph()
}

// id renders the vertex ID for index i under the configured scheme.
func (o Options) id(i int) string {
	return fmt.Sprintf("%s%d", o.Prefix, i)
}

// weight returns the edge weight consistent with the graph mode.
func (o Options) weight() int64 {
	if o.Weighted {
		return uniformWeight
	}

	return 0
}
