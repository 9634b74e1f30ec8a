// Package kclique: configuration options and sentinel errors for
// k-clique community detection.
package kclique

import (
	"context"
	"errors"
)

// Sentinel errors returned by Communities.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("kclique: graph is nil")

	// ErrKTooSmall indicates k < 2. A 1-clique community would be every
	// vertex on its own; the percolation construction starts at k = 2.
	ErrKTooSmall = errors.New("kclique: k must be >= 2")
)

// Options configures the behavior of Communities.
//
// Ctx – context propagated into clique enumeration for cancellation.
type Options struct {
	Ctx context.Context
}

// Option represents a functional option for configuring Communities.
type Option func(*Options)

// WithContext sets a custom context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
