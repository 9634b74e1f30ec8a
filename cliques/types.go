// Package cliques: configuration options and sentinel errors for
// maximal clique enumeration.
package cliques

import (
	"context"
	"errors"
)

// Sentinel errors returned by MaximalCliques.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("cliques: graph is nil")

	// ErrBadMinSize indicates that MinSize was set below 1; a clique has
	// at least one vertex, so smaller thresholds are meaningless.
	ErrBadMinSize = errors.New("cliques: MinSize must be >= 1")

	// ErrOnClique wraps any error returned by a user-supplied OnClique
	// hook; enumeration aborts at the first such error.
	ErrOnClique = errors.New("cliques: OnClique hook failed")
)

// Options configures the behavior of MaximalCliques.
//
// MinSize  – cliques smaller than this are neither reported nor returned.
// Ctx      – context checked once per recursion step for cancellation.
// OnClique – optional hook fired for each qualifying maximal clique, in
// enumeration order, with the clique already sorted ascending. Returning
// a non-nil error aborts enumeration.
type Options struct {
	MinSize  int
	Ctx      context.Context
	OnClique func(clique []string) error
}

// Option represents a functional option for configuring MaximalCliques.
type Option func(*Options)

// WithMinSize reports only cliques of at least n vertices.
// Values below 1 cause MaximalCliques to return ErrBadMinSize.
func WithMinSize(n int) Option {
	return func(o *Options) { o.MinSize = n }
}

// WithContext sets a custom context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnClique registers a hook invoked once per maximal clique found.
// The slice passed to the hook is reused only after the hook returns;
// copy it if you need to retain it.
func WithOnClique(fn func(clique []string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClique = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: MinSize 1 (all maximal cliques), background context, no hook.
func DefaultOptions() Options {
	return Options{
		MinSize:  1,
		Ctx:      context.Background(),
		OnClique: nil,
	}
}
