// Package girvan: the Girvan–Newman partition sequence.
package girvan

import (
	"sort"

	"github.com/katalvlaran/cloven/core"
)

// Partitioner produces the Girvan–Newman partition sequence for one
// graph, one removal step at a time, in the scanner idiom:
//
//	p, err := girvan.New(g)
//	for p.Next() {
//	    partition := p.Partition()
//	}
//	err = p.Err()
//
// The Partitioner owns a clone of the input graph; the caller's graph
// is never mutated. A Partitioner is single-use and not safe for
// concurrent use; re-invoke New to restart the sequence.
type Partitioner struct {
	opts Options
	work *core.Graph // private working copy, reduced step by step
	part [][]string  // partition emitted by the latest step
	step int         // removal steps performed so far
	done bool
	err  error
}

// New validates g and prepares a Partitioner over a private clone of
// it. No betweenness is computed until the first Next call.
//
// Returns ErrNilGraph for a nil graph and ErrBadMaxSteps for a
// negative WithMaxSteps bound.
func New(g *core.Graph, opts ...Option) (*Partitioner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.MaxSteps < 0 {
		return nil, ErrBadMaxSteps
	}

	return &Partitioner{opts: cfg, work: g.Clone()}, nil
}

// Next advances the sequence by one removal step: it computes edge
// betweenness over the current working graph, removes every edge tied
// (within TieEpsilon) with the maximum, and captures the resulting
// connected components as the next partition.
//
// Next returns false when the sequence is exhausted — the working
// graph has no edges left (an edgeless input therefore yields an empty
// sequence), the MaxSteps bound was hit, or the context was cancelled.
// Check Err after the loop to distinguish cancellation from normal
// exhaustion.
func (p *Partitioner) Next() bool {
	if p.done || p.err != nil {
		return false
	}
	// Cancellation check once per step; a step's sweep is the unit of
	// work worth interrupting.
	select {
	case <-p.opts.Ctx.Done():
		p.err = p.opts.Ctx.Err()
		p.done = true

		return false
	default:
	}

	if p.work.EdgeCount() == 0 {
		p.done = true

		return false
	}
	if p.opts.MaxSteps > 0 && p.step >= p.opts.MaxSteps {
		p.done = true

		return false
	}

	// 1) Betweenness over the current (possibly already reduced) graph.
	eb, err := EdgeBetweenness(p.work)
	if err != nil {
		p.err = err
		p.done = true

		return false
	}

	// 2) Remove the whole tied-maximum group in this single step.
	for _, k := range maxTiedEdges(eb) {
		if err = p.work.RemoveEdgeBetween(k.U, k.V); err != nil {
			p.err = err
			p.done = true

			return false
		}
	}

	// 3) Emit the partition after removal.
	p.part = p.work.ConnectedComponents()
	p.step++

	return true
}

// Partition returns the partition produced by the latest successful
// Next call: disjoint, exhaustive, sorted node sets ordered by their
// smallest member. The slice is owned by the Partitioner and is
// replaced on the following Next.
func (p *Partitioner) Partition() [][]string {
	return p.part
}

// Steps reports how many removal steps have been performed so far.
func (p *Partitioner) Steps() int {
	return p.step
}

// Err returns the first error encountered by Next, if any: context
// cancellation, or a failure while reducing the working graph.
func (p *Partitioner) Err() error {
	return p.err
}

// maxTiedEdges returns every edge whose score lies within TieEpsilon
// (relative) of the maximum, sorted by key for deterministic removal
// order.
func maxTiedEdges(eb map[EdgeKey]float64) []EdgeKey {
	maxScore := 0.0
	for _, score := range eb {
		if score > maxScore {
			maxScore = score
		}
	}

	cut := maxScore * (1 - TieEpsilon)
	tied := make([]EdgeKey, 0, 1)
	for k, score := range eb {
		if score >= cut {
			tied = append(tied, k)
		}
	}
	sort.Slice(tied, func(i, j int) bool {
		if tied[i].U != tied[j].U {
			return tied[i].U < tied[j].U
		}

		return tied[i].V < tied[j].V
	})

	return tied
}

// Partitions materializes the full Girvan–Newman sequence eagerly.
// Convenient for small graphs and tests; prefer the Partitioner loop
// when only a prefix of the sequence is needed.
func Partitions(g *core.Graph, opts ...Option) ([][][]string, error) {
	p, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	var seq [][][]string
	for p.Next() {
		// Copy each element so the materialized sequence stays valid
		// independent of the Partitioner.
		part := p.Partition()
		cp := make([][]string, len(part))
		for i, comp := range part {
			cp[i] = append([]string(nil), comp...)
		}
		seq = append(seq, cp)
	}

	return seq, p.Err()
}
