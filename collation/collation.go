// SPDX-License-Identifier: MIT

package collation

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcollate/linker"
	"github.com/katalvlaran/lvcollate/token"
	"github.com/katalvlaran/lvcollate/variantgraph"
)

var (
	// ErrNoWitnesses indicates a run without witnesses.
	ErrNoWitnesses = errors.New("collation: no witnesses")

	// ErrUnknownReference indicates an unknown reference mode name.
	ErrUnknownReference = errors.New("collation: unknown reference mode")
)

// Pass summarizes the alignment and merge of one witness.
type Pass struct {
	Sigil      string `json:"sigil"`
	Tokens     int    `json:"tokens"`
	Linked     int    `json:"linked"`
	Added      int    `json:"added"`
	Transposed int    `json:"transposed"`
	Islands    int    `json:"islands"`
	Gaps       int    `json:"gaps"`
	Decided    bool   `json:"decided"`
}

// Result is a finished collation.
type Result struct {
	Graph  *variantgraph.Graph
	Table  variantgraph.Table
	Passes []Pass
}

// Collate aligns and merges witnesses in order.
func Collate(ctx context.Context, witnesses []token.Witness, opts ...Option) (*Result, error) {
	// 1. Validate and configure
	if len(witnesses) == 0 {
		return nil, ErrNoWitnesses
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := linker.New(
		linker.WithLogger(o.logger),
		linker.WithMetrics(o.metrics),
		linker.WithDecisionGraph(o.decisionGraph),
	)

	// 2. One pass per witness
	g := variantgraph.New()
	res := &Result{Graph: g, Passes: make([]Pass, 0, len(witnesses))}
	for _, w := range witnesses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		refs, err := reference(g, o.reference)
		if err != nil {
			return nil, err
		}
		lr, err := l.Link(refs, w.Tokens, o.comparator)
		if err != nil {
			return nil, fmt.Errorf("collation: witness %q: %w", w.Sigil, err)
		}
		rep, err := g.Merge(w, lr.Alignment)
		if err != nil {
			return nil, fmt.Errorf("collation: witness %q: %w", w.Sigil, err)
		}
		p := Pass{
			Sigil:      w.Sigil,
			Tokens:     w.Len(),
			Linked:     rep.Aligned,
			Added:      rep.Added,
			Transposed: len(rep.Transposed),
			Islands:    len(lr.Islands),
			Gaps:       lr.Gaps,
			Decided:    lr.Decided,
		}
		res.Passes = append(res.Passes, p)
		o.logger.Info("witness merged",
			"sigil", p.Sigil, "tokens", p.Tokens, "linked", p.Linked,
			"added", p.Added, "transposed", p.Transposed)
	}

	// 3. Alignment table
	table, err := g.Table()
	if err != nil {
		return nil, err
	}
	res.Table = table

	return res, nil
}

func reference(g *variantgraph.Graph, mode Reference) ([]variantgraph.VertexRef, error) {
	switch mode {
	case ReferenceSuperbase:
		return g.Superbase()
	default:
		return g.Refs()
	}
}

// Run is one independent collation for CollateAll.
type Run struct {
	Witnesses []token.Witness
	Options   []Option
}

// CollateAll collates runs concurrently, at most parallelism at a time
// (unbounded when parallelism < 1). Results are index-aligned with runs.
// The first failing run cancels the others and its error is returned.
func CollateAll(ctx context.Context, runs []Run, parallelism int) ([]*Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		eg.SetLimit(parallelism)
	}
	results := make([]*Result, len(runs))
	for i, r := range runs {
		eg.Go(func() error {
			res, err := Collate(ctx, r.Witnesses, r.Options...)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
