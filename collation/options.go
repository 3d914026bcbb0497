// SPDX-License-Identifier: MIT

package collation

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcollate/metrics"
	"github.com/katalvlaran/lvcollate/token"
)

// Reference selects what each witness is aligned against.
type Reference uint8

const (
	// ReferenceGraph aligns against the ranked variant graph.
	ReferenceGraph Reference = iota
	// ReferenceSuperbase aligns against the flattened superbase.
	ReferenceSuperbase
)

// String implements fmt.Stringer.
func (r Reference) String() string {
	switch r {
	case ReferenceGraph:
		return "graph"
	case ReferenceSuperbase:
		return "superbase"
	default:
		return fmt.Sprintf("Reference(%d)", uint8(r))
	}
}

// ParseReference resolves a configured reference name.
func ParseReference(name string) (Reference, error) {
	switch name {
	case "graph", "":
		return ReferenceGraph, nil
	case "superbase":
		return ReferenceSuperbase, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownReference, name)
	}
}

// Option configures Collate.
type Option func(*options)

type options struct {
	comparator    token.Comparator
	reference     Reference
	logger        *slog.Logger
	metrics       *metrics.Metrics
	decisionGraph bool
}

func defaultOptions() options {
	return options{
		comparator:    token.Equality,
		reference:     ReferenceGraph,
		logger:        slog.New(slog.DiscardHandler),
		decisionGraph: true,
	}
}

// WithComparator sets the token comparator. Passing nil has no effect.
// Default: token.Equality.
func WithComparator(cmp token.Comparator) Option {
	return func(o *options) {
		if cmp != nil {
			o.comparator = cmp
		}
	}
}

// WithReference sets the reference mode. Default: ReferenceGraph.
func WithReference(r Reference) Option {
	return func(o *options) { o.reference = r }
}

// WithLogger sets the structured logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records every alignment pass on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithDecisionGraph enables or disables decision graphs. Default: enabled.
func WithDecisionGraph(enabled bool) Option {
	return func(o *options) { o.decisionGraph = enabled }
}
