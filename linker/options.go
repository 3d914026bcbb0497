// SPDX-License-Identifier: MIT

package linker

import (
	"log/slog"

	"github.com/katalvlaran/lvcollate/metrics"
)

// Option configures a Linker.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	metrics       *metrics.Metrics
	decisionGraph bool
}

func defaultOptions() options {
	return options{
		logger:        slog.New(slog.DiscardHandler),
		decisionGraph: true,
	}
}

// WithLogger sets the structured logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the collectors every pass is recorded on.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithDecisionGraph enables or disables decision graphs for ambiguous
// passes. Default: enabled.
func WithDecisionGraph(enabled bool) Option {
	return func(o *options) { o.decisionGraph = enabled }
}
