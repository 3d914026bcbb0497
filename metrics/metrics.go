// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors of alignment passes and
// of the HTTP surface. Collectors are registered on an explicit registerer;
// there are no package-level metric variables.
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of lvcollate_alignments_total.
const (
	OutcomeArchipelago   = "archipelago"
	OutcomeDecisionGraph = "decision_graph"
)

// Metrics groups all collectors.
type Metrics struct {
	Alignments      *prometheus.CounterVec
	Islands         prometheus.Histogram
	Gaps            prometheus.Histogram
	AmbiguousTokens prometheus.Counter
	DecisionGraphs  prometheus.Counter
	AlignDuration   prometheus.Histogram
	HTTPRequests    *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// 1. Alignment passes (Counter), labelled by the deciding stage
		Alignments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvcollate_alignments_total",
			Help: "Total number of witness alignment passes",
		}, []string{"outcome"}),

		// 2. Islands per pass (Histogram)
		Islands: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvcollate_islands",
			Help:    "Number of islands detected per alignment pass",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),

		// 3. Gaps of the chosen alignment (Histogram)
		Gaps: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvcollate_gaps",
			Help:    "Number of gaps in the chosen alignment per pass",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),

		// 4. Ambiguous witness tokens (Counter)
		AmbiguousTokens: f.NewCounter(prometheus.CounterOpts{
			Name: "lvcollate_ambiguous_tokens_total",
			Help: "Total number of witness tokens with several candidate vertices",
		}),

		// 5. Decision graphs solved (Counter)
		DecisionGraphs: f.NewCounter(prometheus.CounterOpts{
			Name: "lvcollate_decision_graph_total",
			Help: "Total number of decision graphs built and solved",
		}),

		// 6. Pass duration (Histogram)
		AlignDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvcollate_align_duration_seconds",
			Help:    "Duration of one alignment pass in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),

		// 7. HTTP requests (Counter)
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvcollate_http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"method", "path", "status"}),
	}
}

// Alignment describes one finished alignment pass.
type Alignment struct {
	Islands   int
	Gaps      int
	Ambiguous int
	Solved    bool // a decision graph was built and solved
	Decided   bool // the decision graph path was chosen
	Duration  time.Duration
}

// ObserveAlignment records one alignment pass.
func (m *Metrics) ObserveAlignment(a Alignment) {
	if m == nil {
		return
	}
	outcome := OutcomeArchipelago
	if a.Decided {
		outcome = OutcomeDecisionGraph
	}
	m.Alignments.WithLabelValues(outcome).Inc()
	m.Islands.Observe(float64(a.Islands))
	m.Gaps.Observe(float64(a.Gaps))
	m.AmbiguousTokens.Add(float64(a.Ambiguous))
	if a.Solved {
		m.DecisionGraphs.Inc()
	}
	m.AlignDuration.Observe(a.Duration.Seconds())
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
