// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics wraps prometheus.Registerer in a small Registry handing
// out counters and gauges that the consensus core instruments itself
// with, without hard-coding a global registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry hands out the counters and gauges the tally builder and
// consensus state machine report to.
type Registry struct {
	VotesReceived    prometheus.Counter
	VotesRejected    *prometheus.CounterVec
	ApprovalsEmitted prometheus.Counter
	Timeouts         prometheus.Counter
	CurrentView      prometheus.Gauge
}

// NewRegistry registers and returns a Registry against reg. Passing
// prometheus.NewRegistry() (rather than the global DefaultRegisterer)
// keeps multiple in-process nodes from colliding on metric names.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		VotesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carnot_votes_received_total",
			Help: "Total number of votes accepted into the tally accumulators.",
		}),
		VotesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carnot_votes_rejected_total",
			Help: "Total number of votes rejected by the tally, by reason.",
		}, []string{"reason"}),
		ApprovalsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carnot_approvals_emitted_total",
			Help: "Total number of Approve events emitted after reaching quorum.",
		}),
		Timeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carnot_local_timeouts_total",
			Help: "Total number of local view timeouts observed.",
		}),
		CurrentView: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "carnot_current_view",
			Help: "The node's current consensus view.",
		}),
	}
	reg.MustRegister(r.VotesReceived, r.VotesRejected, r.ApprovalsEmitted, r.Timeouts, r.CurrentView)
	return r
}

// NoOp returns a Registry backed by a throwaway registry, for tests and
// callers that do not want to export metrics.
func NoOp() *Registry {
	return NewRegistry(prometheus.NewRegistry())
}
