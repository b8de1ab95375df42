// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg)

	r.VotesReceived.Inc()
	r.VotesRejected.WithLabelValues("wrong view").Inc()
	r.ApprovalsEmitted.Inc()
	r.Timeouts.Inc()
	r.CurrentView.Set(4)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	var sawView bool
	for _, f := range families {
		if f.GetName() == "carnot_current_view" {
			sawView = true
			require.Equal(t, float64(4), f.Metric[0].GetGauge().GetValue())
		}
	}
	require.True(t, sawView)
}

func TestNoOpDoesNotPanic(t *testing.T) {
	r := NoOp()
	require.NotPanics(t, func() {
		r.VotesReceived.Inc()
		r.CurrentView.Set(1)
	})
}
