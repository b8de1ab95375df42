// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carnotchain/carnot/ids"
)

func TestRoundRobinCyclesInOrder(t *testing.T) {
	nodes := testNodes(3)
	rr := RoundRobin{}

	require.Equal(t, nodes[0], rr.LeaderForView(nodes, 0))
	require.Equal(t, nodes[1], rr.LeaderForView(nodes, 1))
	require.Equal(t, nodes[2], rr.LeaderForView(nodes, 2))
	require.Equal(t, nodes[0], rr.LeaderForView(nodes, 3))
}

func TestWeightedFavorsHeavierNodes(t *testing.T) {
	nodes := testNodes(2)
	w := Weighted{Weights: map[ids.NodeID]uint64{
		nodes[0]: 3,
		nodes[1]: 1,
	}}

	// Cumulative weights split views 0..3 as {0,1,2} -> nodes[0],
	// {3} -> nodes[1].
	require.Equal(t, nodes[0], w.LeaderForView(nodes, 0))
	require.Equal(t, nodes[0], w.LeaderForView(nodes, 2))
	require.Equal(t, nodes[1], w.LeaderForView(nodes, 3))
}

func TestWeightedSkipsZeroWeightNodes(t *testing.T) {
	nodes := testNodes(3)
	w := Weighted{Weights: map[ids.NodeID]uint64{nodes[2]: 2}}

	for v := uint64(0); v < 4; v++ {
		require.Equal(t, nodes[2], w.LeaderForView(nodes, v))
	}
}

func TestWeightedWithNoWeightsFallsBackToRoundRobin(t *testing.T) {
	nodes := testNodes(3)
	w := Weighted{}

	for v := uint64(0); v < 6; v++ {
		require.Equal(t, RoundRobin{}.LeaderForView(nodes, v), w.LeaderForView(nodes, v))
	}
}

func TestLeaderSelectorsOnEmptyNodeList(t *testing.T) {
	require.Equal(t, ids.EmptyNodeID, RoundRobin{}.LeaderForView(nil, 0))
	require.Equal(t, ids.EmptyNodeID, Weighted{}.LeaderForView(nil, 0))
}
