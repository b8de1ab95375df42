// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package overlay

import "github.com/carnotchain/carnot/ids"

// LeaderSelector decides, for an arbitrary view, which node of a fixed
// ordered node list leads it. It is distinct from the overlay's own
// NextLeader() query (see tree.go), which is always entropy-driven: the
// selector instead backs Carnot.IsLeaderForView, which must answer for any
// view, not just the one immediately following the current overlay.
type LeaderSelector interface {
	LeaderForView(nodes []ids.NodeID, view uint64) ids.NodeID
}

// RoundRobin cycles through nodes in list order, one per view.
type RoundRobin struct{}

// LeaderForView implements LeaderSelector.
func (RoundRobin) LeaderForView(nodes []ids.NodeID, view uint64) ids.NodeID {
	if len(nodes) == 0 {
		return ids.EmptyNodeID
	}
	return nodes[int(view%uint64(len(nodes)))]
}

// Weighted picks a leader proportionally to each node's stake weight
// (matching the config option `leader_selector: weighted`). Nodes with no
// recorded weight carry weight 0; if no node carries any weight the
// selection degenerates to RoundRobin.
type Weighted struct {
	Weights map[ids.NodeID]uint64
}

// LeaderForView implements LeaderSelector.
func (w Weighted) LeaderForView(nodes []ids.NodeID, view uint64) ids.NodeID {
	if len(nodes) == 0 {
		return ids.EmptyNodeID
	}
	var total uint64
	for _, n := range nodes {
		total += w.weightOf(n)
	}
	if total == 0 {
		return RoundRobin{}.LeaderForView(nodes, view)
	}
	target := view % total
	var cum uint64
	for _, n := range nodes {
		cum += w.weightOf(n)
		if target < cum {
			return n
		}
	}
	return nodes[len(nodes)-1]
}

func (w Weighted) weightOf(n ids.NodeID) uint64 {
	return w.Weights[n]
}
