// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package committee models a fixed, ordered subset of validators and the
// committee identifier derived from its membership.
package committee

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/carnotchain/carnot/ids"
)

// Committee is a sorted, deduplicated set of NodeIDs. Once built it is
// read-only: mutation always produces a new Committee.
type Committee struct {
	members map[ids.NodeID]struct{}
	sorted  []ids.NodeID
}

// New builds a Committee from a (possibly unsorted, possibly duplicated)
// slice of NodeIDs.
func New(members ...ids.NodeID) Committee {
	set := make(map[ids.NodeID]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	sorted := maps.Keys(set)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return Committee{members: set, sorted: sorted}
}

// Len returns the number of distinct members.
func (c Committee) Len() int {
	return len(c.sorted)
}

// Contains reports whether id is a member of c.
func (c Committee) Contains(id ids.NodeID) bool {
	_, ok := c.members[id]
	return ok
}

// Members returns the committee's members in sorted order. The returned
// slice is a copy; callers may not mutate the committee through it.
func (c Committee) Members() []ids.NodeID {
	out := make([]ids.NodeID, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// ID derives the CommitteeID deterministically from the sorted membership.
func (c Committee) ID() ids.CommitteeID {
	return ids.HashCommittee(c.sorted)
}

// SuperMajority returns floor(2k/3)+1 for a committee of size k, the
// supermajority threshold used throughout the consensus state machine.
func (c Committee) SuperMajority() int {
	return SuperMajority(c.Len())
}

// SuperMajority returns floor(2k/3)+1 for a committee of size k.
func SuperMajority(k int) int {
	if k <= 0 {
		return 0
	}
	return (2*k)/3 + 1
}

// String renders the committee as its derived ID.
func (c Committee) String() string {
	return fmt.Sprintf("Committee{id=%s, size=%d}", c.ID(), c.Len())
}
