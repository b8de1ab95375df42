// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package committee

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carnotchain/carnot/ids"
)

func TestNewDeduplicatesAndSorts(t *testing.T) {
	a, b := ids.GenerateTestNodeID(), ids.GenerateTestNodeID()
	c := New(b, a, a, b)

	require.Equal(t, 2, c.Len())
	members := c.Members()
	require.True(t, members[0].Less(members[1]) || members[0] == members[1])
}

func TestContains(t *testing.T) {
	member := ids.GenerateTestNodeID()
	outsider := ids.GenerateTestNodeID()
	c := New(member)

	require.True(t, c.Contains(member))
	require.False(t, c.Contains(outsider))
}

func TestMembersReturnsCopy(t *testing.T) {
	member := ids.GenerateTestNodeID()
	c := New(member)

	members := c.Members()
	members[0] = ids.GenerateTestNodeID()

	require.True(t, c.Contains(member))
}

func TestIDIsStableAndOrderIndependent(t *testing.T) {
	a, b := ids.GenerateTestNodeID(), ids.GenerateTestNodeID()

	require.Equal(t, New(a, b).ID(), New(b, a).ID())
}

func TestSuperMajority(t *testing.T) {
	cases := map[int]int{
		0: 0,
		1: 1,
		2: 2,
		3: 3,
		4: 3,
		6: 5,
		9: 7,
	}
	for k, want := range cases {
		require.Equal(t, want, SuperMajority(k), "k=%d", k)
	}
}

func TestCommitteeSuperMajorityMatchesLen(t *testing.T) {
	nodes := make([]ids.NodeID, 4)
	for i := range nodes {
		nodes[i] = ids.GenerateTestNodeID()
	}
	c := New(nodes...)
	require.Equal(t, SuperMajority(c.Len()), c.SuperMajority())
}
