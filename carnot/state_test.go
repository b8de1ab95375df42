// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/log"
	"github.com/carnotchain/carnot/metrics"
	"github.com/carnotchain/carnot/overlay"
	"github.com/carnotchain/carnot/types"
)

func testNodes(n int) []ids.NodeID {
	nodes := make([]ids.NodeID, n)
	for i := 0; i < n; i++ {
		var id ids.NodeID
		id[0] = byte(i + 1)
		nodes[i] = id
	}
	return nodes
}

// singleCommitteeState builds a 4-node, single-committee overlay (root is
// also the only leaf) and the genesis Carnot state for nodes[0].
func singleCommitteeState(t *testing.T) (Carnot, []ids.NodeID) {
	t.Helper()
	nodes := testNodes(4)
	ov, err := overlay.New(nodes, [32]byte{}, 1, overlay.RoundRobin{}, overlay.IdentityShuffler{})
	require.NoError(t, err)

	c, err := FromGenesis(nodes[0], types.GenesisBlock(), ov, log.NewNoOp(), metrics.NoOp())
	require.NoError(t, err)
	return c, nodes
}

func childBlock(parent types.Block) types.Block {
	return types.Block{
		ID:       ids.GenerateTestID(),
		View:     parent.View + 1,
		ParentQC: types.StandardQC(parent.View, parent.ID),
	}
}

func TestFromGenesisRejectsNilOverlay(t *testing.T) {
	_, err := FromGenesis(testNodes(1)[0], types.GenesisBlock(), nil, nil, nil)
	require.ErrorIs(t, err, ErrNilOverlay)
}

func TestFromGenesisState(t *testing.T) {
	c, nodes := singleCommitteeState(t)
	require.Equal(t, types.View(0), c.CurrentView())
	require.Equal(t, types.View(0), c.HighestVotedView())
	require.Equal(t, nodes[0], c.ID())

	genesis := types.GenesisBlock()
	b, ok := c.SafeBlock(genesis.ID)
	require.True(t, ok)
	require.Equal(t, genesis, b)
}

func TestReceiveBlockAcceptsNextView(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)

	next, err := c.ReceiveBlock(b1)
	require.NoError(t, err)
	require.Equal(t, types.View(1), next.CurrentView())

	got, ok := next.SafeBlock(b1.ID)
	require.True(t, ok)
	require.Equal(t, b1, got)
}

func TestReceiveBlockRejectsStaleView(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)
	next, err := c.ReceiveBlock(b1)
	require.NoError(t, err)
	b2 := childBlock(b1)
	next, err = next.ReceiveBlock(b2)
	require.NoError(t, err)
	require.Equal(t, types.View(2), next.CurrentView())

	stale := types.Block{ID: ids.GenerateTestID(), View: 1, ParentQC: types.StandardQC(0, genesis.ID)}
	_, err = next.ReceiveBlock(stale)
	require.ErrorIs(t, err, ErrStaleBlockView)
}

func TestReceiveBlockRejectsEquivocation(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)
	next, err := c.ReceiveBlock(b1)
	require.NoError(t, err)

	b1Prime := childBlock(genesis)
	_, err = next.ReceiveBlock(b1Prime)
	require.ErrorIs(t, err, ErrEquivocation)
}

func TestReceiveBlockRejectsUnknownParent(t *testing.T) {
	c, _ := singleCommitteeState(t)
	orphanParent := types.Block{ID: ids.GenerateTestID(), View: 0}
	orphan := childBlock(orphanParent)

	_, err := c.ReceiveBlock(orphan)
	require.ErrorIs(t, err, ErrUnknownParent)
}

func TestApproveBlockEmitsVoteToParentCommittee(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)

	next, err := c.ReceiveBlock(b1)
	require.NoError(t, err)
	require.True(t, next.IsMemberOfLeafCommittee())

	next, send, err := next.ApproveBlock(b1)
	require.NoError(t, err)
	require.Equal(t, types.PayloadVote, send.Payload.Kind)
	require.Equal(t, types.Vote{View: 1, BlockID: b1.ID}, send.Payload.Vote)
	require.Equal(t, next.overlay.RootCommittee().ID(), send.To.ID())
	require.Equal(t, types.View(1), next.HighestVotedView())
}

func TestApproveBlockRejectsUnknownBlock(t *testing.T) {
	c, _ := singleCommitteeState(t)
	unsafeBlock := childBlock(types.GenesisBlock())
	_, _, err := c.ApproveBlock(unsafeBlock)
	require.ErrorIs(t, err, ErrBlockNotSafe)
}

func TestApproveBlockRejectsAlreadyVoted(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)
	c, err := c.ReceiveBlock(b1)
	require.NoError(t, err)
	c, _, err = c.ApproveBlock(b1)
	require.NoError(t, err)

	_, _, err = c.ApproveBlock(b1)
	require.ErrorIs(t, err, ErrAlreadyVoted)
}

// TestThreeChainCommit exercises the commit rule: approving the third
// block in a consecutive-view chain commits the first.
func TestThreeChainCommit(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()

	b1 := childBlock(genesis)
	c, err := c.ReceiveBlock(b1)
	require.NoError(t, err)
	c, _, err = c.ApproveBlock(b1)
	require.NoError(t, err)

	b2 := childBlock(b1)
	c, err = c.ReceiveBlock(b2)
	require.NoError(t, err)
	c, _, err = c.ApproveBlock(b2)
	require.NoError(t, err)
	require.Equal(t, types.View(0), c.LatestCommittedView())

	b3 := childBlock(b2)
	c, err = c.ReceiveBlock(b3)
	require.NoError(t, err)
	c, _, err = c.ApproveBlock(b3)
	require.NoError(t, err)

	require.Equal(t, types.View(1), c.LatestCommittedView())
	require.Equal(t, b1.ID, c.LatestCommittedBlock().ID)
	require.Equal(t, []ids.BlockID{b1.ID}, c.CommittedBlocks())
}

func TestReceiveTimeoutQcAdvancesView(t *testing.T) {
	c, _ := singleCommitteeState(t)
	tq := types.TimeoutQc{View: 5, HighQC: types.StandardQc{View: 4}}

	next, err := c.ReceiveTimeoutQc(tq)
	require.NoError(t, err)
	require.Equal(t, types.View(6), next.CurrentView())

	got, ok := next.LastViewTimeoutQC()
	require.True(t, ok)
	require.Equal(t, tq, got)
}

func TestReceiveTimeoutQcRejectsStale(t *testing.T) {
	c, _ := singleCommitteeState(t)
	c, err := c.ReceiveTimeoutQc(types.TimeoutQc{View: 3})
	require.NoError(t, err)

	_, err = c.ReceiveTimeoutQc(types.TimeoutQc{View: 1})
	require.ErrorIs(t, err, ErrStaleTimeoutQc)
}

func TestLocalTimeoutEmitsForRootMember(t *testing.T) {
	c, _ := singleCommitteeState(t)
	require.True(t, c.IsMemberOfRootCommittee())

	next, send := c.LocalTimeout()
	require.NotNil(t, send)
	require.Equal(t, types.PayloadTimeout, send.Payload.Kind)
	require.Equal(t, next.currentView, next.HighestVotedView())
}

func TestApproveNewViewAdvancesViewAndEmits(t *testing.T) {
	c, _ := singleCommitteeState(t)
	tq := types.TimeoutQc{View: 2, HighQC: types.StandardQc{View: 1}}
	newViews := []types.NewView{
		{View: 3, HighQC: types.StandardQc{View: 2}},
		{View: 3, HighQC: types.StandardQc{View: 1}},
	}

	next, send := c.ApproveNewView(tq, newViews)
	require.Equal(t, types.View(4), next.CurrentView())
	require.Equal(t, types.View(2), next.HighQC().View)
	require.Equal(t, types.PayloadNewView, send.Payload.Kind)
	require.Equal(t, types.View(3), send.Payload.NewView.View)
}
