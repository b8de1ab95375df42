// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carnotchain/carnot/tally"
	"github.com/carnotchain/carnot/types"
)

func TestStepProposalVotesAsLeaf(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)

	next, outputs, err := c.Step(tally.Event{Kind: tally.EventProposal, Block: b1})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.Equal(t, types.OutputSend, outputs[0].Kind)
	require.Equal(t, types.PayloadVote, outputs[0].Send.Payload.Kind)
	require.Equal(t, types.View(1), next.CurrentView())
}

func TestStepRootTimeoutBroadcastsForRootMember(t *testing.T) {
	c, _ := singleCommitteeState(t)
	require.True(t, c.IsMemberOfRootCommittee())

	ev := tally.Event{
		Kind: tally.EventRootTimeout,
		Timeouts: []types.Timeout{
			{View: 0, HighQC: types.StandardQc{View: 0}},
			{View: 0, HighQC: types.StandardQc{View: 3}},
		},
	}
	_, outputs, err := c.Step(ev)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.Equal(t, types.OutputBroadcastTimeoutQc, outputs[0].Kind)
	require.Equal(t, types.View(3), outputs[0].BroadcastTimeout.HighQC.View)
}

func TestStepLocalTimeoutEmitsSend(t *testing.T) {
	c, _ := singleCommitteeState(t)
	next, outputs, err := c.Step(tally.Event{Kind: tally.EventLocalTimeout})
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.Equal(t, types.PayloadTimeout, outputs[0].Send.Payload.Kind)
	require.Equal(t, next.currentView, next.HighestVotedView())
}

func TestStepTimeoutQcGossipsNewView(t *testing.T) {
	c, _ := singleCommitteeState(t)
	tq := types.TimeoutQc{View: 2, HighQC: types.StandardQc{View: 1}}

	next, outputs, err := c.Step(tally.Event{Kind: tally.EventTimeoutQc, TimeoutQC: tq})
	require.NoError(t, err)
	require.Equal(t, types.View(3), next.CurrentView())
	require.Len(t, outputs, 1)
	require.Equal(t, types.PayloadNewView, outputs[0].Send.Payload.Kind)
}

func TestStepApproveVotesAndMayPropose(t *testing.T) {
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()
	b1 := childBlock(genesis)
	c, err := c.ReceiveBlock(b1)
	require.NoError(t, err)

	qc := types.StandardQC(b1.View, b1.ID)
	ev := tally.Event{Kind: tally.EventApprove, Qc: qc, BlockID: b1.ID}
	next, outputs, err := c.Step(ev)
	require.NoError(t, err)
	require.NotEmpty(t, outputs)
	require.Equal(t, types.OutputSend, outputs[0].Kind)
	require.Equal(t, types.PayloadVote, outputs[0].Send.Payload.Kind)

	if next.IsLeaderForView(next.currentView + 1) {
		require.Len(t, outputs, 2)
		require.Equal(t, types.OutputBroadcastProposal, outputs[1].Kind)
		require.NotEqual(t, b1.ID, outputs[1].Proposal.ID)
		require.Equal(t, b1.View+1, outputs[1].Proposal.View)
		require.Equal(t, qc, outputs[1].Proposal.ParentQC)
	}
}

func TestStepUnknownEventKindIsNoop(t *testing.T) {
	c, _ := singleCommitteeState(t)
	next, outputs, err := c.Step(tally.Event{Kind: tally.EventKind(99)})
	require.NoError(t, err)
	require.Nil(t, outputs)
	require.Equal(t, c.CurrentView(), next.CurrentView())
}
