// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tally

import (
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/types"
)

// EventKind tags which variant an Event holds.
type EventKind uint8

const (
	EventApprove EventKind = iota
	EventNewView
	EventRootTimeout
	EventProposal
	EventTimeoutQc
	EventLocalTimeout
	EventProposeBlock
)

// Event is everything the event builder can hand the consensus state
// machine to drive a step.
type Event struct {
	Kind EventKind

	// EventApprove
	Qc      types.Qc
	BlockID ids.BlockID
	Votes   []VoteRecord

	// EventNewView
	TimeoutQC types.TimeoutQc
	NewViews  []types.NewView

	// EventRootTimeout
	Timeouts []types.Timeout

	// EventProposal
	Block types.Block

	// EventProposeBlock reuses Qc above.
}

// VoteRecord pairs a vote with the voter that cast it, since Vote itself
// carries no sender (the sender travels in the network envelope).
type VoteRecord struct {
	Voter ids.NodeID
	Vote  types.Vote
}
