// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the wire-agnostic data model shared by the
// consensus state machine and the event builder: views, blocks, quorum
// certificates, votes and timeouts.
package types

import "github.com/carnotchain/carnot/ids"

// View is a monotonic round counter. It never decreases on a node.
type View uint64

// Block is a proposal header. Its view must be strictly greater than its
// parent QC's view, except for the genesis block.
type Block struct {
	ID       ids.BlockID
	View     View
	ParentQC Qc
}

// GenesisBlock returns the distinguished block at view 0 that seeds a
// Carnot instance via FromGenesis.
func GenesisBlock() Block {
	return Block{ID: ids.EmptyID, View: 0, ParentQC: Qc{}}
}

// IsGenesis reports whether b is the genesis block.
func (b Block) IsGenesis() bool {
	return b.View == 0
}

// StandardQc is a quorum certificate over a block.
type StandardQc struct {
	View    View
	BlockID ids.BlockID
}

// AggregateQc is a quorum certificate over a view timeout: a supermajority
// of NewView senders' high QCs, the highest of which is carried here.
type AggregateQc struct {
	View   View
	HighQC StandardQc
}

// TimeoutQc is proof the root committee observed a view timeout.
type TimeoutQc struct {
	View   View
	HighQC StandardQc
	Sender ids.NodeID
}

// Vote is a signed endorsement of a block at a view. The voter's identity
// travels alongside the vote in network messages, not in the vote
// itself.
type Vote struct {
	View    View
	BlockID ids.BlockID
}

// NewView is a vote for the next view after a timeout.
type NewView struct {
	View      View
	HighQC    StandardQc
	TimeoutQC TimeoutQc
	Sender    ids.NodeID
}

// Timeout is an individual node's signal that its view timer expired.
type Timeout struct {
	View   View
	HighQC StandardQc
	Sender ids.NodeID
}
