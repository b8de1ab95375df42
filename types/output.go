// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/carnotchain/carnot/committee"

// PayloadKind tags the payload carried by a Send output.
type PayloadKind uint8

const (
	PayloadVote PayloadKind = iota
	PayloadNewView
	PayloadTimeout
)

// Payload is a tagged union over the three message kinds a node addresses
// to a committee: Vote, NewView and Timeout.
type Payload struct {
	Kind    PayloadKind
	Vote    Vote
	NewView NewView
	Timeout Timeout
}

// Send addresses a Payload to every member of a committee. Within one
// step, outbound sends are emitted in a deterministic order: votes
// first, then proposals, then broadcasts — callers collecting Outputs
// must preserve the order in which the state machine returns them.
type Send struct {
	To      committee.Committee
	Payload Payload
}

// OutputKind tags which variant an Output holds.
type OutputKind uint8

const (
	OutputSend OutputKind = iota
	OutputBroadcastProposal
	OutputBroadcastTimeoutQc
)

// Output is everything a consensus state transition may emit towards the
// network adapter.
type Output struct {
	Kind             OutputKind
	Send             Send
	Proposal         Block
	BroadcastTimeout TimeoutQc
}
