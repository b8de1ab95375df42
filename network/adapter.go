// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package network states the external collaborators a Carnot node
// depends on: the network adapter and the fountain code used to
// disseminate and reassemble proposals. Neither is implemented here —
// only the interface and a generated-style mock.
package network

import (
	"context"

	"github.com/carnotchain/carnot/committee"
	"github.com/carnotchain/carnot/types"
)

// Adapter is the network transport the consensus core is driven through.
// Its methods are named after the four message kinds in flight (proposal
// chunks, approvals, timeouts, new-views) plus the root-only
// TimeoutQc broadcast, mirroring the trait's stream/forward split.
type Adapter interface {
	// BroadcastProposalChunk disseminates one fountain-coded fragment of a
	// proposal to committee for view.
	BroadcastProposalChunk(ctx context.Context, to committee.Committee, view types.View, chunk []byte) error

	// ReceiveProposalChunks returns the channel of inbound proposal
	// fragments for view, closed once the adapter stops listening.
	ReceiveProposalChunks(ctx context.Context, view types.View) (<-chan []byte, error)

	// ForwardVote sends a vote to committee (typically the sender's
	// parent committee).
	ForwardVote(ctx context.Context, to committee.Committee, vote types.Vote) error

	// ForwardNewView sends a NewView to committee.
	ForwardNewView(ctx context.Context, to committee.Committee, nv types.NewView) error

	// ForwardTimeout sends a Timeout to committee (the root committee).
	ForwardTimeout(ctx context.Context, to committee.Committee, timeout types.Timeout) error

	// BroadcastTimeoutQc fans a TimeoutQc out to every node, driving a
	// view change once the root committee certifies one.
	BroadcastTimeoutQc(ctx context.Context, tq types.TimeoutQc) error
}

// Fountain encodes a proposal's bytes into chunks for dissemination and
// reassembles a stream of chunks back into the original bytes.
// FountainError (ErrDecode below) models a reassembly failure driving the
// view toward timeout rather than halting.
type Fountain interface {
	Encode(block []byte, settings FountainSettings) ([][]byte, error)
	Decode(chunks [][]byte, settings FountainSettings) ([]byte, error)
}

// FountainSettings configures chunk size and redundancy. The fields are a
// stated interface only; concrete fountain-code parameters are an
// external concern.
type FountainSettings struct {
	ChunkSize  int
	Redundancy float64
}
