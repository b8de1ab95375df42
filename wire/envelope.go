// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"bytes"
	"fmt"

	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/types"
)

func envelope(kind uint8, sender ids.NodeID, write func(*bytes.Buffer) error) (*Envelope, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return nil, err
	}
	return &Envelope{Kind: kind, Sender: sender, Payload: buf.Bytes()}, nil
}

// ProposalEnvelope wraps a block proposal from sender.
func ProposalEnvelope(sender ids.NodeID, b types.Block) (*Envelope, error) {
	return envelope(KindProposal, sender, func(buf *bytes.Buffer) error {
		return WriteBlock(buf, b)
	})
}

// VoteEnvelope wraps a vote from sender.
func VoteEnvelope(sender ids.NodeID, v types.Vote) (*Envelope, error) {
	return envelope(KindVote, sender, func(buf *bytes.Buffer) error {
		return WriteVote(buf, v)
	})
}

// NewViewEnvelope wraps a NewView from sender.
func NewViewEnvelope(sender ids.NodeID, nv types.NewView) (*Envelope, error) {
	return envelope(KindNewView, sender, func(buf *bytes.Buffer) error {
		return WriteNewView(buf, nv)
	})
}

// TimeoutEnvelope wraps a Timeout from sender.
func TimeoutEnvelope(sender ids.NodeID, t types.Timeout) (*Envelope, error) {
	return envelope(KindTimeout, sender, func(buf *bytes.Buffer) error {
		return WriteTimeout(buf, t)
	})
}

// TimeoutQcEnvelope wraps a TimeoutQc from sender.
func TimeoutQcEnvelope(sender ids.NodeID, tq types.TimeoutQc) (*Envelope, error) {
	return envelope(KindTimeoutQc, sender, func(buf *bytes.Buffer) error {
		return WriteTimeoutQc(buf, tq)
	})
}

// LocalTimeoutEnvelope wraps the payload-free local-timeout signal.
func LocalTimeoutEnvelope(sender ids.NodeID) *Envelope {
	return &Envelope{Kind: KindLocalTimeout, Sender: sender}
}

func (e *Envelope) payloadReader(kind uint8) (*bytes.Reader, error) {
	if e.Kind != kind {
		return nil, fmt.Errorf("%w: have 0x%02x, want 0x%02x", ErrKindMismatch, e.Kind, kind)
	}
	return bytes.NewReader(e.Payload), nil
}

// Proposal decodes the block out of a proposal envelope.
func (e *Envelope) Proposal() (types.Block, error) {
	r, err := e.payloadReader(KindProposal)
	if err != nil {
		return types.Block{}, err
	}
	return ReadBlock(r)
}

// Vote decodes the vote out of a vote envelope.
func (e *Envelope) Vote() (types.Vote, error) {
	r, err := e.payloadReader(KindVote)
	if err != nil {
		return types.Vote{}, err
	}
	return ReadVote(r)
}

// NewView decodes the NewView out of a new-view envelope.
func (e *Envelope) NewView() (types.NewView, error) {
	r, err := e.payloadReader(KindNewView)
	if err != nil {
		return types.NewView{}, err
	}
	return ReadNewView(r)
}

// Timeout decodes the Timeout out of a timeout envelope.
func (e *Envelope) Timeout() (types.Timeout, error) {
	r, err := e.payloadReader(KindTimeout)
	if err != nil {
		return types.Timeout{}, err
	}
	return ReadTimeout(r)
}

// TimeoutQc decodes the TimeoutQc out of a timeout-qc envelope.
func (e *Envelope) TimeoutQc() (types.TimeoutQc, error) {
	r, err := e.payloadReader(KindTimeoutQc)
	if err != nil {
		return types.TimeoutQc{}, err
	}
	return ReadTimeoutQc(r)
}
