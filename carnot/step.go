// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"bytes"
	"crypto/sha256"

	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/tally"
	"github.com/carnotchain/carnot/types"
	"github.com/carnotchain/carnot/wire"
)

// Step consumes one tally.Event and returns the resulting state plus the
// Outputs it produces, in deterministic order (votes first, proposals
// next, broadcasts last). It is a pure function returning (Carnot,
// []Output) rather than mutating in place, so the caller (an event loop,
// or a test) owns the only mutable reference.
func (c Carnot) Step(ev tally.Event) (Carnot, []types.Output, error) {
	switch ev.Kind {
	case tally.EventProposal:
		return c.stepProposal(ev.Block)
	case tally.EventApprove:
		return c.stepApprove(ev)
	case tally.EventNewView:
		return c.stepNewView(ev)
	case tally.EventTimeoutQc:
		return c.stepTimeoutQc(ev)
	case tally.EventRootTimeout:
		return c.stepRootTimeout(ev)
	case tally.EventProposeBlock:
		return c.stepProposeBlock(ev.Qc)
	case tally.EventLocalTimeout:
		return c.stepLocalTimeout()
	default:
		return c, nil, nil
	}
}

// stepProposal handles a freshly reassembled proposal: insert it into
// safe_blocks, and if this node is a leaf member, vote for it immediately.
func (c Carnot) stepProposal(b types.Block) (Carnot, []types.Output, error) {
	next, err := c.ReceiveBlock(b)
	if err != nil {
		return c, nil, err
	}

	var outputs []types.Output
	if next.overlay.IsMemberOfLeafCommittee(next.id) {
		var send types.Send
		next, send, err = next.ApproveBlock(b)
		if err != nil {
			return c, nil, err
		}
		outputs = append(outputs, types.Output{Kind: types.OutputSend, Send: send})
	}
	return next, outputs, nil
}

// stepApprove handles an Approve event: the tally already collected the
// child committee's supermajority, so this node (an internal or root
// member) can cast its own vote. If this node also leads the next view, it
// proposes immediately after voting.
func (c Carnot) stepApprove(ev tally.Event) (Carnot, []types.Output, error) {
	b, ok := c.safeBlocks[ev.BlockID]
	if !ok {
		return c, nil, ErrBlockNotSafe
	}

	next, send, err := c.ApproveBlock(b)
	if err != nil {
		return c, nil, err
	}
	outputs := []types.Output{{Kind: types.OutputSend, Send: send}}

	if next.IsLeaderForView(next.currentView + 1) {
		outputs = append(outputs, types.Output{
			Kind:     types.OutputBroadcastProposal,
			Proposal: newProposal(next.currentView+1, ev.Qc),
		})
	}
	return next, outputs, nil
}

// newProposal builds the block a leader broadcasts for view, certified by
// qc. The block id is content-addressed: a hash over the canonical bytes
// of the header fields, so it is distinct from the parent's id and two
// leaders proposing the same (view, qc) derive the same block.
func newProposal(view types.View, qc types.Qc) types.Block {
	var buf bytes.Buffer
	_ = wire.WriteView(&buf, view)
	_ = wire.WriteQc(&buf, qc)
	return types.Block{
		ID:       ids.BlockID(sha256.Sum256(buf.Bytes())),
		View:     view,
		ParentQC: qc,
	}
}

// stepNewView handles a NewView event: the tally collected a leader
// supermajority of NewView votes for this timeout, so fold them into an
// AggregateQc and advance. If this node leads the view after next, forward
// its own NewView onward (mirroring the reference's "send to self" quirk
// for the next leader).
func (c Carnot) stepNewView(ev tally.Event) (Carnot, []types.Output, error) {
	tq := ev.TimeoutQC
	next, send := c.ApproveNewView(tq, ev.NewViews)

	var outputs []types.Output
	if next.IsLeaderForView(tq.View + 2) {
		outputs = append(outputs, types.Output{Kind: types.OutputSend, Send: send})
	}
	return next, outputs, nil
}

// stepTimeoutQc handles a forwarded TimeoutQc: advance the view, then
// gossip this node's own NewView to its own committee.
func (c Carnot) stepTimeoutQc(ev tally.Event) (Carnot, []types.Output, error) {
	tq := ev.TimeoutQC
	next, err := c.ReceiveTimeoutQc(tq)
	if err != nil {
		return c, nil, err
	}

	nv := types.NewView{
		View:      tq.View + 1,
		HighQC:    next.localHighQC,
		TimeoutQC: tq,
		Sender:    next.id,
	}
	send := types.Send{
		To:      next.overlay.NodeCommittee(next.id),
		Payload: types.Payload{Kind: types.PayloadNewView, NewView: nv},
	}
	return next, []types.Output{{Kind: types.OutputSend, Send: send}}, nil
}

// stepRootTimeout handles a RootTimeout event: the root committee reached
// supermajority on local timeouts; if this node is a root member, it
// broadcasts the resulting TimeoutQc carrying the highest high QC among
// the collected timeouts and its own.
func (c Carnot) stepRootTimeout(ev tally.Event) (Carnot, []types.Output, error) {
	if !c.overlay.IsMemberOfRootCommittee(c.id) {
		return c, nil, nil
	}

	highest := c.localHighQC
	for _, t := range ev.Timeouts {
		if t.HighQC.View > highest.View {
			highest = t.HighQC
		}
	}

	tq := types.TimeoutQc{View: c.currentView, HighQC: highest, Sender: c.id}
	return c, []types.Output{{Kind: types.OutputBroadcastTimeoutQc, BroadcastTimeout: tq}}, nil
}

// stepProposeBlock handles a leader-only event: this node observed a QC
// and leads the following view, so it broadcasts a new proposal.
func (c Carnot) stepProposeBlock(qc types.Qc) (Carnot, []types.Output, error) {
	if !c.IsLeaderForView(qc.View() + 1) {
		return c, nil, nil
	}
	return c, []types.Output{{Kind: types.OutputBroadcastProposal, Proposal: newProposal(qc.View()+1, qc)}}, nil
}

// stepLocalTimeout handles the per-view timer firing.
func (c Carnot) stepLocalTimeout() (Carnot, []types.Output, error) {
	next, send := c.LocalTimeout()
	if send == nil {
		return next, nil, nil
	}
	return next, []types.Output{{Kind: types.OutputSend, Send: *send}}, nil
}
