// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/types"
)

// ReceiveBlock validates and inserts b into the safe block set. b.View
// must equal the current view or the next one; its parent QC must
// reference a block already marked safe or equal the local high QC. A
// second, distinct block for a view already occupied by a safe block is
// an equivocation and is rejected.
func (c Carnot) ReceiveBlock(b types.Block) (Carnot, error) {
	if !b.IsGenesis() && b.View != c.currentView && b.View != c.currentView+1 {
		return c, ErrStaleBlockView
	}

	parentQC := b.ParentQC.HighQC()
	if _, known := c.safeBlocks[parentQC.BlockID]; !known && parentQC != c.localHighQC {
		return c, ErrUnknownParent
	}

	for _, existing := range c.safeBlocks {
		if existing.View == b.View && existing.ID != b.ID {
			return c, ErrEquivocation
		}
	}

	next := c
	next.safeBlocks = c.cloneSafeBlocks()
	next.safeBlocks[b.ID] = b
	if parentQC.View > next.localHighQC.View {
		next.localHighQC = parentQC
	}
	if b.View > next.currentView {
		next.currentView = b.View
		next.metrics.CurrentView.Set(float64(next.currentView))
	}
	return next, nil
}

// ApproveBlock casts this node's vote for b. The caller decides *when*
// to call it: leaf members vote as soon as they receive a valid block,
// internal and root members only once their child committee's tally
// reaches supermajority. ApproveBlock itself only enforces that b is
// known and not already voted past.
func (c Carnot) ApproveBlock(b types.Block) (Carnot, types.Send, error) {
	if _, known := c.safeBlocks[b.ID]; !known {
		return c, types.Send{}, ErrBlockNotSafe
	}
	if b.View <= c.highestVotedView && !b.IsGenesis() {
		return c, types.Send{}, ErrAlreadyVoted
	}

	next := c
	next.highestVotedView = b.View
	next = next.tryCommit(b)

	vote := types.Vote{View: b.View, BlockID: b.ID}
	send := types.Send{
		To:      next.overlay.ParentCommittee(next.id),
		Payload: types.Payload{Kind: types.PayloadVote, Vote: vote},
	}
	return next, send, nil
}

// tryCommit applies the three-chain rule: approving b as the third block
// in the chain, walk back through its two ancestors; if the three views
// are consecutive, the earliest ancestor is committed.
func (c Carnot) tryCommit(b types.Block) Carnot {
	bPrime, ok := c.safeBlocks[b.ParentQC.HighQC().BlockID]
	if !ok {
		return c
	}
	grandparent, ok := c.safeBlocks[bPrime.ParentQC.HighQC().BlockID]
	if !ok {
		return c
	}
	if bPrime.View != grandparent.View+1 || b.View != bPrime.View+1 {
		return c
	}
	if grandparent.View <= c.latestCommittedView {
		return c
	}

	next := c
	next.latestCommittedBlock = grandparent
	next.latestCommittedView = grandparent.View
	blocks := make([]ids.BlockID, len(c.committedBlocks), len(c.committedBlocks)+1)
	copy(blocks, c.committedBlocks)
	next.committedBlocks = append(blocks, grandparent.ID)
	return next
}

// ReceiveTimeoutQc advances the view on observing a root-certified
// timeout. tq.View must not be behind the current view.
func (c Carnot) ReceiveTimeoutQc(tq types.TimeoutQc) (Carnot, error) {
	if tq.View < c.currentView {
		return c, ErrStaleTimeoutQc
	}
	next := c
	next.currentView = tq.View + 1
	next.lastTimeoutQC = &tq
	next.metrics.CurrentView.Set(float64(next.currentView))
	return next, nil
}

// ApproveNewView takes the highest high QC among tq and a supermajority of
// NewView votes, raises the local high QC to it, advances the current view
// to tq.View+2 and emits this node's NewView for tq.View+1. No AggregateQc
// value is built or stored here. Threshold enforcement happens upstream in
// the tally builder; this method only performs the state transition once
// the caller has a qualifying set.
func (c Carnot) ApproveNewView(tq types.TimeoutQc, newViews []types.NewView) (Carnot, types.Send) {
	highest := tq.HighQC
	for _, nv := range newViews {
		if nv.HighQC.View > highest.View {
			highest = nv.HighQC
		}
	}

	next := c
	next.currentView = tq.View + 2
	if highest.View > next.localHighQC.View {
		next.localHighQC = highest
	}
	next.metrics.CurrentView.Set(float64(next.currentView))

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
	return next, send
}

// LocalTimeout marks this node's highest voted view as the current view
// (so the node never later votes in the timed-out view) and, if the node
// sits in the root committee, emits a Timeout to the root.
func (c Carnot) LocalTimeout() (Carnot, *types.Send) {
	next := c
	if c.currentView > next.highestVotedView {
		next.highestVotedView = c.currentView
	}
	next.metrics.Timeouts.Inc()

	if !next.overlay.IsMemberOfRootCommittee(next.id) {
		return next, nil
	}
	send := types.Send{
		To: next.overlay.RootCommittee(),
		Payload: types.Payload{
			Kind:    types.PayloadTimeout,
			Timeout: types.Timeout{View: next.currentView, HighQC: next.localHighQC, Sender: next.id},
		},
	}
	return next, &send
}
