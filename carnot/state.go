// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package carnot implements the per-node Carnot consensus state machine:
// receiving proposals, voting, advancing views, handling timeouts, and
// committing blocks under the three-chain rule. Every transition returns
// a new value rather than mutating in place, with copy-on-write on the
// one map field (safeBlocks) where structural sharing actually matters.
package carnot

import (
	"github.com/carnotchain/carnot/committee"
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/log"
	"github.com/carnotchain/carnot/metrics"
	"github.com/carnotchain/carnot/overlay"
	"github.com/carnotchain/carnot/types"
)

// Carnot is the immutable-at-the-API-level per-node consensus state. Every
// transition method returns a new Carnot value; the caller holds exactly
// one "latest" value.
type Carnot struct {
	id ids.NodeID

	currentView      types.View
	highestVotedView types.View
	localHighQC      types.StandardQc
	safeBlocks       map[ids.BlockID]types.Block
	lastTimeoutQC    *types.TimeoutQc

	latestCommittedBlock types.Block
	latestCommittedView  types.View
	committedBlocks      []ids.BlockID

	overlay *overlay.Tree

	log     log.Logger
	metrics *metrics.Registry
}

// FromGenesis builds the initial state at view 0 for node id, owning
// overlay.
func FromGenesis(id ids.NodeID, genesis types.Block, ov *overlay.Tree, logger log.Logger, reg *metrics.Registry) (Carnot, error) {
	if ov == nil {
		return Carnot{}, ErrNilOverlay
	}
	if logger == nil {
		logger = log.NewNoOp()
	}
	if reg == nil {
		reg = metrics.NoOp()
	}
	safe := map[ids.BlockID]types.Block{genesis.ID: genesis}
	c := Carnot{
		id:                   id,
		currentView:          genesis.View,
		highestVotedView:     genesis.View,
		localHighQC:          types.StandardQc{View: genesis.View, BlockID: genesis.ID},
		safeBlocks:           safe,
		latestCommittedBlock: genesis,
		latestCommittedView:  genesis.View,
		overlay:              ov,
		log:                  logger,
		metrics:              reg,
	}
	c.metrics.CurrentView.Set(float64(c.currentView))
	return c, nil
}

func (c Carnot) cloneSafeBlocks() map[ids.BlockID]types.Block {
	out := make(map[ids.BlockID]types.Block, len(c.safeBlocks)+1)
	for k, v := range c.safeBlocks {
		out[k] = v
	}
	return out
}

// ID returns the node this state belongs to.
func (c Carnot) ID() ids.NodeID { return c.id }

// CurrentView returns the node's current view.
func (c Carnot) CurrentView() types.View { return c.currentView }

// HighestVotedView returns the highest view this node has cast a vote in.
func (c Carnot) HighestVotedView() types.View { return c.highestVotedView }

// HighQC returns the highest StandardQc this node has observed.
func (c Carnot) HighQC() types.StandardQc { return c.localHighQC }

// LastViewTimeoutQC returns the most recently recorded TimeoutQc, if any.
func (c Carnot) LastViewTimeoutQC() (types.TimeoutQc, bool) {
	if c.lastTimeoutQC == nil {
		return types.TimeoutQc{}, false
	}
	return *c.lastTimeoutQC, true
}

// LatestCommittedBlock returns the most recently committed block.
func (c Carnot) LatestCommittedBlock() types.Block { return c.latestCommittedBlock }

// LatestCommittedView returns the view of the most recently committed block.
func (c Carnot) LatestCommittedView() types.View { return c.latestCommittedView }

// CommittedBlocks returns the ordered prefix of committed block IDs. The
// returned slice is a copy.
func (c Carnot) CommittedBlocks() []ids.BlockID {
	out := make([]ids.BlockID, len(c.committedBlocks))
	copy(out, c.committedBlocks)
	return out
}

// BlocksInView returns every safe block at the given view.
func (c Carnot) BlocksInView(v types.View) []types.Block {
	var out []types.Block
	for _, b := range c.safeBlocks {
		if b.View == v {
			out = append(out, b)
		}
	}
	return out
}

// SafeBlock looks up a block by ID among safe_blocks.
func (c Carnot) SafeBlock(id ids.BlockID) (types.Block, bool) {
	b, ok := c.safeBlocks[id]
	return b, ok
}

// RootCommittee delegates to the owned overlay.
func (c Carnot) RootCommittee() committee.Committee { return c.overlay.RootCommittee() }

// SelfCommittee returns the committee containing this node.
func (c Carnot) SelfCommittee() committee.Committee { return c.overlay.NodeCommittee(c.id) }

// ParentCommittee returns this node's parent committee.
func (c Carnot) ParentCommittee() committee.Committee { return c.overlay.ParentCommittee(c.id) }

// ChildCommittees returns this node's child committees.
func (c Carnot) ChildCommittees() []committee.Committee { return c.overlay.ChildCommittees(c.id) }

// IsMemberOfRootCommittee reports whether this node sits in the root
// committee.
func (c Carnot) IsMemberOfRootCommittee() bool { return c.overlay.IsMemberOfRootCommittee(c.id) }

// IsMemberOfLeafCommittee reports whether this node sits in a leaf
// committee.
func (c Carnot) IsMemberOfLeafCommittee() bool { return c.overlay.IsMemberOfLeafCommittee(c.id) }

// IsLeaderForView delegates to the overlay's configured LeaderSelector.
func (c Carnot) IsLeaderForView(v types.View) bool {
	return c.Leader(v) == c.id
}

// Leader returns the node the overlay's LeaderSelector names for view v.
func (c Carnot) Leader(v types.View) ids.NodeID {
	return c.overlay.LeaderSelector().LeaderForView(c.overlay.Nodes(), uint64(v))
}

// Overlay returns the owned overlay.
func (c Carnot) Overlay() *overlay.Tree { return c.overlay }
