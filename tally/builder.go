// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tally converts incoming votes, new-views and timeouts into
// quorum-certificate-bearing events, enforcing per-view deduplication and
// threshold quorum. It threads a logger and a metrics.Registry through a
// per-request accumulator.
package tally

import (
	"github.com/carnotchain/carnot/committee"
	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/log"
	"github.com/carnotchain/carnot/metrics"
	"github.com/carnotchain/carnot/types"
)

type voteKey struct {
	view    types.View
	blockID ids.BlockID
}

// Builder accumulates votes, new-views and timeouts for the current view,
// owned by the single writer that also owns the Carnot state.
type Builder struct {
	participants committee.Committee
	log          log.Logger
	metrics      *metrics.Registry

	votes    map[voteKey]map[ids.NodeID]types.Vote
	newViews map[types.View]map[ids.NodeID]types.NewView
	timeouts map[types.View]map[ids.NodeID]types.Timeout
}

// NewBuilder returns a Builder whose votes must come from participants
// (the committee a quorum is being gathered over). New-views and timeouts
// are not checked against participants.
func NewBuilder(participants committee.Committee, logger log.Logger, reg *metrics.Registry) *Builder {
	if logger == nil {
		logger = log.NewNoOp()
	}
	if reg == nil {
		reg = metrics.NoOp()
	}
	return &Builder{
		participants: participants,
		log:          logger,
		metrics:      reg,
		votes:        make(map[voteKey]map[ids.NodeID]types.Vote),
		newViews:     make(map[types.View]map[ids.NodeID]types.NewView),
		timeouts:     make(map[types.View]map[ids.NodeID]types.Timeout),
	}
}

// IngestVote rejects non-participants, wrong-view votes and double
// votes; it emits EventApprove once threshold distinct voters have been
// recorded for (view, blockID).
func (b *Builder) IngestVote(currentView types.View, threshold int, voter ids.NodeID, vote types.Vote) (*Event, error) {
	if vote.View != currentView {
		b.metrics.VotesRejected.WithLabelValues(ReasonWrongView).Inc()
		return nil, invalidVote(ReasonWrongView)
	}
	if !b.participants.Contains(voter) {
		b.metrics.VotesRejected.WithLabelValues(ReasonNonParticipant).Inc()
		return nil, invalidVote(ReasonNonParticipant)
	}

	key := voteKey{view: vote.View, blockID: vote.BlockID}
	bucket, ok := b.votes[key]
	if !ok {
		bucket = make(map[ids.NodeID]types.Vote)
		b.votes[key] = bucket
	}
	if _, seen := bucket[voter]; seen {
		b.metrics.VotesRejected.WithLabelValues(ReasonDoubleVote).Inc()
		return nil, invalidVote(ReasonDoubleVote)
	}
	bucket[voter] = vote
	b.metrics.VotesReceived.Inc()

	if len(bucket) < threshold {
		return nil, nil
	}

	records := make([]VoteRecord, 0, len(bucket))
	for v, rec := range bucket {
		records = append(records, VoteRecord{Voter: v, Vote: rec})
	}
	delete(b.votes, key)
	b.metrics.ApprovalsEmitted.Inc()
	b.log.Debug("vote threshold reached")

	return &Event{
		Kind:    EventApprove,
		Qc:      types.StandardQC(vote.View, vote.BlockID),
		BlockID: vote.BlockID,
		Votes:   records,
	}, nil
}

// IngestNewView applies the same dedup (keyed by sender) and emits
// EventNewView once threshold (the leader supermajority across root plus
// children) distinct senders have been recorded for the view.
func (b *Builder) IngestNewView(currentView types.View, threshold int, nv types.NewView) (*Event, error) {
	if nv.View != currentView {
		b.metrics.VotesRejected.WithLabelValues(ReasonWrongView).Inc()
		return nil, invalidVote(ReasonWrongView)
	}
	bucket, ok := b.newViews[nv.View]
	if !ok {
		bucket = make(map[ids.NodeID]types.NewView)
		b.newViews[nv.View] = bucket
	}
	if _, seen := bucket[nv.Sender]; seen {
		b.metrics.VotesRejected.WithLabelValues(ReasonDoubleVote).Inc()
		return nil, invalidVote(ReasonDoubleVote)
	}
	bucket[nv.Sender] = nv

	if len(bucket) < threshold {
		return nil, nil
	}

	newViews := make([]types.NewView, 0, len(bucket))
	var highest types.StandardQc
	for _, v := range bucket {
		newViews = append(newViews, v)
		if v.HighQC.View > highest.View {
			highest = v.HighQC
		}
	}
	delete(b.newViews, nv.View)

	return &Event{
		Kind:      EventNewView,
		TimeoutQC: nv.TimeoutQC,
		NewViews:  newViews,
		Qc:        types.AggregateQC(nv.View+1, highest),
	}, nil
}

// IngestTimeout records a root-committee member's local timeout signal. It
// emits EventRootTimeout carrying every collected timeout once threshold
// (the root committee's own supermajority) distinct senders have timed
// out. The event does not pick a high QC itself; the consensus state
// machine takes the maximum high QC among these timeouts and its own.
func (b *Builder) IngestTimeout(currentView types.View, threshold int, t types.Timeout) (*Event, error) {
	if t.View != currentView {
		b.metrics.VotesRejected.WithLabelValues(ReasonWrongView).Inc()
		return nil, invalidVote(ReasonWrongView)
	}
	bucket, ok := b.timeouts[t.View]
	if !ok {
		bucket = make(map[ids.NodeID]types.Timeout)
		b.timeouts[t.View] = bucket
	}
	if _, seen := bucket[t.Sender]; seen {
		return nil, invalidVote(ReasonDoubleVote)
	}
	bucket[t.Sender] = t

	if len(bucket) < threshold {
		return nil, nil
	}

	timeouts := make([]types.Timeout, 0, len(bucket))
	for _, v := range bucket {
		timeouts = append(timeouts, v)
	}
	delete(b.timeouts, t.View)
	b.metrics.Timeouts.Inc()

	return &Event{Kind: EventRootTimeout, Timeouts: timeouts}, nil
}

// CloseVotes drains the accumulator for (view, blockID) once its tally
// stream has closed. If the bucket never reached threshold, whatever was
// collected is returned alongside ErrInsufficientVotes so the caller can
// let the view proceed toward timeout.
func (b *Builder) CloseVotes(view types.View, blockID ids.BlockID, threshold int) ([]VoteRecord, error) {
	key := voteKey{view: view, blockID: blockID}
	bucket := b.votes[key]
	delete(b.votes, key)

	records := make([]VoteRecord, 0, len(bucket))
	for v, rec := range bucket {
		records = append(records, VoteRecord{Voter: v, Vote: rec})
	}
	if len(records) < threshold {
		return records, ErrInsufficientVotes
	}
	return records, nil
}

// ClearView drops every accumulator for view: pending tally streams for a
// stale view are dropped on timeout.
func (b *Builder) ClearView(view types.View) {
	for k := range b.votes {
		if k.view == view {
			delete(b.votes, k)
		}
	}
	delete(b.newViews, view)
	delete(b.timeouts, view)
}
