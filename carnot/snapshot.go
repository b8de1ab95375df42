// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/log"
	"github.com/carnotchain/carnot/metrics"
	"github.com/carnotchain/carnot/overlay"
	"github.com/carnotchain/carnot/types"
	"github.com/carnotchain/carnot/wire"
)

// snapshotVersion tags the snapshot layout so a future layout change can
// be detected on recovery.
const snapshotVersion uint8 = 1

// ErrUnknownSnapshotVersion is returned when decoding a snapshot whose
// version byte this build does not understand.
var ErrUnknownSnapshotVersion = errors.New("carnot: unknown snapshot version")

// Snapshot is the checkpointable subset of a Carnot state: recovery
// replays only from the snapshot forward. Safe blocks below the latest
// committed view are dropped at capture time.
type Snapshot struct {
	CurrentView          types.View
	HighestVotedView     types.View
	LocalHighQC          types.StandardQc
	LatestCommittedBlock types.Block
	LatestCommittedView  types.View
	SafeBlocks           []types.Block
}

// Snapshot captures the node's current checkpointable state. The
// returned SafeBlocks are sorted by view, then block ID, so two
// snapshots of the same state serialize identically.
func (c Carnot) Snapshot() Snapshot {
	blocks := make([]types.Block, 0, len(c.safeBlocks))
	for _, b := range c.safeBlocks {
		if b.View < c.latestCommittedView {
			continue
		}
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].View != blocks[j].View {
			return blocks[i].View < blocks[j].View
		}
		return bytes.Compare(blocks[i].ID[:], blocks[j].ID[:]) < 0
	})
	return Snapshot{
		CurrentView:          c.currentView,
		HighestVotedView:     c.highestVotedView,
		LocalHighQC:          c.localHighQC,
		LatestCommittedBlock: c.latestCommittedBlock,
		LatestCommittedView:  c.latestCommittedView,
		SafeBlocks:           blocks,
	}
}

// Write serializes s with the same canonical rules as the wire format:
// stable field order, fixed-width big-endian integers.
func (s Snapshot) Write(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, snapshotVersion); err != nil {
		return err
	}
	if err := wire.WriteView(w, s.CurrentView); err != nil {
		return err
	}
	if err := wire.WriteView(w, s.HighestVotedView); err != nil {
		return err
	}
	if err := wire.WriteStandardQc(w, s.LocalHighQC); err != nil {
		return err
	}
	if err := wire.WriteBlock(w, s.LatestCommittedBlock); err != nil {
		return err
	}
	if err := wire.WriteView(w, s.LatestCommittedView); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(s.SafeBlocks))); err != nil {
		return err
	}
	for _, b := range s.SafeBlocks {
		if err := wire.WriteBlock(w, b); err != nil {
			return err
		}
	}
	return nil
}

// ReadSnapshot deserializes a snapshot written by Write.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var version uint8
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return Snapshot{}, err
	}
	if version != snapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnknownSnapshotVersion, version)
	}

	var (
		s   Snapshot
		err error
	)
	if s.CurrentView, err = wire.ReadView(r); err != nil {
		return Snapshot{}, err
	}
	if s.HighestVotedView, err = wire.ReadView(r); err != nil {
		return Snapshot{}, err
	}
	if s.LocalHighQC, err = wire.ReadStandardQc(r); err != nil {
		return Snapshot{}, err
	}
	if s.LatestCommittedBlock, err = wire.ReadBlock(r); err != nil {
		return Snapshot{}, err
	}
	if s.LatestCommittedView, err = wire.ReadView(r); err != nil {
		return Snapshot{}, err
	}
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return Snapshot{}, err
	}
	s.SafeBlocks = make([]types.Block, 0, count)
	for i := uint32(0); i < count; i++ {
		b, err := wire.ReadBlock(r)
		if err != nil {
			return Snapshot{}, err
		}
		s.SafeBlocks = append(s.SafeBlocks, b)
	}
	return s, nil
}

// FromSnapshot rebuilds a Carnot state from a checkpoint, resuming at the
// snapshot's views with its safe blocks and high QC. The overlay is
// supplied fresh by the caller, since overlays are reconstructed per view
// and are not part of the checkpoint.
func FromSnapshot(id ids.NodeID, s Snapshot, ov *overlay.Tree, logger log.Logger, reg *metrics.Registry) (Carnot, error) {
	if ov == nil {
		return Carnot{}, ErrNilOverlay
	}
	if logger == nil {
		logger = log.NewNoOp()
	}
	if reg == nil {
		reg = metrics.NoOp()
	}
	safe := make(map[ids.BlockID]types.Block, len(s.SafeBlocks)+1)
	for _, b := range s.SafeBlocks {
		safe[b.ID] = b
	}
	safe[s.LatestCommittedBlock.ID] = s.LatestCommittedBlock

	c := Carnot{
		id:                   id,
		currentView:          s.CurrentView,
		highestVotedView:     s.HighestVotedView,
		localHighQC:          s.LocalHighQC,
		safeBlocks:           safe,
		latestCommittedBlock: s.LatestCommittedBlock,
		latestCommittedView:  s.LatestCommittedView,
		overlay:              ov,
		log:                  logger,
		metrics:              reg,
	}
	c.metrics.CurrentView.Set(float64(c.currentView))
	return c, nil
}
