// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carnotchain/carnot/log"
	"github.com/carnotchain/carnot/metrics"
	"github.com/carnotchain/carnot/types"
)

// committedChainState drives a node through a three-chain so the
// snapshot has a non-genesis committed block and blocks to prune.
func committedChainState(t *testing.T) (Carnot, []types.Block) {
	t.Helper()
	c, _ := singleCommitteeState(t)
	genesis := types.GenesisBlock()

	chain := make([]types.Block, 0, 3)
	parent := genesis
	for i := 0; i < 3; i++ {
		b := childBlock(parent)
		var err error
		c, err = c.ReceiveBlock(b)
		require.NoError(t, err)
		c, _, err = c.ApproveBlock(b)
		require.NoError(t, err)
		chain = append(chain, b)
		parent = b
	}
	require.Equal(t, types.View(1), c.LatestCommittedView())
	return c, chain
}

func TestSnapshotDropsBlocksBelowCommit(t *testing.T) {
	c, chain := committedChainState(t)

	s := c.Snapshot()
	require.Equal(t, c.CurrentView(), s.CurrentView)
	require.Equal(t, chain[0].ID, s.LatestCommittedBlock.ID)

	for _, b := range s.SafeBlocks {
		require.GreaterOrEqual(t, b.View, s.LatestCommittedView)
	}
	// Genesis (view 0) sits below the committed view and must be gone.
	for _, b := range s.SafeBlocks {
		require.NotEqual(t, types.GenesisBlock().ID, b.ID)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c, _ := committedChainState(t)
	s := c.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestSnapshotSerializationIsCanonical(t *testing.T) {
	c, _ := committedChainState(t)

	var a, b bytes.Buffer
	require.NoError(t, c.Snapshot().Write(&a))
	require.NoError(t, c.Snapshot().Write(&b))
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestReadSnapshotRejectsUnknownVersion(t *testing.T) {
	_, err := ReadSnapshot(bytes.NewReader([]byte{0xff}))
	require.ErrorIs(t, err, ErrUnknownSnapshotVersion)
}

func TestFromSnapshotResumesState(t *testing.T) {
	c, chain := committedChainState(t)
	s := c.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	restored, err := ReadSnapshot(&buf)
	require.NoError(t, err)

	recovered, err := FromSnapshot(c.ID(), restored, c.Overlay(), log.NewNoOp(), metrics.NoOp())
	require.NoError(t, err)
	require.Equal(t, c.CurrentView(), recovered.CurrentView())
	require.Equal(t, c.HighestVotedView(), recovered.HighestVotedView())
	require.Equal(t, c.HighQC(), recovered.HighQC())
	require.Equal(t, c.LatestCommittedView(), recovered.LatestCommittedView())

	// Replay continues from the snapshot forward.
	b4 := childBlock(chain[2])
	next, err := recovered.ReceiveBlock(b4)
	require.NoError(t, err)
	next, _, err = next.ApproveBlock(b4)
	require.NoError(t, err)
	require.Equal(t, types.View(2), next.LatestCommittedView())
}

func TestFromSnapshotRejectsNilOverlay(t *testing.T) {
	_, err := FromSnapshot(testNodes(1)[0], Snapshot{}, nil, nil, nil)
	require.ErrorIs(t, err, ErrNilOverlay)
}
