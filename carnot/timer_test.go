// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carnotchain/carnot/types"
)

func TestViewTimerExpiresAfterDuration(t *testing.T) {
	timer := NewViewTimer(2 * time.Second)
	now := time.Unix(1000, 0)

	timer.Arm(3, now)
	require.False(t, timer.Expired(3, now))
	require.False(t, timer.Expired(3, now.Add(time.Second)))
	require.True(t, timer.Expired(3, now.Add(2*time.Second)))
}

func TestViewTimerUnarmedViewNeverExpires(t *testing.T) {
	timer := NewViewTimer(time.Second)
	require.False(t, timer.Expired(7, time.Unix(5000, 0)))
}

func TestViewTimerPruneBelowDropsStaleViews(t *testing.T) {
	timer := NewViewTimer(time.Second)
	now := time.Unix(1000, 0)
	for v := types.View(1); v <= 4; v++ {
		timer.Arm(v, now)
	}

	timer.PruneBelow(2)
	late := now.Add(time.Minute)
	require.False(t, timer.Expired(1, late))
	require.False(t, timer.Expired(2, late))
	require.True(t, timer.Expired(3, late))
	require.True(t, timer.Expired(4, late))
}
