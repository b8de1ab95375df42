// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import (
	"time"

	"github.com/carnotchain/carnot/types"
)

// ViewTimer tracks a countdown per view, armed on view entry with a fixed
// duration. On expiry the caller injects a local-timeout event, and the
// timer is not re-armed for that view. Deadlines rather than a
// decrement-by-elapsed accumulator keep this driven cleanly by either a
// real clock or a test's fake one.
type ViewTimer struct {
	duration time.Duration
	deadline map[types.View]time.Time
}

// NewViewTimer returns a ViewTimer that arms each view for duration.
func NewViewTimer(duration time.Duration) *ViewTimer {
	return &ViewTimer{duration: duration, deadline: make(map[types.View]time.Time)}
}

// Arm starts (or restarts) the countdown for v, measured from now.
func (t *ViewTimer) Arm(v types.View, now time.Time) {
	t.deadline[v] = now.Add(t.duration)
}

// Expired reports whether v's timer has fired by now. A view never armed
// is not considered expired.
func (t *ViewTimer) Expired(v types.View, now time.Time) bool {
	d, ok := t.deadline[v]
	if !ok {
		return false
	}
	return !now.Before(d)
}

// PruneBelow drops every armed view at or below v: once a view is behind
// the current view its pending tally streams are dropped, and so is its
// timer.
func (t *ViewTimer) PruneBelow(v types.View) {
	for view := range t.deadline {
		if view <= v {
			delete(t.deadline, view)
		}
	}
}
