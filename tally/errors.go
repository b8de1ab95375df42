// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tally

import (
	"errors"
	"fmt"
)

// ErrInvalidVote is the sentinel wrapped by every rejected-message error,
// so callers can distinguish protocol violations from insufficient quorum
// with errors.Is.
var ErrInvalidVote = errors.New("invalid vote")

// ErrInsufficientVotes is returned by CloseVotes when a tally stream
// closes before its accumulator reached threshold.
var ErrInsufficientVotes = errors.New("insufficient votes")

func invalidVote(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidVote, reason)
}

// Reasons surfaced on vote/new-view/timeout rejection.
const (
	ReasonWrongView          = "wrong view"
	ReasonNonParticipant     = "non-participating node"
	ReasonDoubleVote         = "double voted node"
	ReasonUnknownAccumulator = "unknown accumulator"
)
