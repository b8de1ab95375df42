// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package carnot

import "errors"

// Protocol violations: always recoverable locally, the offending message
// is dropped and no state changes.
var (
	ErrUnknownParent  = errors.New("carnot: block references unknown parent")
	ErrEquivocation   = errors.New("carnot: equivocating block for view")
	ErrStaleBlockView = errors.New("carnot: block view is not current or next")
	ErrAlreadyVoted   = errors.New("carnot: already voted for a view at or after this one")
	ErrBlockNotSafe   = errors.New("carnot: block is not in the safe set")
	ErrStaleTimeoutQc = errors.New("carnot: timeout qc view is behind current view")
)

// Configuration errors: fatal at construction.
var (
	ErrNilOverlay = errors.New("carnot: overlay must not be nil")
)
