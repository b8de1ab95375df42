// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package log re-exports github.com/luxfi/log.Logger: the core never
// constructs its own logging backend, it only accepts one.
package log

import (
	"github.com/luxfi/log"
)

// Logger is the interface the consensus core and tally builder accept for
// structured logging.
type Logger = log.Logger

// NewNoOp returns a logger that discards everything, for tests and callers
// that have not wired a real backend.
func NewNoOp() Logger {
	return log.NewNoOpLogger()
}
