// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package network

import "errors"

// ErrDecode reports a fountain-decode failure: the proposal could not be
// reassembled from its chunks. The view proceeds toward timeout rather
// than halting.
var ErrDecode = errors.New("network: fountain decode failed")
