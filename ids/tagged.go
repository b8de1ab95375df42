// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"crypto/sha256"

	luxids "github.com/luxfi/ids"
)

// CommitteeID and BlockID reuse luxfi/ids.ID: both are already 32-byte
// opaque hashes, and the wider ecosystem (indexers, wire codecs) already
// knows how to print, sort and serialize that type.
type (
	CommitteeID = luxids.ID
	BlockID     = luxids.ID
)

// EmptyID is the zero value shared by CommitteeID and BlockID.
var EmptyID = luxids.Empty

// GenerateTestID returns a random CommitteeID/BlockID. It is meant for use
// in tests only.
func GenerateTestID() luxids.ID {
	return luxids.GenerateTestID()
}

// HashCommittee derives a CommitteeID deterministically from a committee's
// members, which must already be in sorted order. Two committees with the
// same members in the same order always hash to the same CommitteeID.
func HashCommittee(sortedMembers []NodeID) CommitteeID {
	h := sha256.New()
	for _, m := range sortedMembers {
		h.Write(m[:])
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return luxids.ID(sum)
}
