// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ids defines the opaque, fixed-size identifiers shared across the
// tree overlay, the consensus state machine, and the event builder.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// NodeIDLen is the length in bytes of a NodeID.
const NodeIDLen = 32

// ErrInvalidNodeIDLen is returned when decoding a NodeID from the wrong
// number of bytes.
var ErrInvalidNodeIDLen = errors.New("invalid node id length")

// NodeID opaquely identifies a validator. It is totally ordered and
// compared by its underlying bytes.
type NodeID [NodeIDLen]byte

// EmptyNodeID is the zero value of NodeID.
var EmptyNodeID = NodeID{}

// NodeIDFromBytes copies b into a NodeID, failing if b is not NodeIDLen
// bytes long.
func NodeIDFromBytes(b []byte) (NodeID, error) {
	var id NodeID
	if len(b) != NodeIDLen {
		return id, ErrInvalidNodeIDLen
	}
	copy(id[:], b)
	return id, nil
}

// GenerateTestNodeID returns a cryptographically random NodeID. It is meant
// for use in tests only.
func GenerateTestNodeID() NodeID {
	var id NodeID
	if _, err := rand.Read(id[:]); err != nil {
		panic(err)
	}
	return id
}

// IsEmpty reports whether n is the zero NodeID.
func (n NodeID) IsEmpty() bool {
	return n == EmptyNodeID
}

// Less reports whether n sorts before o, establishing the total order
// committees rely on.
func (n NodeID) Less(o NodeID) bool {
	for i := range n {
		if n[i] != o[i] {
			return n[i] < o[i]
		}
	}
	return false
}

// Compare returns -1, 0 or 1 depending on whether n sorts before, equal to,
// or after o.
func (n NodeID) Compare(o NodeID) int {
	switch {
	case n.Less(o):
		return -1
	case o.Less(n):
		return 1
	default:
		return 0
	}
}

// String returns the hex encoding of n, matching the luxfi/ids convention
// of lowercase, unprefixed hex for fixed-size identifiers.
func (n NodeID) String() string {
	return hex.EncodeToString(n[:])
}

// MarshalText implements encoding.TextMarshaler.
func (n NodeID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NodeID) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	id, err := NodeIDFromBytes(b)
	if err != nil {
		return err
	}
	*n = id
	return nil
}
