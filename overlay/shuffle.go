// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package overlay

import (
	"encoding/binary"
	"math/rand"

	"github.com/carnotchain/carnot/ids"
)

// Shuffler reorders a validator set deterministically from a 32-byte
// entropy seed. It is a capability parameter, passed into the overlay
// constructor, so tests can substitute a deterministic or identity
// variant without conditional compilation.
type Shuffler interface {
	Shuffle(nodes []ids.NodeID, entropy [32]byte)
}

// entropySeed folds a 32-byte entropy value into an int64 seed for
// math/rand. Overlay determinism is guaranteed within a single Go
// process/build, not bit-for-bit across language runtimes.
func entropySeed(entropy [32]byte) int64 {
	return int64(binary.BigEndian.Uint64(entropy[:8]))
}

// DefaultShuffler performs an in-place Fisher-Yates shuffle seeded from
// the supplied entropy.
type DefaultShuffler struct{}

// Shuffle implements Shuffler.
func (DefaultShuffler) Shuffle(nodes []ids.NodeID, entropy [32]byte) {
	rng := rand.New(rand.NewSource(entropySeed(entropy)))
	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})
}

// IdentityShuffler leaves the node order untouched. It exists so tests
// can assert exact committee membership without reasoning about PRNG
// output.
type IdentityShuffler struct{}

// Shuffle implements Shuffler; it is a no-op.
func (IdentityShuffler) Shuffle([]ids.NodeID, [32]byte) {}
