// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config defines the options a Carnot node is constructed from:
// node_id, seed_entropy, number_of_committees, view_timeout,
// leader_selector and shuffler. It exposes a fluent Builder with
// straightforward field validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/overlay"
)

// LeaderSelectorKind names a recognized leader_selector option.
type LeaderSelectorKind string

// ShufflerKind names a recognized shuffler option.
type ShufflerKind string

const (
	LeaderSelectorRoundRobin LeaderSelectorKind = "round_robin"
	LeaderSelectorWeighted   LeaderSelectorKind = "weighted"

	ShufflerDefault  ShufflerKind = "default"
	ShufflerIdentity ShufflerKind = "identity"
)

// Validation errors, fatal at construction.
var (
	ErrMissingNodeID         = errors.New("config: node_id must not be empty")
	ErrNoNodes               = errors.New("config: at least one node must be configured")
	ErrInvalidCommitteeCount = errors.New("config: number_of_committees must be a positive odd number")
	ErrInvalidViewTimeout    = errors.New("config: view_timeout must be positive")
	ErrUnknownLeaderSelector = errors.New("config: unrecognized leader_selector")
	ErrUnknownShuffler       = errors.New("config: unrecognized shuffler")
)

// Config holds everything needed to construct an overlay.Tree and a
// Carnot instance for one node.
type Config struct {
	NodeID             ids.NodeID
	Nodes              []ids.NodeID
	SeedEntropy        [32]byte
	NumberOfCommittees int
	ViewTimeout        time.Duration
	LeaderSelector     LeaderSelectorKind
	LeaderWeights      map[ids.NodeID]uint64
	Shuffler           ShufflerKind
}

// Verify checks Config for internal consistency.
func (c Config) Verify() error {
	if c.NodeID.IsEmpty() {
		return ErrMissingNodeID
	}
	if len(c.Nodes) == 0 {
		return ErrNoNodes
	}
	if c.NumberOfCommittees <= 0 || c.NumberOfCommittees%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCommitteeCount, c.NumberOfCommittees)
	}
	if c.ViewTimeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidViewTimeout, c.ViewTimeout)
	}
	switch c.LeaderSelector {
	case LeaderSelectorRoundRobin, LeaderSelectorWeighted:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLeaderSelector, c.LeaderSelector)
	}
	switch c.Shuffler {
	case ShufflerDefault, ShufflerIdentity:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShuffler, c.Shuffler)
	}
	return nil
}

// LeaderSelectorObject materializes the capability object overlay.New
// expects for the configured LeaderSelector.
func (c Config) LeaderSelectorObject() overlay.LeaderSelector {
	if c.LeaderSelector == LeaderSelectorWeighted {
		return overlay.Weighted{Weights: c.LeaderWeights}
	}
	return overlay.RoundRobin{}
}

// ShufflerObject materializes the capability object overlay.New expects
// for the configured Shuffler.
func (c Config) ShufflerObject() overlay.Shuffler {
	if c.Shuffler == ShufflerIdentity {
		return overlay.IdentityShuffler{}
	}
	return overlay.DefaultShuffler{}
}

// Builder provides a fluent interface for constructing a Config,
// mirroring config.Builder's chained-error accumulation: each With* call
// is a no-op once an earlier call has already failed, and the accumulated
// error surfaces only from Build.
type Builder struct {
	cfg Config
	err error
}

// NewBuilder returns a Builder with a reasonable default view_timeout,
// since deployments need a node to start with something.
func NewBuilder() *Builder {
	return &Builder{
		cfg: Config{
			NumberOfCommittees: 1,
			ViewTimeout:        2 * time.Second,
			LeaderSelector:     LeaderSelectorRoundRobin,
			Shuffler:           ShufflerDefault,
		},
	}
}

// WithNodeID sets the owning node's identity.
func (b *Builder) WithNodeID(id ids.NodeID) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.NodeID = id
	return b
}

// WithNodes sets the full validator set the overlay partitions.
func (b *Builder) WithNodes(nodes []ids.NodeID) *Builder {
	if b.err != nil {
		return b
	}
	if len(nodes) == 0 {
		b.err = ErrNoNodes
		return b
	}
	b.cfg.Nodes = nodes
	return b
}

// WithSeedEntropy sets the 32-byte entropy seed for committee shuffling.
func (b *Builder) WithSeedEntropy(entropy [32]byte) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.SeedEntropy = entropy
	return b
}

// WithNumberOfCommittees sets the committee count, which must be odd so
// the binary tree has a well-defined shape.
func (b *Builder) WithNumberOfCommittees(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n <= 0 || n%2 == 0 {
		b.err = fmt.Errorf("%w: got %d", ErrInvalidCommitteeCount, n)
		return b
	}
	b.cfg.NumberOfCommittees = n
	return b
}

// WithViewTimeout sets the per-view timer duration.
func (b *Builder) WithViewTimeout(d time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if d <= 0 {
		b.err = fmt.Errorf("%w: got %s", ErrInvalidViewTimeout, d)
		return b
	}
	b.cfg.ViewTimeout = d
	return b
}

// WithLeaderSelector sets the leader-selection strategy, and the weights
// table when kind is weighted.
func (b *Builder) WithLeaderSelector(kind LeaderSelectorKind, weights map[ids.NodeID]uint64) *Builder {
	if b.err != nil {
		return b
	}
	switch kind {
	case LeaderSelectorRoundRobin, LeaderSelectorWeighted:
	default:
		b.err = fmt.Errorf("%w: %q", ErrUnknownLeaderSelector, kind)
		return b
	}
	b.cfg.LeaderSelector = kind
	b.cfg.LeaderWeights = weights
	return b
}

// WithShuffler sets the shuffle strategy.
func (b *Builder) WithShuffler(kind ShufflerKind) *Builder {
	if b.err != nil {
		return b
	}
	switch kind {
	case ShufflerDefault, ShufflerIdentity:
	default:
		b.err = fmt.Errorf("%w: %q", ErrUnknownShuffler, kind)
		return b
	}
	b.cfg.Shuffler = kind
	return b
}

// Build validates and returns the final Config.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	if err := b.cfg.Verify(); err != nil {
		return Config{}, err
	}
	return b.cfg, nil
}
