// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package overlay implements the deterministic tree overlay: a shuffle of
// the validator set partitioned into a binary tree of committees, with
// constant/log-time structural queries.
package overlay

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/carnotchain/carnot/committee"
	"github.com/carnotchain/carnot/ids"
)

// Construction errors. These are configuration errors: fatal at
// construction, never recovered.
var (
	ErrZeroCommittees = errors.New("overlay: number of committees must be positive")
	ErrTooFewNodes    = errors.New("overlay: fewer nodes than committees")
	ErrEmptyNodeSet   = errors.New("overlay: empty node set")
)

// Tree is the immutable overlay state for one (entropy, nodes, C) triple.
// It is safe for concurrent read-only use by multiple consumers; advancing
// the view means building a new Tree with fresh entropy rather than
// mutating this one.
type Tree struct {
	entropy        [32]byte
	originalNodes  []ids.NodeID // pre-shuffle order, kept for diagnostics only
	shuffledNodes  []ids.NodeID // order after Shuffler.Shuffle
	leaderSelector LeaderSelector

	committees    []committee.Committee   // index -> Committee
	committeeIDs  []ids.CommitteeID       // index -> CommitteeId
	idToIndex     map[ids.CommitteeID]int // CommitteeId -> index
	memberToIndex map[ids.NodeID]int      // NodeID -> committee index
}

// New builds a Tree for the given nodes, entropy, committee count and
// capability objects.
func New(nodes []ids.NodeID, entropy [32]byte, numCommittees int, leaderSelector LeaderSelector, shuffler Shuffler) (*Tree, error) {
	if numCommittees <= 0 {
		return nil, ErrZeroCommittees
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyNodeSet
	}
	if len(nodes) < numCommittees {
		return nil, ErrTooFewNodes
	}

	original := make([]ids.NodeID, len(nodes))
	copy(original, nodes)

	shuffled := make([]ids.NodeID, len(nodes))
	copy(shuffled, nodes)
	shuffler.Shuffle(shuffled, entropy)

	t := &Tree{
		entropy:        entropy,
		originalNodes:  original,
		shuffledNodes:  shuffled,
		leaderSelector: leaderSelector,
	}
	t.partition(numCommittees)
	return t, nil
}

// partition splits the shuffled node order into numCommittees contiguous
// blocks of floor(N/C) nodes each; the N mod C tail nodes are then
// appended one at a time onto the first committees (front-loaded), so
// committee sizes differ by at most 1. It also populates the auxiliary
// indexes.
func (t *Tree) partition(numCommittees int) {
	n := len(t.shuffledNodes)
	base := n / numCommittees
	remainder := n % numCommittees

	t.committees = make([]committee.Committee, numCommittees)
	t.committeeIDs = make([]ids.CommitteeID, numCommittees)
	t.idToIndex = make(map[ids.CommitteeID]int, numCommittees)
	t.memberToIndex = make(map[ids.NodeID]int, n)

	for i := 0; i < numCommittees; i++ {
		members := make([]ids.NodeID, 0, base+1)
		members = append(members, t.shuffledNodes[i*base:(i+1)*base]...)
		if i < remainder {
			members = append(members, t.shuffledNodes[numCommittees*base+i])
		}
		c := committee.New(members...)
		t.committees[i] = c
		id := c.ID()
		t.committeeIDs[i] = id
		t.idToIndex[id] = i
		for _, m := range members {
			t.memberToIndex[m] = i
		}
	}
}

// indexOf returns the committee index containing id, and whether id is
// known to the overlay.
func (t *Tree) indexOf(id ids.NodeID) (int, bool) {
	idx, ok := t.memberToIndex[id]
	return idx, ok
}

// RootCommittee returns the committee at index 0.
func (t *Tree) RootCommittee() committee.Committee {
	return t.committees[0]
}

// IsMemberOfRootCommittee reports whether id sits in the root committee.
func (t *Tree) IsMemberOfRootCommittee(id ids.NodeID) bool {
	return t.RootCommittee().Contains(id)
}

// hasChildren reports whether the committee at index i has at least one
// child in the tree (i.e. is not a leaf).
func (t *Tree) hasChildren(i int) bool {
	return 2*i+1 < len(t.committees)
}

// IsMemberOfLeafCommittee reports whether id belongs to any committee with
// no children.
func (t *Tree) IsMemberOfLeafCommittee(id ids.NodeID) bool {
	idx, ok := t.indexOf(id)
	if !ok {
		return false
	}
	return !t.hasChildren(idx)
}

// ParentCommittee returns the committee at index (i-1)/2 for a member of
// committee i>0. For a member of the root committee (i=0), it returns the
// root committee itself, deliberately, rather than an error or empty
// value (see DESIGN.md Open Question 1).
func (t *Tree) ParentCommittee(id ids.NodeID) committee.Committee {
	idx, ok := t.indexOf(id)
	if !ok {
		return committee.Committee{}
	}
	if idx == 0 {
		return t.committees[0]
	}
	return t.committees[(idx-1)/2]
}

// ChildCommittees returns the 0, 1 or 2 committees that are children of the
// committee containing id.
func (t *Tree) ChildCommittees(id ids.NodeID) []committee.Committee {
	idx, ok := t.indexOf(id)
	if !ok {
		return nil
	}
	var out []committee.Committee
	if left := 2*idx + 1; left < len(t.committees) {
		out = append(out, t.committees[left])
	}
	if right := 2*idx + 2; right < len(t.committees) {
		out = append(out, t.committees[right])
	}
	return out
}

// childSizes returns the combined member count of the committee at index
// i's direct children (0 if i is a leaf).
func (t *Tree) childSizes(i int) int {
	size := 0
	if left := 2*i + 1; left < len(t.committees) {
		size += t.committees[left].Len()
	}
	if right := 2*i + 2; right < len(t.committees) {
		size += t.committees[right].Len()
	}
	return size
}

// NodeCommittee returns the unique committee containing id, or the zero
// Committee if id is unknown to the overlay.
func (t *Tree) NodeCommittee(id ids.NodeID) committee.Committee {
	idx, ok := t.indexOf(id)
	if !ok {
		return committee.Committee{}
	}
	return t.committees[idx]
}

// IsMemberOfChildCommittee reports whether child's committee is a direct
// child of parent's committee.
func (t *Tree) IsMemberOfChildCommittee(parent, child ids.NodeID) bool {
	childParent := t.ParentCommittee(child)
	parentCommittee := t.NodeCommittee(parent)
	return childParent.ID() == parentCommittee.ID()
}

// IsChildOfRootCommittee reports whether ParentCommittee(id) is the root
// committee: true for members of the root's direct children, and also true
// for root members, whose parent committee is the root itself.
func (t *Tree) IsChildOfRootCommittee(id ids.NodeID) bool {
	return t.ParentCommittee(id).ID() == t.RootCommittee().ID()
}

// LeafCommittees returns every committee with no children. Iteration order
// is stable within one Tree instance (index order) but otherwise
// unspecified.
func (t *Tree) LeafCommittees() []committee.Committee {
	var out []committee.Committee
	for i, c := range t.committees {
		if !t.hasChildren(i) {
			out = append(out, c)
		}
	}
	return out
}

// NextLeader reseeds a PRNG from the overlay's entropy and selects one node
// from the overlay's (already shuffled) node slice. A single overlay
// instance therefore always names the same next leader; advancing
// leadership means constructing a new overlay with fresh entropy (see
// DESIGN.md Open Question 2).
func (t *Tree) NextLeader() ids.NodeID {
	rng := rand.New(rand.NewSource(entropySeed(t.entropy)))
	return t.shuffledNodes[rng.Intn(len(t.shuffledNodes))]
}

// SuperMajorityThreshold returns 0 if id is in a leaf committee other than
// the root (leaves never aggregate over children); otherwise floor(2k/3)+1
// where k is the size of id's committee. With a single committee the root
// is also the only leaf and still gets floor(2k/3)+1.
func (t *Tree) SuperMajorityThreshold(id ids.NodeID) int {
	idx, ok := t.indexOf(id)
	if !ok {
		return 0
	}
	if idx != 0 && !t.hasChildren(idx) {
		return 0
	}
	return committee.SuperMajority(t.committees[idx].Len())
}

// LeaderSuperMajorityThreshold returns floor(2k/3)+1 over the root
// committee plus both of its direct children.
func (t *Tree) LeaderSuperMajorityThreshold() int {
	size := t.RootCommittee().Len() + t.childSizes(0)
	return committee.SuperMajority(size)
}

// NumCommittees returns the number of committees in the tree.
func (t *Tree) NumCommittees() int {
	return len(t.committees)
}

// CommitteeAt returns the committee at the given index, and whether that
// index exists.
func (t *Tree) CommitteeAt(i int) (committee.Committee, bool) {
	if i < 0 || i >= len(t.committees) {
		return committee.Committee{}, false
	}
	return t.committees[i], true
}

// LeaderSelector exposes the overlay's configured leader-selection
// capability so Carnot.IsLeaderForView can delegate to it.
func (t *Tree) LeaderSelector() LeaderSelector {
	return t.leaderSelector
}

// Nodes returns the overlay's shuffled node order. The returned slice is a
// copy.
func (t *Tree) Nodes() []ids.NodeID {
	out := make([]ids.NodeID, len(t.shuffledNodes))
	copy(out, t.shuffledNodes)
	return out
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree{committees=%d, nodes=%d}", len(t.committees), len(t.shuffledNodes))
}
