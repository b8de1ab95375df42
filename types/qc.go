// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/carnotchain/carnot/ids"

// QcKind tags which variant a Qc holds.
type QcKind uint8

const (
	// QcKindStandard tags a Qc holding a StandardQc.
	QcKindStandard QcKind = iota
	// QcKindAggregate tags a Qc holding an AggregateQc.
	QcKindAggregate
)

// Qc is a tagged union over StandardQc and AggregateQc, modeled as a
// discriminated struct rather than an interface: exactly two variants
// exist and no others are expected to appear, so a closed sum type is
// clearer than an open interface{} hierarchy.
type Qc struct {
	Kind      QcKind
	Standard  StandardQc
	Aggregate AggregateQc
}

// StandardQC wraps a StandardQc as a Qc.
func StandardQC(view View, blockID ids.BlockID) Qc {
	return Qc{Kind: QcKindStandard, Standard: StandardQc{View: view, BlockID: blockID}}
}

// AggregateQC wraps an AggregateQc as a Qc.
func AggregateQC(view View, highQC StandardQc) Qc {
	return Qc{Kind: QcKindAggregate, Aggregate: AggregateQc{View: view, HighQC: highQC}}
}

// View returns the view of whichever variant is held.
func (q Qc) View() View {
	if q.Kind == QcKindAggregate {
		return q.Aggregate.View
	}
	return q.Standard.View
}

// IsStandard reports whether q holds a StandardQc.
func (q Qc) IsStandard() bool {
	return q.Kind == QcKindStandard
}

// IsAggregate reports whether q holds an AggregateQc.
func (q Qc) IsAggregate() bool {
	return q.Kind == QcKindAggregate
}

// HighQC returns the StandardQc backing q, descending through an
// AggregateQc's embedded high QC when necessary.
func (q Qc) HighQC() StandardQc {
	if q.Kind == QcKindAggregate {
		return q.Aggregate.HighQC
	}
	return q.Standard
}
