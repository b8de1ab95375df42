// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/carnotchain/carnot/ids"
	"github.com/carnotchain/carnot/types"
)

// ErrUnknownQcVariant is returned when a Qc's variant tag byte is neither
// the standard nor the aggregate tag.
var ErrUnknownQcVariant = errors.New("wire: unknown qc variant")

// WriteView serializes a view as a fixed-width big-endian uint64.
func WriteView(w io.Writer, v types.View) error {
	return binary.Write(w, binary.BigEndian, uint64(v))
}

// ReadView deserializes a view.
func ReadView(r io.Reader) (types.View, error) {
	var v uint64
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, err
	}
	return types.View(v), nil
}

func writeID(w io.Writer, id ids.BlockID) error {
	_, err := w.Write(id[:])
	return err
}

func readID(r io.Reader) (ids.BlockID, error) {
	var id ids.BlockID
	_, err := io.ReadFull(r, id[:])
	return id, err
}

func writeNodeID(w io.Writer, id ids.NodeID) error {
	_, err := w.Write(id[:])
	return err
}

func readNodeID(r io.Reader) (ids.NodeID, error) {
	var id ids.NodeID
	_, err := io.ReadFull(r, id[:])
	return id, err
}

// WriteStandardQc serializes qc as view || block_id.
func WriteStandardQc(w io.Writer, qc types.StandardQc) error {
	if err := WriteView(w, qc.View); err != nil {
		return err
	}
	return writeID(w, qc.BlockID)
}

// ReadStandardQc deserializes a StandardQc.
func ReadStandardQc(r io.Reader) (types.StandardQc, error) {
	view, err := ReadView(r)
	if err != nil {
		return types.StandardQc{}, err
	}
	blockID, err := readID(r)
	if err != nil {
		return types.StandardQc{}, err
	}
	return types.StandardQc{View: view, BlockID: blockID}, nil
}

// WriteQc serializes a Qc as one variant tag byte followed by the variant
// fields: the standard variant's view and block id, or the aggregate
// variant's view and embedded high QC.
func WriteQc(w io.Writer, qc types.Qc) error {
	switch qc.Kind {
	case types.QcKindStandard:
		if err := binary.Write(w, binary.BigEndian, uint8(types.QcKindStandard)); err != nil {
			return err
		}
		return WriteStandardQc(w, qc.Standard)
	case types.QcKindAggregate:
		if err := binary.Write(w, binary.BigEndian, uint8(types.QcKindAggregate)); err != nil {
			return err
		}
		if err := WriteView(w, qc.Aggregate.View); err != nil {
			return err
		}
		return WriteStandardQc(w, qc.Aggregate.HighQC)
	default:
		return fmt.Errorf("%w: 0x%02x", ErrUnknownQcVariant, uint8(qc.Kind))
	}
}

// ReadQc deserializes a Qc.
func ReadQc(r io.Reader) (types.Qc, error) {
	var tag uint8
	if err := binary.Read(r, binary.BigEndian, &tag); err != nil {
		return types.Qc{}, err
	}
	switch types.QcKind(tag) {
	case types.QcKindStandard:
		std, err := ReadStandardQc(r)
		if err != nil {
			return types.Qc{}, err
		}
		return types.Qc{Kind: types.QcKindStandard, Standard: std}, nil
	case types.QcKindAggregate:
		view, err := ReadView(r)
		if err != nil {
			return types.Qc{}, err
		}
		high, err := ReadStandardQc(r)
		if err != nil {
			return types.Qc{}, err
		}
		return types.AggregateQC(view, high), nil
	default:
		return types.Qc{}, fmt.Errorf("%w: 0x%02x", ErrUnknownQcVariant, tag)
	}
}

// WriteBlock serializes a block header as id || view || parent_qc.
func WriteBlock(w io.Writer, b types.Block) error {
	if err := writeID(w, b.ID); err != nil {
		return err
	}
	if err := WriteView(w, b.View); err != nil {
		return err
	}
	return WriteQc(w, b.ParentQC)
}

// ReadBlock deserializes a block header.
func ReadBlock(r io.Reader) (types.Block, error) {
	id, err := readID(r)
	if err != nil {
		return types.Block{}, err
	}
	view, err := ReadView(r)
	if err != nil {
		return types.Block{}, err
	}
	parentQC, err := ReadQc(r)
	if err != nil {
		return types.Block{}, err
	}
	return types.Block{ID: id, View: view, ParentQC: parentQC}, nil
}

// WriteVote serializes a vote as view || block_id.
func WriteVote(w io.Writer, v types.Vote) error {
	if err := WriteView(w, v.View); err != nil {
		return err
	}
	return writeID(w, v.BlockID)
}

// ReadVote deserializes a vote.
func ReadVote(r io.Reader) (types.Vote, error) {
	view, err := ReadView(r)
	if err != nil {
		return types.Vote{}, err
	}
	blockID, err := readID(r)
	if err != nil {
		return types.Vote{}, err
	}
	return types.Vote{View: view, BlockID: blockID}, nil
}

// WriteTimeoutQc serializes tq as view || high_qc || sender.
func WriteTimeoutQc(w io.Writer, tq types.TimeoutQc) error {
	if err := WriteView(w, tq.View); err != nil {
		return err
	}
	if err := WriteStandardQc(w, tq.HighQC); err != nil {
		return err
	}
	return writeNodeID(w, tq.Sender)
}

// ReadTimeoutQc deserializes a TimeoutQc.
func ReadTimeoutQc(r io.Reader) (types.TimeoutQc, error) {
	view, err := ReadView(r)
	if err != nil {
		return types.TimeoutQc{}, err
	}
	high, err := ReadStandardQc(r)
	if err != nil {
		return types.TimeoutQc{}, err
	}
	sender, err := readNodeID(r)
	if err != nil {
		return types.TimeoutQc{}, err
	}
	return types.TimeoutQc{View: view, HighQC: high, Sender: sender}, nil
}

// WriteNewView serializes nv as view || high_qc || timeout_qc || sender.
func WriteNewView(w io.Writer, nv types.NewView) error {
	if err := WriteView(w, nv.View); err != nil {
		return err
	}
	if err := WriteStandardQc(w, nv.HighQC); err != nil {
		return err
	}
	if err := WriteTimeoutQc(w, nv.TimeoutQC); err != nil {
		return err
	}
	return writeNodeID(w, nv.Sender)
}

// ReadNewView deserializes a NewView.
func ReadNewView(r io.Reader) (types.NewView, error) {
	view, err := ReadView(r)
	if err != nil {
		return types.NewView{}, err
	}
	high, err := ReadStandardQc(r)
	if err != nil {
		return types.NewView{}, err
	}
	tq, err := ReadTimeoutQc(r)
	if err != nil {
		return types.NewView{}, err
	}
	sender, err := readNodeID(r)
	if err != nil {
		return types.NewView{}, err
	}
	return types.NewView{View: view, HighQC: high, TimeoutQC: tq, Sender: sender}, nil
}

// WriteTimeout serializes t as view || high_qc || sender.
func WriteTimeout(w io.Writer, t types.Timeout) error {
	if err := WriteView(w, t.View); err != nil {
		return err
	}
	if err := WriteStandardQc(w, t.HighQC); err != nil {
		return err
	}
	return writeNodeID(w, t.Sender)
}

// ReadTimeout deserializes a Timeout.
func ReadTimeout(r io.Reader) (types.Timeout, error) {
	view, err := ReadView(r)
	if err != nil {
		return types.Timeout{}, err
	}
	high, err := ReadStandardQc(r)
	if err != nil {
		return types.Timeout{}, err
	}
	sender, err := readNodeID(r)
	if err != nil {
		return types.Timeout{}, err
	}
	return types.Timeout{View: view, HighQC: high, Sender: sender}, nil
}
