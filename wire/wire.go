// Copyright (C) 2019-2025, Carnot Chain Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire implements the canonical serialization of consensus
// messages: fixed-width big-endian integers, stable field order, and a
// tagged envelope carrying the message kind, the sender, and a
// length-prefixed payload.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/carnotchain/carnot/ids"
)

// Message kinds carried in an Envelope's leading tag byte.
const (
	KindProposal     uint8 = 0x01
	KindVote         uint8 = 0x02
	KindNewView      uint8 = 0x03
	KindTimeout      uint8 = 0x04
	KindTimeoutQc    uint8 = 0x05
	KindLocalTimeout uint8 = 0x06
)

// maxPayloadLen bounds the payload allocation on decode so a malformed
// length prefix cannot drive an arbitrary allocation.
const maxPayloadLen = 1 << 24

var (
	// ErrUnknownKind is returned when an envelope carries a tag byte
	// outside the recognized kinds.
	ErrUnknownKind = errors.New("wire: unknown message kind")

	// ErrKindMismatch is returned when decoding a payload as a kind the
	// envelope is not tagged with.
	ErrKindMismatch = errors.New("wire: envelope kind mismatch")

	// ErrPayloadTooLarge is returned when a length prefix exceeds
	// maxPayloadLen.
	ErrPayloadTooLarge = errors.New("wire: payload too large")
)

func validKind(k uint8) bool {
	return k >= KindProposal && k <= KindLocalTimeout
}

// Envelope is the tagged wrapper every consensus message travels in:
// one kind byte, the 32-byte sender, and a length-prefixed payload.
// LocalTimeout envelopes carry an empty payload.
type Envelope struct {
	Kind    uint8
	Sender  ids.NodeID
	Payload []byte
}

// Write serializes e.
func (e *Envelope) Write(w io.Writer) error {
	if !validKind(e.Kind) {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownKind, e.Kind)
	}
	if len(e.Payload) > maxPayloadLen {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(e.Payload))
	}
	if err := binary.Write(w, binary.BigEndian, e.Kind); err != nil {
		return err
	}
	if _, err := w.Write(e.Sender[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(e.Payload))); err != nil {
		return err
	}
	_, err := w.Write(e.Payload)
	return err
}

// Read deserializes an envelope from r.
func (e *Envelope) Read(r io.Reader) error {
	if err := binary.Read(r, binary.BigEndian, &e.Kind); err != nil {
		return err
	}
	if !validKind(e.Kind) {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownKind, e.Kind)
	}
	if _, err := io.ReadFull(r, e.Sender[:]); err != nil {
		return err
	}
	var payloadLen uint32
	if err := binary.Read(r, binary.BigEndian, &payloadLen); err != nil {
		return err
	}
	if payloadLen > maxPayloadLen {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, payloadLen)
	}
	e.Payload = make([]byte, payloadLen)
	_, err := io.ReadFull(r, e.Payload)
	return err
}
