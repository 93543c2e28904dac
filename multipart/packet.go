/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

// Package multipart fragments oversized logical payloads into a stream of
// wire-sized packets and reassembles them on the receiving side, letting
// arbitrary-length text or binary payloads traverse the IRC line ceiling.
// It has no dependency on codec or ircmsg: a packet is a self-contained
// document, agnostic to how its caller frames it on the wire.
package multipart

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Packet is a single chunk of a multipart logical payload. Exactly one of
// Message or Data is populated, mirroring the reference encoding's
// "message: string | data: bytes" union. keyasint struct tags keep the
// CBOR encoding compact, the same approach the AMP relay example uses for
// its own tagged wire messages.
type Packet struct {
	GroupID    string `cbor:"0,keyasint"`
	CreatedAt  int64  `cbor:"1,keyasint"`
	PartNumber int32  `cbor:"2,keyasint"`
	TotalParts int32  `cbor:"3,keyasint"`
	Message    string `cbor:"4,keyasint,omitempty"`
	Data       []byte `cbor:"5,keyasint,omitempty"`
	IsText     bool   `cbor:"6,keyasint"`
}

// Text returns the packet's payload as text and reports whether the
// packet actually carries text (false for a binary packet).
func (p Packet) Text() (string, bool) {
	if !p.IsText {
		return "", false
	}
	return p.Message, true
}

// Bytes returns the packet's payload as the raw bytes it carries,
// regardless of whether it's a text or binary packet.
func (p Packet) Bytes() []byte {
	if p.IsText {
		return []byte(p.Message)
	}
	return p.Data
}

// Size reports the number of payload bytes this packet carries, used by
// the reassembler to enforce max_in_flight_bytes.
func (p Packet) Size() int {
	if p.IsText {
		return len(p.Message)
	}
	return len(p.Data)
}

// EncodePacket renders a Packet to its framed binary form: a 4-byte
// big-endian length prefix (the same explicit length-prefix idiom the AMP
// relay example applies at its message-id boundary, used here at the
// frame boundary) followed by the CBOR document.
func EncodePacket(p Packet) ([]byte, error) {
	body, err := cbor.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserializeFailure, err)
	}

	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[:4], uint32(len(body)))
	copy(out[4:], body)
	return out, nil
}

// DecodePacket parses a framed Packet from EncodePacket's wire form. It
// reports the number of bytes consumed so a caller can step through a
// concatenated stream of frames.
func DecodePacket(frame []byte) (Packet, int, error) {
	if len(frame) < 4 {
		return Packet{}, 0, ErrDeserializeFailure
	}

	n := binary.BigEndian.Uint32(frame[:4])
	end := 4 + int(n)
	if end > len(frame) {
		return Packet{}, 0, ErrDeserializeFailure
	}

	var p Packet
	if err := cbor.Unmarshal(frame[4:end], &p); err != nil {
		return Packet{}, 0, fmt.Errorf("%w: %v", ErrDeserializeFailure, err)
	}
	return p, end, nil
}
