/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package multipart

import (
	"github.com/google/uuid"
)

// fixedPacketOverhead is a conservative estimate of the non-payload bytes
// a framed Packet costs once CBOR-encoded and length-prefixed: the
// 4-byte frame length, the group id (UUID, 36 bytes), the two int64/int32
// timestamp and counter fields, and CBOR's own map/key overhead. Chunk
// size is computed generously under this estimate rather than exactly,
// since the fragmenter only needs to stay under the ceiling, not hug it.
const fixedPacketOverhead = 96

// Fragmenter splits a single logical payload into an ordered, finite,
// non-restartable stream of Packets, pulled one at a time via Next. It
// mirrors the teacher's pull-style MessagePool idiom (New/Recycle)
// adapted to a stateful generator instead of a free-list.
type Fragmenter struct {
	groupID    string
	createdAt  int64
	isText     bool
	payload    []byte
	chunkSize  int
	totalParts int32
	cfg        fragmenterConfig

	nextIndex int32
	cursor    int
	done      bool
}

// NewTextFragmenter builds a Fragmenter over a text payload.
func NewTextFragmenter(createdAt int64, text string, opts ...FragmenterOption) *Fragmenter {
	return newFragmenter(createdAt, []byte(text), true, opts)
}

// NewBinaryFragmenter builds a Fragmenter over a binary payload.
func NewBinaryFragmenter(createdAt int64, data []byte, opts ...FragmenterOption) *Fragmenter {
	return newFragmenter(createdAt, data, false, opts)
}

func newFragmenter(createdAt int64, payload []byte, isText bool, opts []FragmenterOption) *Fragmenter {
	cfg := defaultFragmenterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	chunk := cfg.maxLineBytes - cfg.envelope - fixedPacketOverhead
	if chunk < 1 {
		chunk = 1
	}

	total := int32(1)
	if len(payload) > 0 {
		total = int32((len(payload) + chunk - 1) / chunk)
	}

	return &Fragmenter{
		groupID:    uuid.NewString(),
		createdAt:  createdAt,
		isText:     isText,
		payload:    payload,
		chunkSize:  chunk,
		totalParts: total,
		cfg:        cfg,
		nextIndex:  1,
	}
}

// GroupID returns the group id assigned to every packet this fragmenter
// emits.
func (f *Fragmenter) GroupID() string { return f.groupID }

// TotalParts returns the total number of packets this fragmenter will
// emit over its lifetime.
func (f *Fragmenter) TotalParts() int32 { return f.totalParts }

// Next pulls the next packet in the stream. The second return value is
// false once the stream is exhausted; callers must stop calling Next at
// that point, per the non-restartable contract.
func (f *Fragmenter) Next() (Packet, bool, error) {
	if f.done || f.cursor >= len(f.payload) && f.nextIndex > f.totalParts {
		return Packet{}, false, nil
	}

	end := f.cursor + f.chunkSize
	if end > len(f.payload) {
		end = len(f.payload)
	}
	chunk := f.payload[f.cursor:end]

	p := Packet{
		GroupID:    f.groupID,
		CreatedAt:  f.createdAt,
		PartNumber: f.nextIndex,
		TotalParts: f.totalParts,
		IsText:     f.isText,
	}
	if f.isText {
		p.Message = string(chunk)
	} else {
		p.Data = append([]byte(nil), chunk...)
	}

	f.cursor = end
	f.nextIndex++
	if f.nextIndex > f.totalParts {
		f.done = true
	}

	return p, true, nil
}

// Collect drains the stream eagerly into a slice, the Unbounded policy's
// natural consumption shape. Bounded callers should drive Next directly
// instead, so each packet is materialized only as the caller asks for it.
func (f *Fragmenter) Collect() ([]Packet, error) {
	var out []Packet
	for {
		p, ok, err := f.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, p)
	}
}
