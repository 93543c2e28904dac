/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package multipart

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// OutcomeKind distinguishes the three results a packet can produce once
// handed to a Reassembler, per §4.4.
type OutcomeKind int

const (
	Incomplete OutcomeKind = iota
	Complete
	Rejected
)

// Outcome is the per-packet result of Reassembler.Update.
type Outcome struct {
	Kind   OutcomeKind
	Text   string
	Data   []byte
	IsText bool
	Reason error
}

type slot struct {
	totalParts  int32
	parts       map[int32]Packet
	firstSeenAt time.Time
	bytes       int
}

// Reassembler accumulates Packets keyed by group id and yields the
// original payload once every part has arrived. It is single-owner: all
// methods are meant to be called from one goroutine, per §5 — the slot
// table is the only mutable structure in this library, and its mutation
// is confined to the reassembler's owning task. Expiry is lazy only
// (checked at the top of each Update), per the "lazy check at each
// update" alternative §5 allows in place of a periodic sweep.
type Reassembler struct {
	slots            *slotTable
	timeout          time.Duration
	maxInFlightBytes int
	logger           *logrus.Entry
	cfg              reassemblerConfig
}

// NewReassembler constructs a Reassembler with the given options applied
// over the §6 defaults (30s timeout, 64MiB in-flight cap).
func NewReassembler(opts ...ReassemblerOption) *Reassembler {
	cfg := defaultReassemblerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Reassembler{
		slots:            newSlotTable(),
		timeout:          cfg.timeout,
		maxInFlightBytes: cfg.maxInFlightBytes,
		logger:           cfg.logger,
		cfg:              cfg,
	}
}

// Update feeds one packet into the reassembler and reports its outcome.
// now is passed explicitly rather than read from time.Now() so callers
// (and tests) control the clock driving slot expiry.
func (r *Reassembler) Update(p Packet, now time.Time) Outcome {
	r.expire(now)

	s, exists := r.slots.get(p.GroupID)
	if !exists {
		// A slot for an unseen group id is only created on its first part.
		// Without this, a straggler from a timed-out group (which this
		// reassembler has already forgotten) would silently start a new,
		// permanently-incomplete slot instead of being reported Orphaned.
		if p.PartNumber != 1 {
			return r.reject(ErrOrphaned)
		}
		s = &slot{
			totalParts:  p.TotalParts,
			parts:       make(map[int32]Packet),
			firstSeenAt: now,
		}
		r.slots.create(p.GroupID, s)
		r.logger.WithField("group_id", p.GroupID).Debug("multipart: slot created")
	}

	if p.PartNumber < 1 || p.PartNumber > s.totalParts || p.TotalParts != s.totalParts {
		return r.reject(ErrInconsistentTotal)
	}

	if _, dup := s.parts[p.PartNumber]; dup {
		return r.reject(ErrDuplicatePart)
	}

	s.parts[p.PartNumber] = p
	s.bytes += p.Size()
	r.slots.addBytes(p.Size())

	r.evictIfOverCapacity()
	// If capacity pressure evicted the very slot this packet just landed
	// in, report Evicted rather than Complete/Incomplete below.
	if _, stillThere := r.slots.get(p.GroupID); !stillThere {
		return r.reject(ErrEvicted)
	}

	if int32(len(s.parts)) == s.totalParts {
		return r.complete(p.GroupID, s)
	}

	return Outcome{Kind: Incomplete}
}

// Cancel drops a group's slot without emitting Complete for it, per the
// explicit cancel(group_id) operation in §5.
func (r *Reassembler) Cancel(groupID string) {
	r.slots.drop(groupID)
}

func (r *Reassembler) complete(groupID string, s *slot) Outcome {
	indices := make([]int32, 0, len(s.parts))
	for idx := range s.parts {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	isText := s.parts[indices[0]].IsText
	var text string
	var data []byte
	for _, idx := range indices {
		part := s.parts[idx]
		if isText {
			text += part.Message
		} else {
			data = append(data, part.Data...)
		}
	}

	r.slots.drop(groupID)
	r.logger.WithField("group_id", groupID).Debug("multipart: slot completed")

	return Outcome{Kind: Complete, Text: text, Data: data, IsText: isText}
}

func (r *Reassembler) reject(reason error) Outcome {
	return Outcome{Kind: Rejected, Reason: reason}
}

// expire drops every slot whose age exceeds the configured timeout.
func (r *Reassembler) expire(now time.Time) {
	for _, groupID := range r.slots.groupIDs() {
		s, ok := r.slots.get(groupID)
		if !ok {
			continue
		}
		if now.Sub(s.firstSeenAt) > r.timeout {
			r.slots.drop(groupID)
			r.logger.WithField("group_id", groupID).Debug("multipart: slot expired")
		}
	}
}

// evictIfOverCapacity drops the oldest slot(s) while the global in-flight
// byte budget is exceeded, per the Memory pressure failure semantics in
// §4.4 ("on exceedance, the oldest slot is evicted").
func (r *Reassembler) evictIfOverCapacity() {
	for r.slots.inFlightBytes > r.maxInFlightBytes {
		oldest, ok := r.slots.oldest()
		if !ok {
			return
		}
		r.slots.drop(oldest)
		r.logger.WithField("group_id", oldest).Warn("multipart: slot evicted under memory pressure")
	}
}
