/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package multipart

import (
	"time"

	"github.com/sirupsen/logrus"
)

// BufferingPolicy is the fragmenter's Unbounded/Bounded configuration
// setting. The Fragmenter stores it but does not read it: under either
// policy it holds the whole payload in memory and builds one chunk per
// Next call, and maxBytes does not limit the chunk size.
type BufferingPolicy struct {
	bounded  bool
	maxBytes int
}

// Unbounded returns the default policy. Packets are still built one per
// Next call; Collect drains them all at once.
func Unbounded() BufferingPolicy { return BufferingPolicy{} }

// Bounded returns a policy that records maxBytes. The Fragmenter builds
// packets one per Next call exactly as under Unbounded; maxBytes is not
// applied.
func Bounded(maxBytes int) BufferingPolicy {
	return BufferingPolicy{bounded: true, maxBytes: maxBytes}
}

const (
	// DefaultMaxLineBytes mirrors codec.MaxLineBytes; kept as its own
	// constant so multipart has no import-time dependency on codec.
	DefaultMaxLineBytes = 510

	// DefaultReassemblyTimeout is the slot expiry default from §6.
	DefaultReassemblyTimeout = 30 * time.Second

	// DefaultMaxInFlightBytes is the global cross-slot memory cap default.
	DefaultMaxInFlightBytes = 64 * 1024 * 1024
)

// FragmenterOption configures a Fragmenter at construction.
type FragmenterOption func(*fragmenterConfig)

type fragmenterConfig struct {
	policy       BufferingPolicy
	maxLineBytes int
	envelope     int
}

func defaultFragmenterConfig() fragmenterConfig {
	return fragmenterConfig{
		policy:       Unbounded(),
		maxLineBytes: DefaultMaxLineBytes,
	}
}

// WithBufferingPolicy sets the Unbounded/Bounded materialization policy.
func WithBufferingPolicy(p BufferingPolicy) FragmenterOption {
	return func(c *fragmenterConfig) { c.policy = p }
}

// WithMaxLineBytes overrides the wire ceiling used to compute chunk size.
// Only meant to be tuned in tests; production callers should leave this
// at DefaultMaxLineBytes to match the encoder.
func WithMaxLineBytes(n int) FragmenterOption {
	return func(c *fragmenterConfig) { c.maxLineBytes = n }
}

// WithEnvelopeOverhead reserves extra bytes per line for the outer IRC
// message's verb/origin/tag framing, beyond the packet's own CBOR framing.
func WithEnvelopeOverhead(n int) FragmenterOption {
	return func(c *fragmenterConfig) { c.envelope = n }
}

// ReassemblerOption configures a Reassembler at construction.
type ReassemblerOption func(*reassemblerConfig)

type reassemblerConfig struct {
	timeout          time.Duration
	maxInFlightBytes int
	logger           *logrus.Entry
}

func defaultReassemblerConfig() reassemblerConfig {
	return reassemblerConfig{
		timeout:          DefaultReassemblyTimeout,
		maxInFlightBytes: DefaultMaxInFlightBytes,
		logger:           logrus.NewEntry(discardLogger()),
	}
}

// WithTimeout overrides the slot expiry duration (reassembly_timeout_ms).
func WithTimeout(d time.Duration) ReassemblerOption {
	return func(c *reassemblerConfig) { c.timeout = d }
}

// WithMaxInFlightBytes overrides the global cross-slot memory cap.
func WithMaxInFlightBytes(n int) ReassemblerOption {
	return func(c *reassemblerConfig) { c.maxInFlightBytes = n }
}

// WithLogger sets the logger used for slot lifecycle events (created,
// expired, evicted). Defaults to a discard logger.
func WithLogger(entry *logrus.Entry) ReassemblerOption {
	return func(c *reassemblerConfig) {
		if entry != nil {
			c.logger = entry
		}
	}
}
