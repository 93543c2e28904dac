/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// Message is the envelope wrapping a Command with its origin, target, and
// IRCv3 tags. Target is only meaningful (and only ever populated by the
// parser) for numeric replies, where it is the reply's first positional
// parameter on the wire.
type Message struct {
	Origin  string
	Target  string
	Command Command
	Tags    []ident.Tag
}

// Tag looks up a tag by key. Per §4.3.2, duplicate keys retain last-wins
// semantics on lookup even though both occurrences survive in Tags for
// round-tripping.
func (m Message) Tag(key string) (string, bool) {
	value, found := "", false
	for _, t := range m.Tags {
		if t.Key == key {
			value, found = t.Value, true
		}
	}
	return value, found
}

// Equal implements the Message-level equivalence used by the round-trip
// property in §8: same origin, same target, same tags in order, and
// Command-level Equivalent.
func (m Message) Equal(other Message) bool {
	if m.Origin != other.Origin || m.Target != other.Target {
		return false
	}
	if len(m.Tags) != len(other.Tags) {
		return false
	}
	for i := range m.Tags {
		if m.Tags[i] != other.Tags[i] {
			return false
		}
	}
	return Equivalent(m.Command, other.Command)
}
