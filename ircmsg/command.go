/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

// Package ircmsg defines the closed set of IRC command variants and the
// message envelope that carries them, per the protocol's command/message
// model. It has no dependency on the codec: constructing a Command or
// Message never touches the network.
package ircmsg

// Command is the sealed interface implemented by every variant of the IRC
// command set. The marker method is unexported so the set is closed to
// this package: callers match on concrete types via a type switch rather
// than subclassing, per the "do not model commands as a base class with
// subclasses" design note.
type Command interface {
	// Verb returns the wire command string, e.g. "PRIVMSG", or the
	// zero-padded 3-digit numeric for Numeric/OtherNumeric.
	Verb() string

	ircCommand()
}

// Params is implemented by every command variant and exposes the
// ordered positional argument sequence the codec encoder renders after
// the verb. It also defines equivalence with OtherCommand (§4.2):
// commands that don't naturally reduce to a flat argument list (e.g.
// ChannelMode, with its add/remove mode-letter structure) still
// implement it via the same rendering the encoder uses, so Equivalent
// can compare them against an OtherCommand built from raw wire params.
type Params interface {
	Command
	Params() []string
}

type marker struct{}

func (marker) ircCommand() {}
