/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package codec

// Channel mode letters that always consume a positional parameter,
// regardless of whether they're being added or removed: ban/except/
// invite-except/quiet masks and the five rank-grant letters (operator,
// voice, halfop, protect, owner). Everything but 'o' is also a letter the
// ircmsg moderation pseudo-commands render through (see
// ircmsg/commands_moderation.go); operator grants stay a plain
// ChannelModeCommand change since this library doesn't carry a distinct
// OP/DEOP pseudo-command type, but still need their positional nick
// consumed correctly or a combined line like "+ov nick1 nick2" misreads
// nick1 as the voice target instead of the operator grant's.
var alwaysParamModes = map[byte]bool{
	'b': true, // ban mask
	'e': true, // ban exception mask
	'I': true, // invite exception mask
	'Q': true, // quiet mask
	'o': true, // operator grant
	'v': true, // voice grant
	'h': true, // halfop grant
	'a': true, // protect grant
	'q': true, // owner grant
}

// Channel mode letters that consume a positional parameter only when
// being added (+), not when being removed (-).
var addOnlyParamModes = map[byte]bool{
	'k': true, // channel key
	'l': true, // user limit
}

// modeTakesParam reports whether a channel mode letter consumes the next
// positional parameter for the given add/remove direction. Letters not
// present in either table (e.g. i, t, n, s, p, m) never take a
// parameter; this also covers any letter the parser has never heard of,
// consistent with unknown modes being dropped rather than fatal (§9).
func modeTakesParam(letter byte, add bool) bool {
	if alwaysParamModes[letter] {
		return true
	}
	if add && addOnlyParamModes[letter] {
		return true
	}
	return false
}

// isKnownChannelMode reports whether letter is a mode this library
// recognizes at all. Unknown letters are tolerated by the parser (§9
// "tolerant parsing") — they're dropped with a warning, never rejected.
func isKnownChannelMode(letter byte) bool {
	if alwaysParamModes[letter] || addOnlyParamModes[letter] {
		return true
	}
	switch letter {
	case 'i', 't', 'n', 's', 'p', 'm', 'r', 'c', 'C':
		return true
	}
	return false
}
