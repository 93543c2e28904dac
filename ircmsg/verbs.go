/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "strings"

// joinComma joins identifiers with no spaces, per the encoder rule that
// multi-value parameters (channels, recipients, nicks) are comma-joined.
func joinComma(parts ...string) string {
	return strings.Join(parts, ",")
}

// splitComma splits a comma-joined wire field back into its parts. An
// empty field yields a nil (not single-empty-string) slice.
func splitComma(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, ",")
}

// joinSpace joins capability identifiers (or other space-separated wire
// lists) with a single space, the IRCv3 CAP list's separator.
func joinSpace(parts []string) string {
	return strings.Join(parts, " ")
}

// modeSign renders the encoder's +/- prefix for a mode letter toggle.
func modeSign(add bool) string {
	if add {
		return "+"
	}
	return "-"
}
