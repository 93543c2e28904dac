/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

// Package codec parses raw IRC wire lines into ircmsg.Message values and
// encodes them back. The line parser (lexical) and the per-verb command
// parser (semantic) are kept in separate files deliberately: they share
// only the raw {tags, prefix, verb, params} tuple produced by the lexer.
package codec

import "strconv"

// Error is an immutable sentinel error string, the same pattern the
// teacher uses for its own error set.
type Error string

func (err Error) Error() string { return string(err) }
func (err Error) String() string { return string(err) }

const (
	ErrMalformedMessage     Error = "malformed message"
	ErrUnexpectedArguments  Error = "unexpected arguments"
	ErrInvalidCapSubcommand Error = "invalid CAP subcommand"
	ErrInvalidTag           Error = "invalid tag"
	ErrLineTooLong          Error = "encoded line exceeds the wire ceiling"
)

// ArgumentError wraps ErrUnexpectedArguments with the verb and the
// expected/actual argument counts, mirroring the teacher's
// fmt.Errorf("...: %w", ...) layering for its own parameterized errors
// but as a structured type instead of formatted text, so callers can
// inspect the fields instead of parsing a message.
type ArgumentError struct {
	Verb     string
	Expected string
	Got      int
}

func (e *ArgumentError) Error() string {
	return e.Verb + ": expected " + e.Expected + " arguments, got " + strconv.Itoa(e.Got)
}

func (e *ArgumentError) Unwrap() error { return ErrUnexpectedArguments }
