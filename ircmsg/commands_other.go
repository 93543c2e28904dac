/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

// OtherCommand is the escape hatch for a textual verb this library does
// not model with its own named type: the verb and its already-split
// positional parameters are carried verbatim, so an unrecognized command
// still round-trips through parse/encode unchanged.
type OtherCommand struct {
	marker
	VerbText string
	Args     []string
}

func NewOtherCommand(verb string, args ...string) OtherCommand {
	return OtherCommand{VerbText: verb, Args: args}
}

func (c OtherCommand) Verb() string     { return c.VerbText }
func (c OtherCommand) Params() []string { return c.Args }

// OtherNumeric is the escape hatch for a numeric reply code this library
// does not give its own constant, analogous to OtherCommand.
type OtherNumeric struct {
	marker
	Code int
	Args []string
}

func NewOtherNumeric(code int, args ...string) OtherNumeric {
	return OtherNumeric{Code: code, Args: args}
}

func (c OtherNumeric) Verb() string     { return NumericCommand{Code: c.Code}.Verb() }
func (c OtherNumeric) Params() []string { return c.Args }
