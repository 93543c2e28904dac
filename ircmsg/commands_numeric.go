/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "fmt"

// NumericCommand is a server numeric reply (RPL_* / ERR_*): a 3-digit
// code followed by a flat argument list. The reply's target (the first
// positional parameter on the wire) is not part of Args: the codec parser
// moves it into Message.Target, and the encoder writes Message.Target back
// in front of Args.
type NumericCommand struct {
	marker
	Code int
	Args []string
}

func NewNumeric(code int, args ...string) NumericCommand {
	return NumericCommand{Code: code, Args: args}
}

func (c NumericCommand) Verb() string     { return fmt.Sprintf("%03d", c.Code) }
func (c NumericCommand) Params() []string { return c.Args }
