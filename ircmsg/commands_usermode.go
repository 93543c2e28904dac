/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// UserModeCommand is MODE applied to a user (rather than a channel): a
// flat set of +/- user-mode letter toggles, none of which carry a
// positional parameter.
type UserModeCommand struct {
	marker
	Nick   ident.Nickname
	Add    []byte
	Remove []byte
}

func NewUserMode(nick ident.Nickname, add, remove []byte) UserModeCommand {
	return UserModeCommand{Nick: nick, Add: add, Remove: remove}
}

func (c UserModeCommand) Verb() string { return "MODE" }
func (c UserModeCommand) Params() []string {
	p := []string{c.Nick.Encode()}
	if len(c.Add) > 0 {
		p = append(p, "+"+string(c.Add))
	}
	if len(c.Remove) > 0 {
		p = append(p, "-"+string(c.Remove))
	}
	return p
}

// ModeGetUserCommand is MODE with no mode letters: the user mode getter.
type ModeGetUserCommand struct {
	marker
	Nick ident.Nickname
}

func NewModeGetUser(nick ident.Nickname) ModeGetUserCommand {
	return ModeGetUserCommand{Nick: nick}
}

func (c ModeGetUserCommand) Verb() string     { return "MODE" }
func (c ModeGetUserCommand) Params() []string { return []string{c.Nick.Encode()} }
