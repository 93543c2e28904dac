/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// NickCommand is the NICK command: set or change the sender's nickname.
type NickCommand struct {
	marker
	Nick ident.Nickname
}

func NewNick(nick ident.Nickname) NickCommand { return NickCommand{Nick: nick} }

func (c NickCommand) Verb() string     { return "NICK" }
func (c NickCommand) Params() []string { return []string{c.Nick.Encode()} }

// UserCommand is the USER command: register connection details.
type UserCommand struct {
	marker
	Details ident.UserDetails
}

func NewUser(details ident.UserDetails) UserCommand { return UserCommand{Details: details} }

func (c UserCommand) Verb() string { return "USER" }
func (c UserCommand) Params() []string {
	return []string{c.Details.Username(), c.Details.Field2(), c.Details.Field3(), c.Details.Realname()}
}

// QuitCommand is the QUIT command: disconnect with an optional reason.
type QuitCommand struct {
	marker
	Reason string
}

func NewQuit(reason string) QuitCommand { return QuitCommand{Reason: reason} }

func (c QuitCommand) Verb() string { return "QUIT" }
func (c QuitCommand) Params() []string {
	if c.Reason == "" {
		return nil
	}
	return []string{c.Reason}
}

// PassCommand is the PASS command: supply a connection password.
type PassCommand struct {
	marker
	Password string
}

func NewPass(password string) PassCommand { return PassCommand{Password: password} }

func (c PassCommand) Verb() string     { return "PASS" }
func (c PassCommand) Params() []string { return []string{c.Password} }

// PingCommand is the PING keepalive probe.
type PingCommand struct {
	marker
	Token string
}

func NewPing(token string) PingCommand { return PingCommand{Token: token} }

func (c PingCommand) Verb() string     { return "PING" }
func (c PingCommand) Params() []string { return []string{c.Token} }

// PongCommand answers a PING probe.
type PongCommand struct {
	marker
	Token string
}

func NewPong(token string) PongCommand { return PongCommand{Token: token} }

func (c PongCommand) Verb() string     { return "PONG" }
func (c PongCommand) Params() []string { return []string{c.Token} }

// CapSubCommand enumerates the IRCv3 CAP sub-commands.
type CapSubCommand uint8

const (
	CapLS CapSubCommand = iota
	CapList
	CapReq
	CapAck
	CapNak
	CapEnd
)

// String renders the wire token for a CapSubCommand.
func (s CapSubCommand) String() string {
	switch s {
	case CapLS:
		return "LS"
	case CapList:
		return "LIST"
	case CapReq:
		return "REQ"
	case CapAck:
		return "ACK"
	case CapNak:
		return "NAK"
	case CapEnd:
		return "END"
	default:
		return ""
	}
}

// ParseCapSubCommand maps a wire token back to a CapSubCommand.
func ParseCapSubCommand(token string) (CapSubCommand, bool) {
	switch token {
	case "LS":
		return CapLS, true
	case "LIST":
		return CapList, true
	case "REQ":
		return CapReq, true
	case "ACK":
		return CapAck, true
	case "NAK":
		return CapNak, true
	case "END":
		return CapEnd, true
	default:
		return 0, false
	}
}

// CapCommand is the IRCv3 CAP negotiation command.
type CapCommand struct {
	marker
	Sub          CapSubCommand
	Capabilities []string
}

func NewCap(sub CapSubCommand, capabilities []string) CapCommand {
	return CapCommand{Sub: sub, Capabilities: capabilities}
}

func (c CapCommand) Verb() string { return "CAP" }
func (c CapCommand) Params() []string {
	p := []string{c.Sub.String()}
	if len(c.Capabilities) > 0 {
		p = append(p, joinSpace(c.Capabilities))
	}
	return p
}
