/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import (
	"strconv"

	"github.com/btnmasher/ircwire/ident"
)

const ctcpDCC = "DCC"

// dccCommand carries the fields common to every DCC/SDCC request: all of
// them are wire-wise a CTCP request (a PRIVMSG framed with 0x01) whose
// first CTCP argument is the DCC subcommand (CHAT/SEND/RESUME/...) and
// whose remaining arguments are subcommand-specific.
type dccCommand struct {
	marker
	Recipient ident.Recipient
	Sub       string
	Args      []string
	secure    bool
}

func (c dccCommand) Verb() string { return "PRIVMSG" }
func (c dccCommand) Params() []string {
	verb := ctcpDCC
	if c.secure {
		verb = "S" + ctcpDCC
	}
	text := verb + " " + c.Sub
	for _, a := range c.Args {
		text += " " + a
	}
	return []string{c.Recipient.String(), ctcpDelim + text + ctcpDelim}
}

// DCCChatCommand proposes a direct chat connection (DCC CHAT chat ip port).
type DCCChatCommand struct{ dccCommand }

func NewDCCChat(recipient ident.Recipient, ip string, port uint16) DCCChatCommand {
	return DCCChatCommand{dccCommand{
		Recipient: recipient,
		Sub:       "CHAT",
		Args:      []string{"chat", ip, strconv.Itoa(int(port))},
	}}
}

// DCCSendCommand proposes a file transfer (DCC SEND filename ip port size).
type DCCSendCommand struct{ dccCommand }

func NewDCCSend(recipient ident.Recipient, filename, ip string, port uint16, size int64) DCCSendCommand {
	return DCCSendCommand{dccCommand{
		Recipient: recipient,
		Sub:       "SEND",
		Args:      []string{filename, ip, strconv.Itoa(int(port)), strconv.FormatInt(size, 10)},
	}}
}

// DCCResumeCommand asks to resume a stalled file transfer from a byte
// offset (DCC RESUME filename port position).
type DCCResumeCommand struct{ dccCommand }

func NewDCCResume(recipient ident.Recipient, filename string, port uint16, position int64) DCCResumeCommand {
	return DCCResumeCommand{dccCommand{
		Recipient: recipient,
		Sub:       "RESUME",
		Args:      []string{filename, strconv.Itoa(int(port)), strconv.FormatInt(position, 10)},
	}}
}

// SDCCChatCommand is DCCChatCommand's TLS-secured variant (SDCC CHAT ...).
type SDCCChatCommand struct{ dccCommand }

func NewSDCCChat(recipient ident.Recipient, ip string, port uint16) SDCCChatCommand {
	return SDCCChatCommand{dccCommand{
		Recipient: recipient,
		Sub:       "CHAT",
		Args:      []string{"chat", ip, strconv.Itoa(int(port))},
		secure:    true,
	}}
}

// SDCCSendCommand is DCCSendCommand's TLS-secured variant (SDCC SEND ...).
type SDCCSendCommand struct{ dccCommand }

func NewSDCCSend(recipient ident.Recipient, filename, ip string, port uint16, size int64) SDCCSendCommand {
	return SDCCSendCommand{dccCommand{
		Recipient: recipient,
		Sub:       "SEND",
		Args:      []string{filename, ip, strconv.Itoa(int(port)), strconv.FormatInt(size, 10)},
		secure:    true,
	}}
}

// SDCCResumeCommand is DCCResumeCommand's TLS-secured variant (SDCC RESUME ...).
type SDCCResumeCommand struct{ dccCommand }

func NewSDCCResume(recipient ident.Recipient, filename string, port uint16, position int64) SDCCResumeCommand {
	return SDCCResumeCommand{dccCommand{
		Recipient: recipient,
		Sub:       "RESUME",
		Args:      []string{filename, strconv.Itoa(int(port)), strconv.FormatInt(position, 10)},
		secure:    true,
	}}
}
