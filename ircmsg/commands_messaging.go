/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

func renderRecipients(recipients []ident.Recipient) string {
	parts := make([]string, len(recipients))
	for i, r := range recipients {
		parts[i] = r.String()
	}
	return joinComma(parts...)
}

// PrivMsgCommand is PRIVMSG: a message sent to one or more recipients.
type PrivMsgCommand struct {
	marker
	Recipients []ident.Recipient
	Text       string
}

func NewPrivMsg(recipients []ident.Recipient, text string) PrivMsgCommand {
	return PrivMsgCommand{Recipients: recipients, Text: text}
}

func (c PrivMsgCommand) Verb() string { return "PRIVMSG" }
func (c PrivMsgCommand) Params() []string {
	return []string{renderRecipients(c.Recipients), c.Text}
}

// NoticeCommand is NOTICE: like PRIVMSG, but clients must never auto-reply
// to it (avoids notice loops between bots).
type NoticeCommand struct {
	marker
	Recipients []ident.Recipient
	Text       string
}

func NewNotice(recipients []ident.Recipient, text string) NoticeCommand {
	return NoticeCommand{Recipients: recipients, Text: text}
}

func (c NoticeCommand) Verb() string { return "NOTICE" }
func (c NoticeCommand) Params() []string {
	return []string{renderRecipients(c.Recipients), c.Text}
}

const ctcpDelim = "\x01"

// CTCPCommand is a Client-To-Client-Protocol request: wire-wise a PRIVMSG
// whose text is wrapped in 0x01, carrying a CTCP verb (ACTION, VERSION,
// PING, ...) and its arguments.
type CTCPCommand struct {
	marker
	Recipients []ident.Recipient
	CTCPVerb   string
	Args       string
}

func NewCTCP(recipients []ident.Recipient, ctcpVerb, args string) CTCPCommand {
	return CTCPCommand{Recipients: recipients, CTCPVerb: ctcpVerb, Args: args}
}

func (c CTCPCommand) Verb() string { return "PRIVMSG" }
func (c CTCPCommand) Params() []string {
	return []string{renderRecipients(c.Recipients), c.wireText()}
}

func (c CTCPCommand) wireText() string {
	text := c.CTCPVerb
	if c.Args != "" {
		text += " " + c.Args
	}
	return ctcpDelim + text + ctcpDelim
}

// CTCPReplyCommand is a CTCP reply: wire-wise a NOTICE with the same
// 0x01-delimited framing as CTCPCommand.
type CTCPReplyCommand struct {
	marker
	Recipients []ident.Recipient
	CTCPVerb   string
	Args       string
}

func NewCTCPReply(recipients []ident.Recipient, ctcpVerb, args string) CTCPReplyCommand {
	return CTCPReplyCommand{Recipients: recipients, CTCPVerb: ctcpVerb, Args: args}
}

func (c CTCPReplyCommand) Verb() string { return "NOTICE" }
func (c CTCPReplyCommand) Params() []string {
	return []string{renderRecipients(c.Recipients), c.wireText()}
}

func (c CTCPReplyCommand) wireText() string {
	text := c.CTCPVerb
	if c.Args != "" {
		text += " " + c.Args
	}
	return ctcpDelim + text + ctcpDelim
}
