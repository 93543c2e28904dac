/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package codec

import (
	"strconv"
	"strings"

	"github.com/btnmasher/ircwire/ident"
	"github.com/btnmasher/ircwire/ircmsg"
)

const ctcpDelim = "\x01"

func parsePrivOrNotice(params []string, notice bool) (ircmsg.Command, error) {
	verb := "PRIVMSG"
	if notice {
		verb = "NOTICE"
	}
	if err := requireArity(verb, params, 2, 2); err != nil {
		return nil, err
	}

	recipients, err := parseRecipients(params[0])
	if err != nil {
		return nil, err
	}

	text := params[1]
	if ctcpBody, ok := stripCTCP(text); ok {
		if cmd, ok := parseCTCPOrDCC(recipients, ctcpBody, notice); ok {
			return cmd, nil
		}
	}

	if notice {
		return ircmsg.NewNotice(recipients, text), nil
	}
	return ircmsg.NewPrivMsg(recipients, text), nil
}

func parseRecipients(field string) ([]ident.Recipient, error) {
	tokens := splitComma(field)
	out := make([]ident.Recipient, 0, len(tokens))
	for _, tok := range tokens {
		r, err := ident.ParseRecipient(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func stripCTCP(text string) (string, bool) {
	if len(text) >= 2 && strings.HasPrefix(text, ctcpDelim) && strings.HasSuffix(text, ctcpDelim) {
		return text[1 : len(text)-1], true
	}
	return "", false
}

// parseCTCPOrDCC builds the typed DCC/SDCC variant for a stripped CTCP
// body that is a well-formed DCC/SDCC request, and a CTCPCommand/
// CTCPReplyCommand for any other non-empty body. It reports false only
// for an empty body, letting the caller fall back to a plain
// PRIVMSG/NOTICE.
func parseCTCPOrDCC(recipients []ident.Recipient, body string, notice bool) (ircmsg.Command, bool) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, false
	}

	ctcpVerb := fields[0]
	args := strings.TrimPrefix(body, ctcpVerb)
	args = strings.TrimLeft(args, " ")

	if (ctcpVerb == "DCC" || ctcpVerb == "SDCC") && len(recipients) > 0 {
		if cmd, ok := parseDCC(recipients[0], ctcpVerb == "SDCC", fields[1:]); ok {
			return cmd, true
		}
	}

	if notice {
		return ircmsg.NewCTCPReply(recipients, ctcpVerb, args), true
	}
	return ircmsg.NewCTCP(recipients, ctcpVerb, args), true
}

func parseDCC(recipient ident.Recipient, secure bool, args []string) (ircmsg.Command, bool) {
	if len(args) == 0 {
		return nil, false
	}
	sub := strings.ToUpper(args[0])
	rest := args[1:]

	switch sub {
	case "CHAT":
		if len(rest) != 3 {
			return nil, false
		}
		port, err := parsePort(rest[2])
		if err != nil {
			return nil, false
		}
		if secure {
			return ircmsg.NewSDCCChat(recipient, rest[1], port), true
		}
		return ircmsg.NewDCCChat(recipient, rest[1], port), true
	case "SEND":
		if len(rest) != 4 {
			return nil, false
		}
		port, err := parsePort(rest[2])
		if err != nil {
			return nil, false
		}
		size, err := strconv.ParseInt(rest[3], 10, 64)
		if err != nil {
			return nil, false
		}
		if secure {
			return ircmsg.NewSDCCSend(recipient, rest[0], rest[1], port, size), true
		}
		return ircmsg.NewDCCSend(recipient, rest[0], rest[1], port, size), true
	case "RESUME":
		if len(rest) != 3 {
			return nil, false
		}
		port, err := parsePort(rest[1])
		if err != nil {
			return nil, false
		}
		position, err := strconv.ParseInt(rest[2], 10, 64)
		if err != nil {
			return nil, false
		}
		if secure {
			return ircmsg.NewSDCCResume(recipient, rest[0], port, position), true
		}
		return ircmsg.NewDCCResume(recipient, rest[0], port, position), true
	default:
		return nil, false
	}
}

func parsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
