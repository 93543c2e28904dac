/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package codec

import (
	"strings"

	"github.com/btnmasher/ircwire/ircmsg"
)

// MaxLineBytes is the wire ceiling from §6: a line the encoder produces,
// excluding CRLF, must never exceed this length. Oversized logical
// payloads are the multipart fragmenter's domain, not the encoder's.
const MaxLineBytes = 510

// Encode renders a Message to its canonical wire line (no trailing
// CRLF; the transport owns framing), per §4.3.4:
//
//	[@tags SP] [:origin SP] VERB [SP target (numeric only)] SP params [SP :trailing]
func Encode(m ircmsg.Message) (string, error) {
	if join, ok := m.Command.(ircmsg.JoinCommand); ok && len(join.Channels) == 0 {
		return "", nil
	}

	var b strings.Builder

	if len(m.Tags) > 0 {
		b.WriteByte('@')
		b.WriteString(renderTags(m.Tags))
		b.WriteByte(' ')
	}

	if m.Origin != "" {
		b.WriteByte(':')
		b.WriteString(m.Origin)
		b.WriteByte(' ')
	}

	b.WriteString(m.Command.Verb())

	params := commandParams(m.Command)
	if isAllDigits(m.Command.Verb()) && m.Target != "" {
		params = append([]string{m.Target}, params...)
	}

	freeText := isFreeTextFinal(m.Command.Verb(), len(params))
	for i, p := range params {
		b.WriteByte(' ')
		if i == len(params)-1 && (freeText || needsTrailingColon(p)) {
			b.WriteByte(':')
		}
		b.WriteString(p)
	}

	line := b.String()
	if len(line) > MaxLineBytes {
		return "", ErrLineTooLong
	}
	return line, nil
}

func commandParams(cmd ircmsg.Command) []string {
	p, ok := cmd.(ircmsg.Params)
	if !ok {
		return nil
	}
	return p.Params()
}

// needsTrailingColon reports whether a final positional parameter must
// be colon-prefixed to round-trip: empty, containing a space, or
// already starting with ':' all become ambiguous as a bare middle
// parameter per the line grammar in §4.3.1.
func needsTrailingColon(p string) bool {
	return p == "" || strings.ContainsRune(p, ' ') || strings.HasPrefix(p, ":")
}

// isFreeTextFinal reports whether the last of n params of verb is its
// free-text parameter (message body, topic, or reason), which is always
// colon-prefixed whatever its content.
func isFreeTextFinal(verb string, n int) bool {
	switch verb {
	case "PRIVMSG", "NOTICE", "TOPIC", "KILL":
		return n == 2
	case "KICK":
		return n == 3
	case "QUIT", "AWAY", "WALLOPS":
		return n == 1
	}
	return false
}
