/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package codec

import "strings"

// rawLine is the lexical layer's output: the raw {tags, prefix, verb,
// params} tuple, deliberately kept free of any per-verb semantics so the
// lexer and the command parser never share more than this.
type rawLine struct {
	tagsBlob string
	hasTags  bool
	prefix   string
	verb     string
	params   []string
}

// lexLine implements the line parser of §4.3.1. data is one line without
// its trailing CRLF.
func lexLine(data string) (rawLine, error) {
	var raw rawLine

	if len(data) == 0 {
		return raw, ErrMalformedMessage
	}

	if data[0] == '@' {
		sp := strings.IndexByte(data, ' ')
		if sp < 0 {
			return raw, ErrInvalidTag
		}
		raw.tagsBlob = data[1:sp]
		raw.hasTags = true
		data = strings.TrimLeft(data[sp+1:], " ")
	}

	if len(data) > 0 && data[0] == ':' {
		sp := strings.IndexByte(data, ' ')
		if sp < 0 {
			raw.prefix = data[1:]
			data = ""
		} else {
			raw.prefix = data[1:sp]
			data = strings.TrimLeft(data[sp+1:], " ")
		}
	}

	tokens, trailing, hasTrailing := splitParams(data)
	if len(tokens) == 0 {
		return raw, ErrMalformedMessage
	}

	raw.verb = strings.ToUpper(tokens[0])
	raw.params = tokens[1:]
	if hasTrailing {
		raw.params = append(raw.params, trailing)
	}

	return raw, nil
}

// splitParams tokenizes the verb+params portion of a line per §4.3.1
// step 4: whitespace-separated tokens, except that a token beginning
// with ':' consumes the rest of the line (colon stripped) as a single
// trailing parameter. Unlike strings.Fields, this only treats ':' as
// trailing-introducing when it starts a token — a ':' inside a middle
// token is just a character of that token.
func splitParams(data string) (tokens []string, trailing string, hasTrailing bool) {
	for len(data) > 0 {
		data = strings.TrimLeft(data, " ")
		if len(data) == 0 {
			break
		}
		if data[0] == ':' {
			trailing = data[1:]
			hasTrailing = true
			return tokens, trailing, hasTrailing
		}
		sp := strings.IndexByte(data, ' ')
		if sp < 0 {
			tokens = append(tokens, data)
			return tokens, trailing, hasTrailing
		}
		tokens = append(tokens, data[:sp])
		data = data[sp+1:]
	}
	return tokens, trailing, hasTrailing
}
