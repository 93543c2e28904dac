/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package codec

import (
	"strings"

	"github.com/btnmasher/ircwire/ident"
)

// parseTags splits a tag blob (the part of the line after '@' and before
// the first unescaped space, already isolated by the lexer) into Tags,
// per §4.3.2: ';'-separated key[=value] pairs, values unescaped per the
// five escapes ident.Tag knows about.
func parseTags(blob string) ([]ident.Tag, error) {
	if blob == "" {
		return nil, nil
	}

	pairs := strings.Split(blob, ";")
	tags := make([]ident.Tag, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value := pair, ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key, value = pair[:i], ident.UnescapeTagValue(pair[i+1:])
		}
		tag, err := ident.NewTag(key, value)
		if err != nil {
			return nil, ErrInvalidTag
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// renderTags renders Tags back to the wire tag blob (without the leading
// '@' or trailing space, which the encoder adds at the call site).
func renderTags(tags []ident.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.Render()
	}
	return strings.Join(parts, ";")
}
