/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ident

import (
	"strings"

	"github.com/google/uuid"
)

// MaxNickLength is the maximum number of characters allowed in the name
// portion of a Nickname.
const MaxNickLength = 32

// Nickname is a validated client identifier: a display name paired with a
// device UUID. Values are immutable once constructed; the zero value is not
// a valid Nickname.
type Nickname struct {
	name     string
	deviceID uuid.UUID
}

// NewNickname validates name and pairs it with deviceID.
//
// name must be 1-32 characters, start with a letter, and contain only
// letters and digits thereafter. Per the resolution of the
// nickname/underscore open question (see DESIGN.md), underscores are
// rejected here even though they are otherwise in the "letters/digits/
// underscore" character class, because the wire form name_<uuid> relies on
// splitting on the first underscore unambiguously.
func NewNickname(name string, deviceID uuid.UUID) (Nickname, error) {
	if !validNickName(name) {
		return Nickname{}, ErrInvalidNick
	}
	return Nickname{name: name, deviceID: deviceID}, nil
}

// ParseNickname parses the wire form "name_<uuid>" produced by Encode.
func ParseNickname(wire string) (Nickname, error) {
	idx := strings.IndexByte(wire, '_')
	if idx < 0 {
		return Nickname{}, ErrInvalidNick
	}

	name := wire[:idx]
	rest := wire[idx+1:]

	id, err := uuid.Parse(rest)
	if err != nil {
		return Nickname{}, ErrInvalidNick
	}

	return NewNickname(name, id)
}

func validNickName(name string) bool {
	if len(name) == 0 || len(name) > MaxNickLength {
		return false
	}

	first := name[0]
	if !isLetter(first) {
		return false
	}

	for i := 1; i < len(name); i++ {
		c := name[i]
		if c == '_' || c == '-' || c == ' ' {
			return false
		}
		if !isLetter(c) && !isDigit(c) {
			return false
		}
	}

	return true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Name returns the display name portion of the nickname.
func (n Nickname) Name() string { return n.name }

// DeviceID returns the device UUID portion of the nickname.
func (n Nickname) DeviceID() uuid.UUID { return n.deviceID }

// Encode renders the wire form: name_<uuid-canonical-hyphenated>.
func (n Nickname) Encode() string {
	return n.name + "_" + n.deviceID.String()
}

// String satisfies fmt.Stringer with the wire form.
func (n Nickname) String() string {
	return n.Encode()
}

// Equal reports whether two nicknames have the same name and device ID.
// Nickname is a comparable struct so == is equivalent, but Equal documents
// intent at call sites.
func (n Nickname) Equal(other Nickname) bool {
	return n == other
}
