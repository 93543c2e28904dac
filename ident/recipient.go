/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ident

// RecipientKind discriminates the variants of Recipient.
type RecipientKind uint8

const (
	RecipientNick RecipientKind = iota
	RecipientChannel
	RecipientAll
)

// allRecipientToken is the wildcard recipient token meaning "everyone",
// used by server-to-server broadcast-style messages.
const allRecipientToken = "$*"

// Recipient is the tagged union Channel(ChannelName) | Nick(Nickname) | All.
// The zero value is not valid; construct via ParseRecipient.
type Recipient struct {
	kind    RecipientKind
	channel ChannelName
	nick    Nickname
}

// Kind reports which variant this Recipient holds.
func (r Recipient) Kind() RecipientKind { return r.kind }

// Channel returns the channel variant's payload. Only meaningful when
// Kind() == RecipientChannel.
func (r Recipient) Channel() ChannelName { return r.channel }

// Nick returns the nick variant's payload. Only meaningful when
// Kind() == RecipientNick.
func (r Recipient) Nick() Nickname { return r.nick }

// NewChannelRecipient wraps a ChannelName as a Recipient.
func NewChannelRecipient(c ChannelName) Recipient {
	return Recipient{kind: RecipientChannel, channel: c}
}

// NewNickRecipient wraps a Nickname as a Recipient.
func NewNickRecipient(n Nickname) Recipient {
	return Recipient{kind: RecipientNick, nick: n}
}

// AllRecipient is the wildcard recipient ("$*").
var AllRecipient = Recipient{kind: RecipientAll}

// ParseRecipient parses a single wire token into a Recipient.
//
// A token starting with a channel prefix byte is a Channel; the literal
// "$*" is All; anything else is attempted as a Nickname's "name_<uuid>"
// wire form, falling back to ErrInvalidRecipient.
func ParseRecipient(token string) (Recipient, error) {
	if token == allRecipientToken {
		return AllRecipient, nil
	}

	if len(token) > 0 && containsByte(channelPrefixes, token[0]) {
		ch, err := NewChannelName(token)
		if err != nil {
			return Recipient{}, ErrInvalidRecipient
		}
		return NewChannelRecipient(ch), nil
	}

	nick, err := ParseNickname(token)
	if err != nil {
		return Recipient{}, ErrInvalidRecipient
	}

	return NewNickRecipient(nick), nil
}

// String renders the Recipient back to its wire token.
func (r Recipient) String() string {
	switch r.kind {
	case RecipientChannel:
		return r.channel.String()
	case RecipientNick:
		return r.nick.String()
	case RecipientAll:
		return allRecipientToken
	default:
		return ""
	}
}

// Equal reports whether two recipients denote the same target.
func (r Recipient) Equal(other Recipient) bool {
	if r.kind != other.kind {
		return false
	}
	switch r.kind {
	case RecipientChannel:
		return r.channel.Equal(other.channel)
	case RecipientNick:
		return r.nick.Equal(other.nick)
	default:
		return true
	}
}
