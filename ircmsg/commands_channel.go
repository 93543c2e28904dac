/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// JoinCommand is JOIN with one or more channels and optional per-channel
// keys, positionally paired (JOIN #a,#b k1,k2).
type JoinCommand struct {
	marker
	Channels []ident.ChannelName
	Keys     []string
}

func NewJoin(channels []ident.ChannelName, keys []string) JoinCommand {
	return JoinCommand{Channels: channels, Keys: keys}
}

func (c JoinCommand) Verb() string { return "JOIN" }
func (c JoinCommand) Params() []string {
	if len(c.Channels) == 0 {
		// The encoder special-cases an empty channel list to emit nothing
		// at all (§4.3.4); no params makes that fall out naturally.
		return nil
	}
	names := make([]string, len(c.Channels))
	for i, ch := range c.Channels {
		names[i] = ch.String()
	}
	p := []string{joinComma(names...)}
	if len(c.Keys) > 0 {
		p = append(p, joinComma(c.Keys...))
	}
	return p
}

// Join0Command is the special form "JOIN 0", meaning "part every channel".
type Join0Command struct {
	marker
}

func NewJoin0() Join0Command { return Join0Command{} }

func (c Join0Command) Verb() string     { return "JOIN" }
func (c Join0Command) Params() []string { return []string{"0"} }

// PartCommand is PART for one or more channels. A trailing reason is
// accepted by the parser but not retained by this variant.
type PartCommand struct {
	marker
	Channels []ident.ChannelName
}

func NewPart(channels []ident.ChannelName) PartCommand {
	return PartCommand{Channels: channels}
}

func (c PartCommand) Verb() string { return "PART" }
func (c PartCommand) Params() []string {
	names := make([]string, len(c.Channels))
	for i, ch := range c.Channels {
		names[i] = ch.String()
	}
	return []string{joinComma(names...)}
}

// ListCommand is LIST, optionally restricted to specific channels.
type ListCommand struct {
	marker
	Channels []ident.ChannelName
}

func NewList(channels []ident.ChannelName) ListCommand { return ListCommand{Channels: channels} }

func (c ListCommand) Verb() string { return "LIST" }
func (c ListCommand) Params() []string {
	if len(c.Channels) == 0 {
		return nil
	}
	names := make([]string, len(c.Channels))
	for i, ch := range c.Channels {
		names[i] = ch.String()
	}
	return []string{joinComma(names...)}
}

// ModeChange is one +/- toggle within a MODE command, with its positional
// parameter if the mode letter takes one.
type ModeChange struct {
	Letter byte
	Param  string
}

// ChannelModeCommand is MODE applied to a channel with one or more
// add/remove mode-letter toggles. Unknown mode letters are tolerated by
// the parser (§4.3.3) and never appear here.
type ChannelModeCommand struct {
	marker
	Channel ident.ChannelName
	Add     []ModeChange
	Remove  []ModeChange
}

func NewChannelMode(channel ident.ChannelName, add, remove []ModeChange) ChannelModeCommand {
	return ChannelModeCommand{Channel: channel, Add: add, Remove: remove}
}

func (c ChannelModeCommand) Verb() string { return "MODE" }
func (c ChannelModeCommand) Params() []string {
	p := []string{c.Channel.String()}
	addLetters, addArgs := renderModeChanges('+', c.Add)
	removeLetters, removeArgs := renderModeChanges('-', c.Remove)
	p = append(p, addLetters...)
	p = append(p, removeLetters...)
	p = append(p, addArgs...)
	return append(p, removeArgs...)
}

// renderModeChanges renders one sign-prefixed token per mode letter (e.g.
// "+o", "+v") plus the non-empty params in the same order. This is the
// rendering both the codec encoder and the OtherCommand equivalence
// relation (§4.2) use; letters are not grouped behind a single sign
// token such as "+ov". The parser reads either form back to the same
// changes.
func renderModeChanges(sign byte, changes []ModeChange) (letters []string, args []string) {
	for _, ch := range changes {
		letters = append(letters, string(sign)+string(ch.Letter))
		if ch.Param != "" {
			args = append(args, ch.Param)
		}
	}
	return letters, args
}

// ModeGetChannelCommand is MODE with no mode letters: the channel mode
// getter.
type ModeGetChannelCommand struct {
	marker
	Channel ident.ChannelName
}

func NewModeGetChannel(channel ident.ChannelName) ModeGetChannelCommand {
	return ModeGetChannelCommand{Channel: channel}
}

func (c ModeGetChannelCommand) Verb() string     { return "MODE" }
func (c ModeGetChannelCommand) Params() []string { return []string{c.Channel.String()} }

// ModeGetBanMaskCommand is "MODE #channel b": request the channel's ban
// list.
type ModeGetBanMaskCommand struct {
	marker
	Channel ident.ChannelName
}

func NewModeGetBanMask(channel ident.ChannelName) ModeGetBanMaskCommand {
	return ModeGetBanMaskCommand{Channel: channel}
}

func (c ModeGetBanMaskCommand) Verb() string     { return "MODE" }
func (c ModeGetBanMaskCommand) Params() []string { return []string{c.Channel.String(), "b"} }

// TopicCommand is TOPIC: either a getter (Set == false) or a setter that
// carries the new topic text.
type TopicCommand struct {
	marker
	Channel ident.ChannelName
	Topic   string
	Set     bool
}

func NewTopicGet(channel ident.ChannelName) TopicCommand {
	return TopicCommand{Channel: channel}
}

func NewTopicSet(channel ident.ChannelName, topic string) TopicCommand {
	return TopicCommand{Channel: channel, Topic: topic, Set: true}
}

func (c TopicCommand) Verb() string { return "TOPIC" }
func (c TopicCommand) Params() []string {
	if !c.Set {
		return []string{c.Channel.String()}
	}
	return []string{c.Channel.String(), c.Topic}
}

// NamesCommand is NAMES for one or more channels.
type NamesCommand struct {
	marker
	Channels []ident.ChannelName
}

func NewNames(channels []ident.ChannelName) NamesCommand { return NamesCommand{Channels: channels} }

func (c NamesCommand) Verb() string { return "NAMES" }
func (c NamesCommand) Params() []string {
	if len(c.Channels) == 0 {
		return nil
	}
	names := make([]string, len(c.Channels))
	for i, ch := range c.Channels {
		names[i] = ch.String()
	}
	return []string{joinComma(names...)}
}

// InviteCommand is INVITE: invite a nick to a channel.
type InviteCommand struct {
	marker
	Nick    ident.Nickname
	Channel ident.ChannelName
}

func NewInvite(nick ident.Nickname, channel ident.ChannelName) InviteCommand {
	return InviteCommand{Nick: nick, Channel: channel}
}

func (c InviteCommand) Verb() string { return "INVITE" }
func (c InviteCommand) Params() []string {
	return []string{c.Nick.Encode(), c.Channel.String()}
}

// KickCommand is KICK: remove one or more nicks from one or more channels
// with a reason.
type KickCommand struct {
	marker
	Channels []ident.ChannelName
	Nicks    []ident.Nickname
	Reason   string
}

func NewKick(channels []ident.ChannelName, nicks []ident.Nickname, reason string) KickCommand {
	return KickCommand{Channels: channels, Nicks: nicks, Reason: reason}
}

func (c KickCommand) Verb() string { return "KICK" }
func (c KickCommand) Params() []string {
	chans := make([]string, len(c.Channels))
	for i, ch := range c.Channels {
		chans[i] = ch.String()
	}
	nicks := make([]string, len(c.Nicks))
	for i, n := range c.Nicks {
		nicks[i] = n.Encode()
	}
	return []string{joinComma(chans...), joinComma(nicks...), c.Reason}
}
