/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// Mode letters used by the channel-moderation pseudo-commands below. On
// the wire every one of these renders as a plain MODE line; the letter
// assignment here is this library's own convention (documented in
// DESIGN.md) rather than any single real-world IRCd's, since the two
// letters IRCds most often disagree on (owner vs. quiet) needed picking
// apart to stay distinct commands per §3.
const (
	modeLetterBan          = 'b'
	modeLetterExcept       = 'e'
	modeLetterInviteExcept = 'I'
	modeLetterQuiet        = 'Q'
	modeLetterVoice        = 'v'
	modeLetterHalfop       = 'h'
	modeLetterProtect      = 'a'
	modeLetterOwner        = 'q'
)

// maskModeCommand is embedded by the channel-moderation commands that
// toggle a mode letter against a ban-style mask (hostmask, extban, etc.)
// rather than a specific nick.
type maskModeCommand struct {
	marker
	Channel ident.ChannelName
	Mask    string
	letter  byte
	add     bool
}

func (c maskModeCommand) Verb() string { return "MODE" }
func (c maskModeCommand) Params() []string {
	return []string{c.Channel.String(), modeSign(c.add) + string(c.letter), c.Mask}
}

func newMaskMode(channel ident.ChannelName, mask string, letter byte, add bool) maskModeCommand {
	return maskModeCommand{Channel: channel, Mask: mask, letter: letter, add: add}
}

// BanCommand bans a mask from a channel (MODE +b).
type BanCommand struct{ maskModeCommand }

func NewBan(channel ident.ChannelName, mask string) BanCommand {
	return BanCommand{newMaskMode(channel, mask, modeLetterBan, true)}
}

// UnbanCommand lifts a ban (MODE -b).
type UnbanCommand struct{ maskModeCommand }

func NewUnban(channel ident.ChannelName, mask string) UnbanCommand {
	return UnbanCommand{newMaskMode(channel, mask, modeLetterBan, false)}
}

// ExceptCommand exempts a mask from the channel's ban list (MODE +e).
type ExceptCommand struct{ maskModeCommand }

func NewExcept(channel ident.ChannelName, mask string) ExceptCommand {
	return ExceptCommand{newMaskMode(channel, mask, modeLetterExcept, true)}
}

// UnexceptCommand removes a ban exception (MODE -e).
type UnexceptCommand struct{ maskModeCommand }

func NewUnexcept(channel ident.ChannelName, mask string) UnexceptCommand {
	return UnexceptCommand{newMaskMode(channel, mask, modeLetterExcept, false)}
}

// InviteExceptCommand exempts a mask from invite-only enforcement (MODE +I).
type InviteExceptCommand struct{ maskModeCommand }

func NewInviteExcept(channel ident.ChannelName, mask string) InviteExceptCommand {
	return InviteExceptCommand{newMaskMode(channel, mask, modeLetterInviteExcept, true)}
}

// UninviteExceptCommand removes an invite exception (MODE -I).
type UninviteExceptCommand struct{ maskModeCommand }

func NewUninviteExcept(channel ident.ChannelName, mask string) UninviteExceptCommand {
	return UninviteExceptCommand{newMaskMode(channel, mask, modeLetterInviteExcept, false)}
}

// QuietCommand silences a mask in a channel without removing it (MODE +Q).
type QuietCommand struct{ maskModeCommand }

func NewQuiet(channel ident.ChannelName, mask string) QuietCommand {
	return QuietCommand{newMaskMode(channel, mask, modeLetterQuiet, true)}
}

// UnquietCommand lifts a quiet (MODE -Q).
type UnquietCommand struct{ maskModeCommand }

func NewUnquiet(channel ident.ChannelName, mask string) UnquietCommand {
	return UnquietCommand{newMaskMode(channel, mask, modeLetterQuiet, false)}
}

// userModeGrantCommand is embedded by the channel-moderation commands that
// toggle a mode letter against a specific member's nick (rank grants)
// rather than a mask.
type userModeGrantCommand struct {
	marker
	Channel ident.ChannelName
	Nick    ident.Nickname
	letter  byte
	add     bool
}

func (c userModeGrantCommand) Verb() string { return "MODE" }
func (c userModeGrantCommand) Params() []string {
	return []string{c.Channel.String(), modeSign(c.add) + string(c.letter), c.Nick.Encode()}
}

func newUserModeGrant(channel ident.ChannelName, nick ident.Nickname, letter byte, add bool) userModeGrantCommand {
	return userModeGrantCommand{Channel: channel, Nick: nick, letter: letter, add: add}
}

// VoiceCommand grants speaking rights in a moderated channel (MODE +v).
type VoiceCommand struct{ userModeGrantCommand }

func NewVoice(channel ident.ChannelName, nick ident.Nickname) VoiceCommand {
	return VoiceCommand{newUserModeGrant(channel, nick, modeLetterVoice, true)}
}

// DevoiceCommand revokes voice (MODE -v).
type DevoiceCommand struct{ userModeGrantCommand }

func NewDevoice(channel ident.ChannelName, nick ident.Nickname) DevoiceCommand {
	return DevoiceCommand{newUserModeGrant(channel, nick, modeLetterVoice, false)}
}

// HalfopCommand grants half-operator rank (MODE +h).
type HalfopCommand struct{ userModeGrantCommand }

func NewHalfop(channel ident.ChannelName, nick ident.Nickname) HalfopCommand {
	return HalfopCommand{newUserModeGrant(channel, nick, modeLetterHalfop, true)}
}

// DehalfopCommand revokes half-operator rank (MODE -h).
type DehalfopCommand struct{ userModeGrantCommand }

func NewDehalfop(channel ident.ChannelName, nick ident.Nickname) DehalfopCommand {
	return DehalfopCommand{newUserModeGrant(channel, nick, modeLetterHalfop, false)}
}

// ProtectCommand grants protected-user status (MODE +a).
type ProtectCommand struct{ userModeGrantCommand }

func NewProtect(channel ident.ChannelName, nick ident.Nickname) ProtectCommand {
	return ProtectCommand{newUserModeGrant(channel, nick, modeLetterProtect, true)}
}

// DeprotectCommand revokes protected-user status (MODE -a).
type DeprotectCommand struct{ userModeGrantCommand }

func NewDeprotect(channel ident.ChannelName, nick ident.Nickname) DeprotectCommand {
	return DeprotectCommand{newUserModeGrant(channel, nick, modeLetterProtect, false)}
}

// OwnerCommand grants channel-owner status (MODE +q).
type OwnerCommand struct{ userModeGrantCommand }

func NewOwner(channel ident.ChannelName, nick ident.Nickname) OwnerCommand {
	return OwnerCommand{newUserModeGrant(channel, nick, modeLetterOwner, true)}
}

// DeownerCommand revokes channel-owner status (MODE -q).
type DeownerCommand struct{ userModeGrantCommand }

func NewDeowner(channel ident.ChannelName, nick ident.Nickname) DeownerCommand {
	return DeownerCommand{newUserModeGrant(channel, nick, modeLetterOwner, false)}
}

// KickBanCommand is the client-convenience combination of KICK and a ban.
// It is encoded as its KICK half only (channels, nicks, reason) — the
// companion MODE +b line is a second Message the caller builds with
// NewBan, since the codec encodes one Command to one wire line (§4.3.4)
// and this avoids silently doubling that contract for one variant.
type KickBanCommand struct {
	marker
	Channels []ident.ChannelName
	Nicks    []ident.Nickname
	Reason   string
	Mask     string
}

func NewKickBan(channels []ident.ChannelName, nicks []ident.Nickname, reason, mask string) KickBanCommand {
	return KickBanCommand{Channels: channels, Nicks: nicks, Reason: reason, Mask: mask}
}

func (c KickBanCommand) Verb() string { return "KICK" }
func (c KickBanCommand) Params() []string {
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

// BanMessage returns the companion ban this KickBan implies, to be encoded
// as its own Message alongside the KICK.
func (c KickBanCommand) BanMessage(channel ident.ChannelName) BanCommand {
	return NewBan(channel, c.Mask)
}

// ClearModeCommand clears a set of channel modes in one line
// (CLEARMODE channel modes).
type ClearModeCommand struct {
	marker
	Channel ident.ChannelName
	Modes   string
}

func NewClearMode(channel ident.ChannelName, modes string) ClearModeCommand {
	return ClearModeCommand{Channel: channel, Modes: modes}
}

func (c ClearModeCommand) Verb() string     { return "CLEARMODE" }
func (c ClearModeCommand) Params() []string { return []string{c.Channel.String(), c.Modes} }

// AwayCommand sets (non-empty Message) or clears (empty Message) the
// sender's away status.
type AwayCommand struct {
	marker
	Message string
}

func NewAway(message string) AwayCommand { return AwayCommand{Message: message} }

func (c AwayCommand) Verb() string { return "AWAY" }
func (c AwayCommand) Params() []string {
	if c.Message == "" {
		return nil
	}
	return []string{c.Message}
}

// KnockCommand requests entry to an invite-only channel.
type KnockCommand struct {
	marker
	Channel ident.ChannelName
	Message string
}

func NewKnock(channel ident.ChannelName, message string) KnockCommand {
	return KnockCommand{Channel: channel, Message: message}
}

func (c KnockCommand) Verb() string { return "KNOCK" }
func (c KnockCommand) Params() []string {
	if c.Message == "" {
		return []string{c.Channel.String()}
	}
	return []string{c.Channel.String(), c.Message}
}

// SilenceCommand adds (add == true) or removes a mask from the sender's
// server-side ignore list.
type SilenceCommand struct {
	marker
	Mask string
	Add  bool
}

func NewSilence(mask string, add bool) SilenceCommand { return SilenceCommand{Mask: mask, Add: add} }

func (c SilenceCommand) Verb() string { return "SILENCE" }
func (c SilenceCommand) Params() []string {
	return []string{modeSign(c.Add) + c.Mask}
}
