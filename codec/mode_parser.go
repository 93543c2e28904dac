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
	"github.com/btnmasher/ircwire/ircmsg"
)

// letterSign pairs a mode letter with the +/- it was toggled under, the
// intermediate shape parseMode builds before it knows whether each
// letter needs a positional parameter.
type letterSign struct {
	letter byte
	add    bool
}

func parseMode(params []string) (ircmsg.Command, error) {
	if err := requireArity("MODE", params, 1, 32); err != nil {
		return nil, err
	}

	target := params[0]
	if len(target) > 0 && strings.ContainsRune("#&+!", rune(target[0])) {
		return parseChannelMode(target, params[1:])
	}
	return parseUserMode(target, params[1:])
}

func parseChannelMode(target string, rest []string) (ircmsg.Command, error) {
	ch, err := ident.NewChannelName(target)
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return ircmsg.NewModeGetChannel(ch), nil
	}
	if len(rest) == 1 && rest[0] == "b" {
		return ircmsg.NewModeGetBanMask(ch), nil
	}

	letters, positional := splitModeTokens(rest)

	var add, remove []ircmsg.ModeChange
	posIdx := 0
	for _, ls := range letters {
		if !isKnownChannelMode(ls.letter) {
			log.WithField("letter", string(ls.letter)).Warn("unknown channel mode letter, dropping")
			continue
		}
		var param string
		if modeTakesParam(ls.letter, ls.add) {
			if posIdx < len(positional) {
				param = positional[posIdx]
				posIdx++
			}
		}
		change := ircmsg.ModeChange{Letter: ls.letter, Param: param}
		if ls.add {
			add = append(add, change)
		} else {
			remove = append(remove, change)
		}
	}

	if cmd, ok := promoteChannelModePseudo(ch, add, remove); ok {
		return cmd, nil
	}

	return ircmsg.NewChannelMode(ch, add, remove), nil
}

// splitModeTokens separates the remaining MODE parameters into the
// ordered sequence of (letter, sign) toggles carried across every
// +/- prefixed token, and the ordered sequence of plain positional
// tokens that follow (§4.3.3: "parameters following certain mode
// letters are positional parameters for that mode").
func splitModeTokens(rest []string) (letters []letterSign, positional []string) {
	add := true
	for _, tok := range rest {
		if tok == "" {
			continue
		}
		if tok[0] == '+' || tok[0] == '-' {
			for i := 0; i < len(tok); i++ {
				switch tok[i] {
				case '+':
					add = true
				case '-':
					add = false
				default:
					letters = append(letters, letterSign{letter: tok[i], add: add})
				}
			}
			continue
		}
		positional = append(positional, tok)
	}
	return letters, positional
}

// promoteChannelModePseudo recognizes the handful of single-change MODE
// forms that have their own named ircmsg type (§3.1) and builds that
// type instead of the generic ChannelModeCommand, so a caller that type
// switches on BanCommand/VoiceCommand/etc. sees them from parsed wire
// input too, not only from their own constructors.
func promoteChannelModePseudo(ch ident.ChannelName, add, remove []ircmsg.ModeChange) (ircmsg.Command, bool) {
	if len(add)+len(remove) != 1 {
		return nil, false
	}

	isAdd := len(add) == 1
	var change ircmsg.ModeChange
	if isAdd {
		change = add[0]
	} else {
		change = remove[0]
	}

	switch change.Letter {
	case 'b':
		if isAdd {
			return ircmsg.NewBan(ch, change.Param), true
		}
		return ircmsg.NewUnban(ch, change.Param), true
	case 'e':
		if isAdd {
			return ircmsg.NewExcept(ch, change.Param), true
		}
		return ircmsg.NewUnexcept(ch, change.Param), true
	case 'I':
		if isAdd {
			return ircmsg.NewInviteExcept(ch, change.Param), true
		}
		return ircmsg.NewUninviteExcept(ch, change.Param), true
	case 'Q':
		if isAdd {
			return ircmsg.NewQuiet(ch, change.Param), true
		}
		return ircmsg.NewUnquiet(ch, change.Param), true
	case 'v', 'h', 'a', 'q':
		nick, err := ident.ParseNickname(change.Param)
		if err != nil {
			return nil, false
		}
		return promoteUserGrant(ch, nick, change.Letter, isAdd), true
	default:
		return nil, false
	}
}

func promoteUserGrant(ch ident.ChannelName, nick ident.Nickname, letter byte, add bool) ircmsg.Command {
	switch letter {
	case 'v':
		if add {
			return ircmsg.NewVoice(ch, nick)
		}
		return ircmsg.NewDevoice(ch, nick)
	case 'h':
		if add {
			return ircmsg.NewHalfop(ch, nick)
		}
		return ircmsg.NewDehalfop(ch, nick)
	case 'a':
		if add {
			return ircmsg.NewProtect(ch, nick)
		}
		return ircmsg.NewDeprotect(ch, nick)
	default: // 'q'
		if add {
			return ircmsg.NewOwner(ch, nick)
		}
		return ircmsg.NewDeowner(ch, nick)
	}
}

func parseUserMode(target string, rest []string) (ircmsg.Command, error) {
	nick, err := ident.ParseNickname(target)
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return ircmsg.NewModeGetUser(nick), nil
	}

	var add, remove []byte
	isAdd := true
	for _, tok := range rest {
		for i := 0; i < len(tok); i++ {
			switch tok[i] {
			case '+':
				isAdd = true
			case '-':
				isAdd = false
			default:
				if isAdd {
					add = append(add, tok[i])
				} else {
					remove = append(remove, tok[i])
				}
			}
		}
	}
	return ircmsg.NewUserMode(nick, add, remove), nil
}
