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

// Parse converts one wire line (without its trailing CRLF) into a
// Message. It is total over non-empty input: every line either yields a
// Message or a typed error, never a panic.
func Parse(line string) (ircmsg.Message, error) {
	raw, err := lexLine(line)
	if err != nil {
		return ircmsg.Message{}, err
	}

	var tags []ident.Tag
	if raw.hasTags {
		tags, err = parseTags(raw.tagsBlob)
		if err != nil {
			return ircmsg.Message{}, err
		}
	}

	if isAllDigits(raw.verb) {
		return parseNumeric(raw, tags)
	}

	cmd, err := parseCommand(raw.verb, raw.params)
	if err != nil {
		return ircmsg.Message{}, err
	}

	return ircmsg.Message{Origin: raw.prefix, Command: cmd, Tags: tags}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseNumeric(raw rawLine, tags []ident.Tag) (ircmsg.Message, error) {
	code, err := strconv.Atoi(raw.verb)
	if err != nil {
		return ircmsg.Message{}, ErrMalformedMessage
	}

	var target string
	args := raw.params
	if len(args) > 0 {
		target = args[0]
		args = args[1:]
	}

	return ircmsg.Message{
		Origin:  raw.prefix,
		Target:  target,
		Command: ircmsg.NewNumeric(code, args...),
		Tags:    tags,
	}, nil
}

func parseCommand(verb string, params []string) (ircmsg.Command, error) {
	switch verb {
	case "NICK":
		return parseNick(params)
	case "USER":
		return parseUser(params)
	case "QUIT":
		return ircmsg.NewQuit(lastOrEmpty(params)), nil
	case "PASS":
		if err := requireArity(verb, params, 1, 1); err != nil {
			return nil, err
		}
		return ircmsg.NewPass(params[0]), nil
	case "PING":
		if err := requireArity(verb, params, 1, 1); err != nil {
			return nil, err
		}
		return ircmsg.NewPing(params[0]), nil
	case "PONG":
		if err := requireArity(verb, params, 1, 1); err != nil {
			return nil, err
		}
		return ircmsg.NewPong(params[0]), nil
	case "CAP":
		return parseCap(params)

	case "JOIN":
		return parseJoin(params)
	case "PART":
		return parsePart(params)
	case "LIST":
		return parseListCmd(params)
	case "MODE":
		return parseMode(params)
	case "TOPIC":
		return parseTopic(params)
	case "NAMES":
		return parseNames(params)
	case "INVITE":
		return parseInvite(params)
	case "KICK":
		return parseKick(params)

	case "PRIVMSG":
		return parsePrivOrNotice(params, false)
	case "NOTICE":
		return parsePrivOrNotice(params, true)

	case "WHOIS":
		return parseWhois(params)
	case "WHO":
		return parseWho(params)
	case "ISON":
		return parseIsOn(params)

	case "CLEARMODE":
		if err := requireArity(verb, params, 2, 2); err != nil {
			return nil, err
		}
		ch, err := ident.NewChannelName(params[0])
		if err != nil {
			return nil, err
		}
		return ircmsg.NewClearMode(ch, params[1]), nil
	case "AWAY":
		return ircmsg.NewAway(lastOrEmpty(params)), nil
	case "KNOCK":
		return parseKnock(params)
	case "SILENCE":
		return parseSilence(params)

	case "KILL":
		if err := requireArity(verb, params, 1, 2); err != nil {
			return nil, err
		}
		nick, err := ident.ParseNickname(params[0])
		if err != nil {
			return nil, err
		}
		return ircmsg.NewKill(nick, nth(params, 1)), nil
	case "OPER":
		if err := requireArity(verb, params, 2, 2); err != nil {
			return nil, err
		}
		return ircmsg.NewOper(params[0], params[1]), nil
	case "SQUIT":
		return ircmsg.NewSquit(nth(params, 0), nth(params, 1)), nil
	case "REHASH":
		return ircmsg.NewRehash(), nil
	case "RESTART":
		return ircmsg.NewRestart(), nil
	case "DIE":
		return ircmsg.NewDie(), nil
	case "CONNECT":
		return ircmsg.NewConnect(nth(params, 0), nth(params, 1), nth(params, 2)), nil
	case "TRACE":
		return ircmsg.NewTrace(nth(params, 0)), nil
	case "STATS":
		return ircmsg.NewStats(nth(params, 0), nth(params, 1)), nil
	case "ADMIN":
		return ircmsg.NewAdmin(nth(params, 0)), nil
	case "INFO":
		return ircmsg.NewInfo(nth(params, 0)), nil
	case "VERSION":
		return ircmsg.NewVersion(nth(params, 0)), nil
	case "TIME":
		return ircmsg.NewTime(nth(params, 0)), nil
	case "LUSERS":
		return ircmsg.NewLusers(nth(params, 0), nth(params, 1)), nil
	case "MOTD":
		return ircmsg.NewMotd(nth(params, 0)), nil
	case "RULES":
		return ircmsg.NewRules(), nil
	case "MAP":
		return ircmsg.NewMap(), nil
	case "USERS":
		return ircmsg.NewUsers(nth(params, 0)), nil
	case "WALLOPS":
		return ircmsg.NewWallops(lastOrEmpty(params)), nil
	case "GLOBOPS":
		return ircmsg.NewGlobops(lastOrEmpty(params)), nil
	case "LOCOPS":
		return ircmsg.NewLocops(lastOrEmpty(params)), nil

	default:
		return ircmsg.NewOtherCommand(verb, params...), nil
	}
}

func lastOrEmpty(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return params[len(params)-1]
}

func nth(params []string, i int) string {
	if i < 0 || i >= len(params) {
		return ""
	}
	return params[i]
}

func requireArity(verb string, params []string, min, max int) error {
	if len(params) < min || len(params) > max {
		expected := strconv.Itoa(min)
		if max != min {
			expected = strconv.Itoa(min) + "-" + strconv.Itoa(max)
		}
		return &ArgumentError{Verb: verb, Expected: expected, Got: len(params)}
	}
	return nil
}

func parseNick(params []string) (ircmsg.Command, error) {
	if err := requireArity("NICK", params, 1, 1); err != nil {
		return nil, err
	}
	nick, err := ident.ParseNickname(params[0])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewNick(nick), nil
}

func parseUser(params []string) (ircmsg.Command, error) {
	if err := requireArity("USER", params, 4, 4); err != nil {
		return nil, err
	}
	details, err := ident.ParseUserDetails(params[0], params[1], params[2], params[3])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewUser(details), nil
}

func parseCap(params []string) (ircmsg.Command, error) {
	if err := requireArity("CAP", params, 1, 2); err != nil {
		return nil, err
	}
	sub, ok := ircmsg.ParseCapSubCommand(strings.ToUpper(params[0]))
	if !ok {
		return nil, ErrInvalidCapSubcommand
	}
	var caps []string
	if len(params) == 2 && params[1] != "" {
		caps = strings.Fields(params[1])
	}
	return ircmsg.NewCap(sub, caps), nil
}

func parseChannels(field string) ([]ident.ChannelName, error) {
	tokens := splitComma(field)
	out := make([]ident.ChannelName, 0, len(tokens))
	for _, tok := range tokens {
		ch, err := ident.NewChannelName(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

func parseNicks(field string) ([]ident.Nickname, error) {
	tokens := splitComma(field)
	out := make([]ident.Nickname, 0, len(tokens))
	for _, tok := range tokens {
		n, err := ident.ParseNickname(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func parseJoin(params []string) (ircmsg.Command, error) {
	if err := requireArity("JOIN", params, 1, 2); err != nil {
		return nil, err
	}
	if params[0] == "0" && len(params) == 1 {
		return ircmsg.NewJoin0(), nil
	}
	channels, err := parseChannels(params[0])
	if err != nil {
		return nil, err
	}
	var keys []string
	if len(params) == 2 {
		keys = splitComma(params[1])
	}
	return ircmsg.NewJoin(channels, keys), nil
}

func parsePart(params []string) (ircmsg.Command, error) {
	if err := requireArity("PART", params, 1, 2); err != nil {
		return nil, err
	}
	channels, err := parseChannels(params[0])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewPart(channels), nil
}

func parseListCmd(params []string) (ircmsg.Command, error) {
	if len(params) == 0 {
		return ircmsg.NewList(nil), nil
	}
	channels, err := parseChannels(params[0])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewList(channels), nil
}

func parseTopic(params []string) (ircmsg.Command, error) {
	if err := requireArity("TOPIC", params, 1, 2); err != nil {
		return nil, err
	}
	ch, err := ident.NewChannelName(params[0])
	if err != nil {
		return nil, err
	}
	if len(params) == 1 {
		return ircmsg.NewTopicGet(ch), nil
	}
	return ircmsg.NewTopicSet(ch, params[1]), nil
}

func parseNames(params []string) (ircmsg.Command, error) {
	if len(params) == 0 {
		return ircmsg.NewNames(nil), nil
	}
	channels, err := parseChannels(params[0])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewNames(channels), nil
}

func parseInvite(params []string) (ircmsg.Command, error) {
	if err := requireArity("INVITE", params, 2, 2); err != nil {
		return nil, err
	}
	nick, err := ident.ParseNickname(params[0])
	if err != nil {
		return nil, err
	}
	ch, err := ident.NewChannelName(params[1])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewInvite(nick, ch), nil
}

func parseKick(params []string) (ircmsg.Command, error) {
	if err := requireArity("KICK", params, 3, 3); err != nil {
		return nil, err
	}
	channels, err := parseChannels(params[0])
	if err != nil {
		return nil, err
	}
	nicks, err := parseNicks(params[1])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewKick(channels, nicks, params[2]), nil
}

func parseWhois(params []string) (ircmsg.Command, error) {
	if err := requireArity("WHOIS", params, 1, 2); err != nil {
		return nil, err
	}
	if len(params) == 1 {
		return ircmsg.NewWhois("", splitComma(params[0])), nil
	}
	return ircmsg.NewWhois(params[0], splitComma(params[1])), nil
}

func parseWho(params []string) (ircmsg.Command, error) {
	if err := requireArity("WHO", params, 0, 2); err != nil {
		return nil, err
	}
	var mask string
	operatorsOnly := false
	for _, p := range params {
		if p == "o" {
			operatorsOnly = true
			continue
		}
		mask = p
	}
	return ircmsg.NewWho(mask, operatorsOnly), nil
}

func parseIsOn(params []string) (ircmsg.Command, error) {
	nicks := make([]ident.Nickname, 0, len(params))
	for _, p := range params {
		n, err := ident.ParseNickname(p)
		if err != nil {
			return nil, err
		}
		nicks = append(nicks, n)
	}
	return ircmsg.NewIsOn(nicks), nil
}

func parseKnock(params []string) (ircmsg.Command, error) {
	if err := requireArity("KNOCK", params, 1, 2); err != nil {
		return nil, err
	}
	ch, err := ident.NewChannelName(params[0])
	if err != nil {
		return nil, err
	}
	return ircmsg.NewKnock(ch, nth(params, 1)), nil
}

func parseSilence(params []string) (ircmsg.Command, error) {
	if err := requireArity("SILENCE", params, 1, 1); err != nil {
		return nil, err
	}
	token := params[0]
	add := true
	switch {
	case strings.HasPrefix(token, "+"):
		token = token[1:]
	case strings.HasPrefix(token, "-"):
		add = false
		token = token[1:]
	}
	return ircmsg.NewSilence(token, add), nil
}
