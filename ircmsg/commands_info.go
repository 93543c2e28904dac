/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// WhoisCommand is WHOIS: query information about one or more nicks/masks,
// optionally routed through a specific server.
type WhoisCommand struct {
	marker
	Server string
	Masks  []string
}

func NewWhois(server string, masks []string) WhoisCommand {
	return WhoisCommand{Server: server, Masks: masks}
}

func (c WhoisCommand) Verb() string { return "WHOIS" }
func (c WhoisCommand) Params() []string {
	if c.Server == "" {
		return []string{joinComma(c.Masks...)}
	}
	return []string{c.Server, joinComma(c.Masks...)}
}

// WhoCommand is WHO: query a mask, optionally restricted to operators.
type WhoCommand struct {
	marker
	Mask          string
	OperatorsOnly bool
}

func NewWho(mask string, operatorsOnly bool) WhoCommand {
	return WhoCommand{Mask: mask, OperatorsOnly: operatorsOnly}
}

func (c WhoCommand) Verb() string { return "WHO" }
func (c WhoCommand) Params() []string {
	var p []string
	if c.Mask != "" {
		p = append(p, c.Mask)
	}
	if c.OperatorsOnly {
		p = append(p, "o")
	}
	return p
}

// IsOnCommand is ISON: ask which of a list of nicks are currently online.
type IsOnCommand struct {
	marker
	Nicks []ident.Nickname
}

func NewIsOn(nicks []ident.Nickname) IsOnCommand { return IsOnCommand{Nicks: nicks} }

func (c IsOnCommand) Verb() string { return "ISON" }
func (c IsOnCommand) Params() []string {
	p := make([]string, len(c.Nicks))
	for i, n := range c.Nicks {
		p[i] = n.Encode()
	}
	return p
}
