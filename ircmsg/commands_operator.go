/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ircmsg

import "github.com/btnmasher/ircwire/ident"

// flatCommand is embedded by every operator/informational command whose
// entire wire shape is "VERB arg1 arg2 ...": a fixed verb plus a flat,
// ordered argument list with no further structure. Each concrete command
// below still gets its own named Go type (so type switches stay
// exhaustive and each is independently constructible), but they share
// this one field-and-method pair instead of repeating Verb()/Params()
// boilerplate twenty times over.
type flatCommand struct {
	marker
	verb string
	args []string
}

func (c flatCommand) Verb() string     { return c.verb }
func (c flatCommand) Params() []string { return c.args }

func newFlat(verb string, args ...string) flatCommand {
	return flatCommand{verb: verb, args: nonEmpty(args)}
}

// nonEmpty drops trailing empty strings so that e.g. KillCommand{Reason:""}
// renders as zero trailing params instead of one empty one.
func nonEmpty(args []string) []string {
	end := len(args)
	for end > 0 && args[end-1] == "" {
		end--
	}
	return args[:end]
}

// KillCommand forcibly disconnects a user (KILL nick reason).
type KillCommand struct{ flatCommand }

func NewKill(nick ident.Nickname, reason string) KillCommand {
	return KillCommand{newFlat("KILL", nick.Encode(), reason)}
}

// OperCommand requests operator privileges (OPER user password).
type OperCommand struct{ flatCommand }

func NewOper(user, password string) OperCommand {
	return OperCommand{newFlat("OPER", user, password)}
}

// SquitCommand disconnects a server link (SQUIT server comment).
type SquitCommand struct{ flatCommand }

func NewSquit(server, comment string) SquitCommand {
	return SquitCommand{newFlat("SQUIT", server, comment)}
}

// RehashCommand asks the server to reload its configuration.
type RehashCommand struct{ flatCommand }

func NewRehash() RehashCommand { return RehashCommand{newFlat("REHASH")} }

// RestartCommand asks the server to restart.
type RestartCommand struct{ flatCommand }

func NewRestart() RestartCommand { return RestartCommand{newFlat("RESTART")} }

// DieCommand asks the server to shut down.
type DieCommand struct{ flatCommand }

func NewDie() DieCommand { return DieCommand{newFlat("DIE")} }

// ConnectCommand asks a server to link to another (CONNECT target port remote).
type ConnectCommand struct{ flatCommand }

func NewConnect(target, port, remote string) ConnectCommand {
	return ConnectCommand{newFlat("CONNECT", target, port, remote)}
}

// TraceCommand traces the route to a server/user.
type TraceCommand struct{ flatCommand }

func NewTrace(target string) TraceCommand { return TraceCommand{newFlat("TRACE", target)} }

// StatsCommand queries server statistics (STATS query server).
type StatsCommand struct{ flatCommand }

func NewStats(query, server string) StatsCommand {
	return StatsCommand{newFlat("STATS", query, server)}
}

// AdminCommand queries administrative contact info.
type AdminCommand struct{ flatCommand }

func NewAdmin(target string) AdminCommand { return AdminCommand{newFlat("ADMIN", target)} }

// InfoCommand queries server build/version info text.
type InfoCommand struct{ flatCommand }

func NewInfo(target string) InfoCommand { return InfoCommand{newFlat("INFO", target)} }

// VersionCommand queries the server's version string.
type VersionCommand struct{ flatCommand }

func NewVersion(target string) VersionCommand { return VersionCommand{newFlat("VERSION", target)} }

// TimeCommand queries the server's local time.
type TimeCommand struct{ flatCommand }

func NewTime(target string) TimeCommand { return TimeCommand{newFlat("TIME", target)} }

// LusersCommand queries user/server counts.
type LusersCommand struct{ flatCommand }

func NewLusers(mask, target string) LusersCommand {
	return LusersCommand{newFlat("LUSERS", mask, target)}
}

// MotdCommand queries the message of the day.
type MotdCommand struct{ flatCommand }

func NewMotd(target string) MotdCommand { return MotdCommand{newFlat("MOTD", target)} }

// RulesCommand queries the server rules text.
type RulesCommand struct{ flatCommand }

func NewRules() RulesCommand { return RulesCommand{newFlat("RULES")} }

// MapCommand queries the server link topology.
type MapCommand struct{ flatCommand }

func NewMap() MapCommand { return MapCommand{newFlat("MAP")} }

// UsersCommand queries logged-in users (RFC 1459 USERS, distinct from the
// user-mode/ISON family).
type UsersCommand struct{ flatCommand }

func NewUsers(target string) UsersCommand { return UsersCommand{newFlat("USERS", target)} }

// WallopsCommand broadcasts a message to users with the wallops user mode.
type WallopsCommand struct{ flatCommand }

func NewWallops(text string) WallopsCommand { return WallopsCommand{newFlat("WALLOPS", text)} }

// GlobopsCommand broadcasts an operator-only global message.
type GlobopsCommand struct{ flatCommand }

func NewGlobops(text string) GlobopsCommand { return GlobopsCommand{newFlat("GLOBOPS", text)} }

// LocopsCommand broadcasts an operator-only local-server message.
type LocopsCommand struct{ flatCommand }

func NewLocops(text string) LocopsCommand { return LocopsCommand{newFlat("LOCOPS", text)} }
