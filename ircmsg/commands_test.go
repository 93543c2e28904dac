package ircmsg

import (
	"testing"

	"github.com/btnmasher/ircwire/ident"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChannel(t *testing.T, raw string) ident.ChannelName {
	t.Helper()
	ch, err := ident.NewChannelName(raw)
	require.NoError(t, err)
	return ch
}

func mustNick(t *testing.T, name string) ident.Nickname {
	t.Helper()
	n, err := ident.NewNickname(name, uuid.New())
	require.NoError(t, err)
	return n
}

func TestCommandVerbsAndParams(t *testing.T) {
	chName := mustChannel(t, "#general")
	nick := mustNick(t, "alice")

	tests := []struct {
		name       string
		cmd        Params
		wantVerb   string
		wantParams []string
	}{
		{"nick", NewNick(nick), "NICK", []string{nick.Encode()}},
		{"quit with reason", NewQuit("bye"), "QUIT", []string{"bye"}},
		{"quit no reason", NewQuit(""), "QUIT", nil},
		{"pass", NewPass("hunter2"), "PASS", []string{"hunter2"}},
		{"ping", NewPing("abc"), "PING", []string{"abc"}},
		{"cap req", NewCap(CapReq, []string{"multi-prefix", "sasl"}), "CAP", []string{"REQ", "multi-prefix sasl"}},
		{"join", NewJoin([]ident.ChannelName{chName}, []string{"key"}), "JOIN", []string{"#general", "key"}},
		{"part", NewPart([]ident.ChannelName{chName}), "PART", []string{"#general"}},
		{"topic get", NewTopicGet(chName), "TOPIC", []string{"#general"}},
		{"topic set", NewTopicSet(chName, "new topic"), "TOPIC", []string{"#general", "new topic"}},
		{"ban", NewBan(chName, "*!*@bad.host"), "MODE", []string{"#general", "+b", "*!*@bad.host"}},
		{"unban", NewUnban(chName, "*!*@bad.host"), "MODE", []string{"#general", "-b", "*!*@bad.host"}},
		{"voice", NewVoice(chName, nick), "MODE", []string{"#general", "+v", nick.Encode()}},
		{"devoice", NewDevoice(chName, nick), "MODE", []string{"#general", "-v", nick.Encode()}},
		{"owner", NewOwner(chName, nick), "MODE", []string{"#general", "+q", nick.Encode()}},
		{"clearmode", NewClearMode(chName, "nt"), "CLEARMODE", []string{"#general", "nt"}},
		{"away set", NewAway("lunch"), "AWAY", []string{"lunch"}},
		{"away clear", NewAway(""), "AWAY", nil},
		{"knock no msg", NewKnock(chName, ""), "KNOCK", []string{"#general"}},
		{"knock with msg", NewKnock(chName, "let me in"), "KNOCK", []string{"#general", "let me in"}},
		{"silence add", NewSilence("*!*@bad.host", true), "SILENCE", []string{"+*!*@bad.host"}},
		{"silence remove", NewSilence("*!*@bad.host", false), "SILENCE", []string{"-*!*@bad.host"}},
		{"kill", NewKill(nick, "spambot"), "KILL", []string{nick.Encode(), "spambot"}},
		{"rehash", NewRehash(), "REHASH", nil},
		{"numeric", NewNumeric(1, "alice", "Welcome"), "001", []string{"alice", "Welcome"}},
		{"other", NewOtherCommand("FOOBAR", "x", "y"), "FOOBAR", []string{"x", "y"}},
		{"other numeric", NewOtherNumeric(999, "a"), "999", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantVerb, tt.cmd.Verb())
			assert.Equal(t, tt.wantParams, tt.cmd.Params())
		})
	}
}

func TestKickBanEncodesAsKickOnly(t *testing.T) {
	chName := mustChannel(t, "#general")
	nick := mustNick(t, "alice")

	kb := NewKickBan([]ident.ChannelName{chName}, []ident.Nickname{nick}, "spam", "*!*@bad.host")
	assert.Equal(t, "KICK", kb.Verb())
	assert.Equal(t, []string{"#general", nick.Encode(), "spam"}, kb.Params())

	ban := kb.BanMessage(chName)
	assert.Equal(t, "MODE", ban.Verb())
	assert.Equal(t, []string{"#general", "+b", "*!*@bad.host"}, ban.Params())
}

func TestDCCSendWireText(t *testing.T) {
	recipient := ident.NewNickRecipient(mustNick(t, "bob"))
	cmd := NewDCCSend(recipient, "photo.png", "192.168.0.1", 1024, 2048)
	assert.Equal(t, "PRIVMSG", cmd.Verb())
	params := cmd.Params()
	require.Len(t, params, 2)
	assert.Equal(t, recipient.String(), params[0])
	assert.Equal(t, ctcpDelim+"DCC SEND photo.png 192.168.0.1 1024 2048"+ctcpDelim, params[1])
}

func TestSDCCChatWireText(t *testing.T) {
	recipient := ident.NewNickRecipient(mustNick(t, "bob"))
	cmd := NewSDCCChat(recipient, "192.168.0.1", 5000)
	params := cmd.Params()
	assert.Equal(t, ctcpDelim+"SDCC CHAT chat 192.168.0.1 5000"+ctcpDelim, params[1])
}

func TestCTCPWireText(t *testing.T) {
	recipient := ident.NewNickRecipient(mustNick(t, "bob"))
	cmd := NewCTCP([]ident.Recipient{recipient}, "ACTION", "waves")
	assert.Equal(t, "PRIVMSG", cmd.Verb())
	assert.Equal(t, ctcpDelim+"ACTION waves"+ctcpDelim, cmd.Params()[1])
}
